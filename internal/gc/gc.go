// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gc implements the mark-and-sweep collector of spec §4.6,
// cooperating with package pool/value's free-list arena. It is
// triggered between top-level forms by the REPL, never during
// evaluation of a single form.
package gc

import "github.com/db47h/sl/internal/value"

// Stats reports the outcome of a collection cycle.
type Stats struct {
	Freed int
	Live  int
}

// Collect runs one mark-and-sweep pass. root is the active environment
// frame; its entire parent chain (ultimately reaching the root frame,
// which per spec §3.2 always holds nil, tru, and every special-form and
// primitive binding) is walked as the root set, so no separate list of
// global singletons needs to be threaded through here. extra marks
// additional standalone values reachable outside any frame, e.g. a
// value still being constructed by a primitive mid-call.
func Collect(a *value.Arena, root value.Env, extra ...value.Value) Stats {
	clearMarks(a)
	markEnv(root)
	for _, v := range extra {
		markValue(v)
	}
	return sweep(a)
}

func clearMarks(a *value.Arena) {
	a.Iter(func(v value.Value) {
		v.SetMarked(false)
	})
}

// markEnv marks every value bound in e and, recursively, every
// ancestor frame (spec §4.6's "mark every value reachable from each
// binding in its captured frame and every parent frame").
func markEnv(e value.Env) {
	for fr := e; fr != nil; fr = fr.Parent() {
		fr.Each(markValue)
	}
}

// markValue marks v and recurses into its owned sub-values. Marking
// short-circuits on already-MARKED cells, which makes cycles safe
// (spec §4.6's cycle-tolerance requirement).
func markValue(v value.Value) {
	if v == nil || v.Marked() {
		return
	}
	v.SetMarked(true)
	switch v.Item.Kind {
	case value.Pair:
		markValue(v.Item.Car)
		markValue(v.Item.Cdr)
	case value.Lambda, value.Macro:
		c := v.Item.Closure
		if c == nil {
			return
		}
		for _, b := range c.Body {
			markValue(b)
		}
		markEnv(c.Env)
	}
}

// sweep walks every cell; live unmarked cells are released back to the
// free list via Arena.Free, which also drops their owned
// sub-resources. Free cells and marked (reachable) cells are left
// untouched.
func sweep(a *value.Arena) Stats {
	var st Stats
	a.Iter(func(v value.Value) {
		if v.IsFree() {
			return
		}
		if v.Marked() {
			st.Live++
			return
		}
		a.Free(v)
		st.Freed++
	})
	return st
}

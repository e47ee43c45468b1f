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

// Package env implements the lexically scoped binding frames of spec
// §3.2/§4.3: an ordered list of (name, value, flags) bindings with an
// optional parent frame.
package env

import "github.com/db47h/sl/internal/value"

type binding struct {
	name  string
	value value.Value
	flags value.Flags
}

// Frame is a single environment level. It implements value.Env.
type Frame struct {
	bindings []binding
	parent   *Frame
}

// New allocates a fresh frame with the given optional parent.
func New(parent *Frame) *Frame {
	return &Frame{parent: parent}
}

func (f *Frame) find(name string) (*binding, bool) {
	for i := range f.bindings {
		if f.bindings[i].name == name {
			return &f.bindings[i], true
		}
	}
	return nil, false
}

// Get walks this frame then its ancestors (spec §4.3).
func (f *Frame) Get(name string) (value.Value, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if b, ok := fr.find(name); ok {
			return b.value, true
		}
	}
	return nil, false
}

// GetFlags is Get's counterpart for binding flags; on miss, returns an
// empty flag set.
func (f *Frame) GetFlags(name string) (value.Flags, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if b, ok := fr.find(name); ok {
			return b.flags, true
		}
	}
	return 0, false
}

// Bind overwrites name in this frame if present and not Const,
// otherwise appends a fresh binding. Returns false, unchanged, if an
// existing binding is Const.
func (f *Frame) Bind(name string, v value.Value, flags value.Flags) bool {
	if b, ok := f.find(name); ok {
		if b.flags.Has(value.Const) {
			return false
		}
		b.value, b.flags = v, flags
		return true
	}
	f.bindings = append(f.bindings, binding{name, v, flags})
	return true
}

// BindGlobal walks to the root frame and Binds there.
func (f *Frame) BindGlobal(name string, v value.Value, flags value.Flags) bool {
	root := f
	for root.parent != nil {
		root = root.parent
	}
	return root.Bind(name, v, flags)
}

// Set rebinds an existing name wherever it is already bound in the
// chain (SPEC_FULL.md §6.2, the supplemented `set` primitive), refusing
// Const targets. ok is false if name is unbound anywhere in the chain.
func (f *Frame) Set(name string, v value.Value) (ok, wasConst bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if b, found := fr.find(name); found {
			if b.flags.Has(value.Const) {
				return false, true
			}
			b.value = v
			return true, false
		}
	}
	return false, false
}

// Child returns a fresh frame whose parent is f.
func (f *Frame) Child() value.Env { return New(f) }

// Parent returns the enclosing frame, as a value.Env, or a typed nil
// interface is avoided by returning nil directly at the root.
func (f *Frame) Parent() value.Env {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

// SetParent transiently retargets f's parent (spec §4.5's captured-
// frame retargeting at call time). newParent must be a *Frame or nil;
// passing any other value.Env implementation is a programmer error,
// since only this package's frames participate in the parent chain.
func (f *Frame) SetParent(newParent value.Env) {
	if newParent == nil {
		f.parent = nil
		return
	}
	fr, ok := newParent.(*Frame)
	if !ok {
		panic("env: SetParent given a non-*env.Frame value.Env")
	}
	f.parent = fr
}

// Each calls fn for every value bound directly in this frame (not its
// ancestors); used by the collector to walk roots.
func (f *Frame) Each(fn func(value.Value)) {
	for _, b := range f.bindings {
		fn(b.value)
	}
}

// Names returns the names bound directly in this frame, in binding
// order; primarily useful for REPL introspection and tests.
func (f *Frame) Names() []string {
	names := make([]string, len(f.bindings))
	for i, b := range f.bindings {
		names[i] = b.name
	}
	return names
}

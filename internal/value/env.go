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

package value

import "io"

// Env is the binding-frame contract the evaluator and primitives depend
// on. It is defined here, at the point of use, so that package env can
// implement it without value importing env (which would cycle, since
// env must import value for the Value and Flags types).
type Env interface {
	// Get resolves name in this frame, then its ancestors.
	Get(name string) (Value, bool)
	// GetFlags is like Get but returns the binding's flags.
	GetFlags(name string) (Flags, bool)
	// Bind creates or overwrites name in this frame. It returns false
	// without effect if name is already bound Const in this frame.
	Bind(name string, v Value, flags Flags) bool
	// BindGlobal walks to the root frame and Binds there.
	BindGlobal(name string, v Value, flags Flags) bool
	// Set rebinds an existing name wherever it is already bound in the
	// chain, refusing Const targets. ok is false if name is unbound.
	Set(name string, v Value) (ok, wasConst bool)
	// Child returns a fresh frame whose parent is this one.
	Child() Env
	// Parent returns the enclosing frame, or nil at the root.
	Parent() Env
	// SetParent transiently retargets the frame's parent; used by
	// lambda/macro invocation (spec §4.5).
	SetParent(Env)
	// Each calls fn for every value bound directly in this frame (not
	// its ancestors). Used by the collector to mark roots.
	Each(fn func(Value))
}

// Evaluator is the contract the eval/apply/macroexpand primitives call
// back into, so that package value need not import package eval.
type Evaluator interface {
	Eval(env Env, e Value) (Value, error)
	Apply(env Env, fn Value, args Value) (Value, error)
	MacroExpand(env Env, e Value) (Value, error)
	// Arena returns the allocator primitives use to build result and
	// Error values.
	Arena() *Arena
	// Stdin and Stdout are the streams the `read`/`scan-str`/`write`/
	// `print-str` I/O primitives read from and write to.
	Stdin() io.Reader
	Stdout() io.Writer
}

// PrimFunc is a built-in primitive. args is the already-evaluated
// argument list, unless the binding carries SpecialForm, in which case
// args is passed through unevaluated. The returned error is reserved for
// host-boundary failures (I/O, allocation); evaluation-level failures
// are communicated as a Value of Kind Error with a nil error.
type PrimFunc func(ev Evaluator, env Env, args Value) (Value, error)

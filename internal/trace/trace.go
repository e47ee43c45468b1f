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

// Package trace implements the debug-only trace list and callstack of
// spec §4.7. These are side-band diagnostics: they never affect
// evaluation semantics.
package trace

import (
	"fmt"
	"io"

	"github.com/db47h/sl/internal/value"
)

// TraceSymbol is the name the trace list is bound to at initialisation
// (spec §4.7).
const TraceSymbol = "*debug-trace*"

// Tracer holds the traced-name list and an independent callstack of
// in-flight expressions.
type Tracer struct {
	arena     *value.Arena
	env       value.Env
	nesting   int
	callstack []value.Value
}

// New creates a Tracer bound to *debug-trace* (initially nil) in root.
func New(a *value.Arena, root value.Env) *Tracer {
	t := &Tracer{arena: a, env: root}
	root.BindGlobal(TraceSymbol, a.Nil(), 0)
	return t
}

// IsTraced reports whether fn (the evaluated operator) is a member of
// the current *debug-trace* list, mirroring
// original_source/src/debug.c's debug_is_traced_function.
func (t *Tracer) IsTraced(fn value.Value) bool {
	list, ok := t.env.Get(TraceSymbol)
	if !ok || value.IsNil(list) {
		return false
	}
	elems, ok := value.Elements(list)
	if !ok {
		return false
	}
	for _, e := range elems {
		if value.Equal(e, fn) {
			return true
		}
	}
	return false
}

// PrintPre emits a pre-call trace line with indentation proportional to
// the current nesting depth, then increments nesting.
func (t *Tracer) PrintPre(w io.Writer, fn value.Value, args value.Value) {
	t.printDepth(w)
	fmt.Fprint(w, "(", value.Print(fn))
	elems, _ := value.Elements(args)
	for _, e := range elems {
		fmt.Fprint(w, " ", value.Print(e))
	}
	fmt.Fprintln(w, ")")
	t.nesting++
}

// PrintPost decrements nesting and emits the matching post-call trace
// line. result is nil when the call produced an internal protocol
// error (spec §4.4.1 step 6).
func (t *Tracer) PrintPost(w io.Writer, result value.Value) {
	t.nesting--
	t.printDepth(w)
	if result == nil {
		fmt.Fprintln(w, "ERR")
		return
	}
	fmt.Fprintln(w, value.Print(result))
}

func (t *Tracer) printDepth(w io.Writer) {
	for i := 0; i <= t.nesting; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintf(w, "%d: ", t.nesting%10)
}

// Push appends e to the callstack.
func (t *Tracer) Push(e value.Value) { t.callstack = append(t.callstack, e) }

// Pop removes the most recently pushed expression.
func (t *Tracer) Pop() {
	if len(t.callstack) == 0 {
		return
	}
	t.callstack = t.callstack[:len(t.callstack)-1]
}

// Depth returns the current callstack depth.
func (t *Tracer) Depth() int { return len(t.callstack) }

// Print writes the callstack, most recent first.
func (t *Tracer) Print(w io.Writer) {
	if len(t.callstack) == 0 {
		fmt.Fprintln(w, "Callstack: (no callstack)")
		return
	}
	fmt.Fprintln(w, "Callstack (recent first):")
	for i := len(t.callstack) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "  %d: %s\n", len(t.callstack)-1-i, value.Print(t.callstack[i]))
	}
}

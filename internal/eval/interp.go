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

package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/db47h/sl/internal/env"
	"github.com/db47h/sl/internal/trace"
	"github.com/db47h/sl/internal/value"
)

// Interp bundles the arena, root environment and tracer that the
// evaluator and all registered primitives share. It implements
// value.Evaluator.
type Interp struct {
	arena *value.Arena
	root  *env.Frame
	trace *trace.Tracer
	in    *bufio.Reader
	out   io.Writer
}

// NewInterp builds an Interp with a fresh root frame holding the
// special forms required by spec §4.4.3, nil, and tru. Ordinary
// primitives (arithmetic, list, string, ...) are registered separately
// by package primitives against the returned Interp.
func NewInterp(a *value.Arena) *Interp {
	root := env.New(nil)
	root.Bind("nil", a.Nil(), value.Const)
	root.Bind("tru", a.Tru(), value.Const)
	ip := &Interp{arena: a, root: root, in: bufio.NewReader(os.Stdin), out: os.Stdout}
	ip.trace = trace.New(a, root)
	registerSpecialForms(ip)
	return ip
}

// Arena implements value.Evaluator.
func (ip *Interp) Arena() *value.Arena { return ip.arena }

// Root returns the root environment frame.
func (ip *Interp) Root() *env.Frame { return ip.root }

// Tracer returns the interpreter's trace/callstack component.
func (ip *Interp) Tracer() *trace.Tracer { return ip.trace }

// SetOutput redirects where trace lines and the I/O primitives print.
func (ip *Interp) SetOutput(w io.Writer) { ip.out = w }

// SetInput redirects where the I/O primitives (`read`, `scan-str`) read
// from. It wraps r in a fresh *bufio.Reader: the `read`/`scan-str`
// primitives each wrap ev.Stdin() in bufio.NewReader again before use,
// and bufio.NewReader returns its argument unchanged when that
// argument is already a sufficiently-sized *bufio.Reader, so every
// primitive call ends up sharing this same buffer and read position
// rather than constructing an independent one that silently drops
// whatever bytes it over-reads.
func (ip *Interp) SetInput(r io.Reader) { ip.in = bufio.NewReader(r) }

// Stdout implements value.Evaluator.
func (ip *Interp) Stdout() io.Writer { return ip.out }

// Stdin implements value.Evaluator.
func (ip *Interp) Stdin() io.Reader { return ip.in }

func bindSpecial(root *env.Frame, a *value.Arena, name string, fn value.PrimFunc) {
	root.Bind(name, a.NewPrimitive(fn), value.SpecialForm|value.Const)
}

func registerSpecialForms(ip *Interp) {
	a, root := ip.arena, ip.root
	bindSpecial(root, a, "quote", primQuote)
	bindSpecial(root, a, "backquote", primBackquote)
	bindSpecial(root, a, "`", primBackquote)
	bindSpecial(root, a, "unquote", primUnquoteOutsideBackquote)
	bindSpecial(root, a, ",", primUnquoteOutsideBackquote)
	bindSpecial(root, a, "splice", primSpliceOutsideBackquote)
	bindSpecial(root, a, ",@", primSpliceOutsideBackquote)
	bindSpecial(root, a, "define", primDefine)
	bindSpecial(root, a, "define-global", primDefineGlobal)
	bindSpecial(root, a, "lambda", primLambda)
	bindSpecial(root, a, "macro", primMacro)
	bindSpecial(root, a, "begin", primBegin)
	bindSpecial(root, a, "if", primIf)
	bindSpecial(root, a, "or", primOr)
	bindSpecial(root, a, "and", primAnd)
}

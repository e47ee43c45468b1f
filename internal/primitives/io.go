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

// Stream I/O: read, write, scan-str, print-str, error. Grounded on
// original_source/src/prim_io.c.
//
// read and scan-str both call bufio.NewReader(ev.Stdin()) before use.
// Stdin() always returns a *bufio.Reader already built by
// eval.Interp, and bufio.NewReader hands back its argument unchanged
// when it is already a big-enough *bufio.Reader, so every call ends up
// sharing one buffer and read position instead of each dropping
// whatever bytes it over-read. See DESIGN.md.
package primitives

import (
	"bufio"
	"errors"
	"io"

	"github.com/db47h/sl/internal/reader"
	"github.com/db47h/sl/internal/value"
)

func primRead(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	br := bufio.NewReader(ev.Stdin())
	p := reader.NewParser(reader.NewLexer(br))
	form, err := p.ReadForm(a)
	if errors.Is(err, io.EOF) {
		return a.Nil(), nil
	}
	if err != nil {
		return a.NewErrorf("read: %s", err), nil
	}
	return form, nil
}

func primWrite(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "write")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "write"); errv != nil {
		return errv, nil
	}
	s, ok := value.Write(elems[0])
	if !ok {
		return a.NewErrorf("write: cannot write expression of type %s", elems[0].Item.Kind), nil
	}
	if _, err := io.WriteString(ev.Stdout(), s); err != nil {
		return nil, err
	}
	return a.Tru(), nil
}

func primScanStr(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "scan-str")
	if errv != nil {
		return errv, nil
	}
	if len(elems) > 1 {
		return a.NewErrorf("scan-str: too many arguments"), nil
	}
	delimiters := "\n"
	if len(elems) == 1 {
		if errv := expectKind(a, elems[0], value.String, "scan-str"); errv != nil {
			return errv, nil
		}
		delimiters = elems[0].Item.Str
	}

	br := bufio.NewReader(ev.Stdin())
	var sb []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			break
		}
		if c == 0 || isDelimiter(c, delimiters) {
			break
		}
		sb = append(sb, c)
	}
	return a.NewString(string(sb)), nil
}

func isDelimiter(c byte, delimiters string) bool {
	for i := 0; i < len(delimiters); i++ {
		if delimiters[i] == c {
			return true
		}
	}
	return false
}

func primPrintStr(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "print-str")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "print-str"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.String, "print-str"); errv != nil {
		return errv, nil
	}
	if _, err := io.WriteString(ev.Stdout(), elems[0].Item.Str); err != nil {
		return nil, err
	}
	return elems[0], nil
}

// primError builds an Error value carrying the given message. Unlike
// prim_error.c, which aborts evaluation outright by returning NULL,
// this just produces an ordinary Error Value: errors are data here
// (spec §4.2), so the caller decides whether to propagate or handle
// it.
func primError(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "error")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "error"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.String, "error"); errv != nil {
		return errv, nil
	}
	return a.NewError(elems[0].Item.Str), nil
}

// RegisterIO binds the I/O primitives into root.
func RegisterIO(root value.Env, a *value.Arena) {
	bind(root, a, "read", primRead)
	bind(root, a, "write", primWrite)
	bind(root, a, "scan-str", primScanStr)
	bind(root, a, "print-str", primPrintStr)
	bind(root, a, "error", primError)
}

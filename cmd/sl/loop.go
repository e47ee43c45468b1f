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

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/db47h/sl/internal/eval"
	"github.com/db47h/sl/internal/gc"
	"github.com/db47h/sl/internal/reader"
	"github.com/db47h/sl/internal/value"
)

// runLoop implements spec §6.3/§7: read one top-level form at a time
// from in, evaluate it against ip's root frame, print the result in
// print form to out (or "Error: <message>" to errW for an Error
// value), and collect garbage between iterations (spec §5 "triggered
// between top-level REPL iterations"). prompt gates the "sl> " banner.
// Returns the process exit code: 0 on normal EOF.
func runLoop(ip *eval.Interp, in io.Reader, out, errW io.Writer, prompt bool) int {
	br := bufio.NewReader(in)
	p := reader.NewParser(reader.NewLexer(br))
	a := ip.Arena()

	for {
		if prompt {
			fmt.Fprint(out, "sl> ")
		}

		form, err := p.ReadForm(a)
		if err != nil {
			if err == io.EOF {
				return 0
			}
			fmt.Fprintf(errW, "Error: %s\n", err)
			continue
		}

		result, err := ip.Eval(ip.Root(), form)
		if err != nil {
			fmt.Fprintf(errW, "Error: %s\n", err)
			continue
		}
		if result.Item.Kind == value.Error {
			fmt.Fprintf(errW, "Error: %s\n", result.Item.Str)
		} else {
			fmt.Fprintln(out, value.Print(result))
		}

		gc.Collect(a, ip.Root())
	}
}

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
	"io"
	"os"
	"strings"

	"github.com/db47h/sl/internal/config"
	"github.com/db47h/sl/internal/diag"
	"github.com/db47h/sl/internal/eval"
	"github.com/db47h/sl/internal/primitives"
	"github.com/db47h/sl/internal/reader"
	"github.com/db47h/sl/internal/trace"
	"github.com/db47h/sl/internal/value"
)

// bootstrap builds an Interp from cfg: a fresh arena sized per
// cfg.Pool, every primitive in internal/primitives registered, the
// trace names seeded, and the standard library preloaded unless
// noStdlib or cfg.Stdlib.Skip. errW receives non-fatal preload
// diagnostics (spec §6.4, §7).
func bootstrap(cfg *config.Config, noStdlib bool, traceNames []string, errW io.Writer) *eval.Interp {
	a := value.NewArena(cfg.Pool.InitialCells, cfg.Pool.GrowCells)
	ip := eval.NewInterp(a)
	primitives.Register(ip.Root(), a)

	seedTrace(ip, a, append(append([]string{}, cfg.Trace.Names...), traceNames...))

	if !noStdlib && !cfg.Stdlib.Skip {
		preloadStdlib(ip, cfg.Stdlib.Path, errW)
	}
	return ip
}

// seedTrace binds *debug-trace* to the list of values currently bound
// to names, mirroring what a `(define-global *debug-trace* (list f g))` call
// from program text would do, but driven by --trace/config at startup
// (SPEC_FULL.md §6.3).
func seedTrace(ip *eval.Interp, a *value.Arena, names []string) {
	if len(names) == 0 {
		return
	}
	var fns []value.Value
	for _, name := range names {
		if v, ok := ip.Root().Get(name); ok {
			fns = append(fns, v)
		}
	}
	if len(fns) == 0 {
		return
	}
	ip.Root().BindGlobal(trace.TraceSymbol, a.FromSlice(fns), 0)
}

// preloadStdlib reads path and evaluates each top-level form in it
// against ip's root frame, without echoing results (spec §6.4). A
// missing file is silently skipped. Parse or evaluation errors are
// reported to errW but never prevent startup (spec §7).
func preloadStdlib(ip *eval.Interp, path string, errW io.Writer) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	p := reader.NewParser(reader.NewLexer(bufio.NewReader(f)))
	a := ip.Arena()
	for {
		form, err := p.ReadForm(a)
		if err != nil {
			if err != io.EOF {
				diag.Warn(errW, "stdlib preload %s: %s", path, err)
			}
			return
		}
		result, err := ip.Eval(ip.Root(), form)
		if err != nil {
			diag.Warn(errW, "stdlib preload %s: %s", path, err)
			continue
		}
		if result.Item.Kind == value.Error {
			diag.Warn(errW, "stdlib preload %s: %s", path, result.Item.Str)
		}
	}
}

// splitTraceFlag splits a comma-separated --trace value into names,
// dropping empty entries.
func splitTraceFlag(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

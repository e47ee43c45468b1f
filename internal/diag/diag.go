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

// Package diag holds small diagnostic helpers shared by cmd/sl:
// an io.Writer wrapper that remembers the first write error (so a run
// of REPL prints doesn't need per-call error checks), grounded on
// internal/ngi.ErrWriter, and a Printf-style host-process warning
// writer grounded on util.c's SL_ERR.
package diag

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps w and remembers the first write error it sees,
// returning it on every subsequent Write instead of retrying.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter wraps w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (e *ErrWriter) Write(p []byte) (n int, err error) {
	if e.Err != nil {
		return 0, e.Err
	}
	n, err = e.w.Write(p)
	if err != nil {
		e.Err = errors.Wrap(err, "write failed")
	}
	return n, e.Err
}

// Warn writes a "sl: <message>\n" diagnostic to w, mirroring
// util.c's SL_ERR host-process warnings (evaluation errors, by
// contrast, are ordinary Error values; see value.Kind).
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "sl: "+format+"\n", args...)
}

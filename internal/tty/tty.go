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

// Package tty detects whether a file descriptor is an interactive
// terminal, used to gate the REPL prompt/banner (spec §6.3). Adapted
// from cmd/retro/term.go's termios probing.
package tty

import "os"

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	_, _, err := queryAttr(f)
	return err == nil
}

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

//go:build windows

package tty

import (
	"os"

	"github.com/pkg/errors"
)

func queryAttr(f *os.File) (cols, rows int, err error) {
	return 0, 0, errors.New("terminal attribute query not supported on windows")
}

// WindowSize returns (0, 0): unsupported on windows, mirroring
// cmd/retro/term_windows.go's consoleSize stub.
func WindowSize(f *os.File) (cols, rows int) {
	return 0, 0
}

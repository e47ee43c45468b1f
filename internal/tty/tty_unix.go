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

//go:build !windows

package tty

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

type winsize struct {
	row, col, xpixel, ypixel uint16
}

func ioctl(fd uintptr, request, argp uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, request, argp)
	if errno != 0 {
		return errors.Wrap(errno, "ioctl failed")
	}
	return nil
}

// queryAttr probes f's termios attributes and, on success, its window
// size. Grounded on cmd/retro/term.go's setRawIO/consoleSize, trimmed
// down to just the query this package needs (no raw-mode switch: the
// REPL here reads whole lines through the reader, not keystroke by
// keystroke).
func queryAttr(f *os.File) (cols, rows int, err error) {
	var tios syscall.Termios
	if err := termios.Tcgetattr(f.Fd(), &tios); err != nil {
		return 0, 0, errors.Wrap(err, "Tcgetattr failed")
	}
	var w winsize
	if err := ioctl(f.Fd(), syscall.TIOCGWINSZ, uintptr(unsafe.Pointer(&w))); err != nil {
		return 0, 0, nil
	}
	return int(w.col), int(w.row), nil
}

// WindowSize returns f's terminal width and height, or (0, 0) if f is
// not a terminal.
func WindowSize(f *os.File) (cols, rows int) {
	cols, rows, err := queryAttr(f)
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

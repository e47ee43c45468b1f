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

import (
	"strconv"
	"strings"
)

// byte2escaped mirrors original_source/src/util.c's table of the same
// name: printable escape sequence for a byte, or "" if it needs none.
var byte2escaped = map[byte]string{
	'\a': `\a`, '\b': `\b`, '\x1b': `\e`, '\f': `\f`,
	'\n': `\n`, '\r': `\r`, '\t': `\t`, '\v': `\v`,
	'\\': `\\`, '"': `\"`,
}

func writeEscapedString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := byte2escaped[c]; ok {
			sb.WriteString(esc)
		} else {
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}

// Print renders v in print form (spec §6.1): human-friendly, with
// lambdas/macros/primitives/errors shown as opaque tags.
func Print(v Value) string {
	var sb strings.Builder
	print(&sb, v, false)
	return sb.String()
}

// Write renders v in write form (spec §6.1): machine-readable, with
// lambdas and macros rewritten as `(lambda (formals...) body...)` /
// `(macro ...)`. Write returns "" for primitives and errors, which are
// not writable.
func Write(v Value) (string, bool) {
	if v.Item.Kind == Primitive || v.Item.Kind == Error {
		return "", false
	}
	var sb strings.Builder
	print(&sb, v, true)
	return sb.String(), true
}

func print(sb *strings.Builder, v Value, write bool) {
	switch {
	case IsNil(v):
		sb.WriteString("nil")
		return
	}
	switch v.Item.Kind {
	case Int:
		sb.WriteString(strconv.FormatInt(v.Item.Num, 10))
	case Float:
		sb.WriteString(strconv.FormatFloat(v.Item.Flt, 'f', 6, 64))
	case Symbol:
		sb.WriteString(v.Item.Str)
	case String:
		writeEscapedString(sb, v.Item.Str)
	case Error:
		sb.WriteString("Error: ")
		sb.WriteString(v.Item.Str)
	case Pair:
		printList(sb, v, write)
	case Primitive:
		sb.WriteString("<primitive>")
	case Lambda:
		printClosure(sb, "lambda", v.Item.Closure, write)
	case Macro:
		printClosure(sb, "macro", v.Item.Closure, write)
	}
}

func printList(sb *strings.Builder, v Value, write bool) {
	sb.WriteByte('(')
	first := true
	cur := v
	for {
		if IsNil(cur) {
			break
		}
		if cur.Item.Kind != Pair {
			// improper list tail: printed after " . " in both write
			// and print form.
			sb.WriteString(" . ")
			print(sb, cur, write)
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		print(sb, cur.Item.Car, write)
		cur = cur.Item.Cdr
	}
	sb.WriteByte(')')
}

func printClosure(sb *strings.Builder, tag string, c *Closure, write bool) {
	if !write {
		sb.WriteByte('<')
		sb.WriteString(tag)
		sb.WriteByte('>')
		return
	}
	sb.WriteByte('(')
	sb.WriteString(tag)
	sb.WriteString(" (")
	for i, f := range c.Formals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
	}
	if c.HasRest {
		if len(c.Formals) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("&rest ")
		sb.WriteString(c.Rest)
	}
	sb.WriteByte(')')
	for _, b := range c.Body {
		sb.WriteByte(' ')
		print(sb, b, write)
	}
	sb.WriteByte(')')
}

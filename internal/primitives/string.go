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

// String operations: write-to-str, format, substring, re-match-groups.
// Grounded on original_source/src/prim_string.c, with re-match-groups'
// POSIX extended-regex semantics grounded on sl_regex_match_groups in
// original_source/src/util.c.
package primitives

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/db47h/sl/internal/value"
)

func primWriteToStr(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "write-to-str")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "write-to-str"); errv != nil {
		return errv, nil
	}
	s, ok := value.Write(elems[0])
	if !ok {
		return a.NewErrorf("write-to-str: cannot write expression of type %s", elems[0].Item.Kind), nil
	}
	return a.NewString(s), nil
}

// primFormat implements a printf-like mini-language: %s/%d/%u/%x/%f/%%,
// each consuming the next argument with strict type checking against
// the specifier. %% emits a single %, and an unrecognized specifier is
// passed through literally.
func primFormat(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "format")
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 1, "format"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.String, "format"); errv != nil {
		return errv, nil
	}
	fstr := elems[0].Item.Str
	rest := elems[1:]
	argN := 0

	var sb strings.Builder
	for i := 0; i < len(fstr); i++ {
		c := fstr[i]
		if c != '%' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(fstr) {
			break
		}
		spec := fstr[i]
		if spec == '%' {
			sb.WriteByte('%')
			continue
		}
		var wantKind value.Kind
		switch spec {
		case 's':
			wantKind = value.String
		case 'd', 'u', 'x':
			wantKind = value.Int
		case 'f':
			wantKind = value.Float
		default:
			sb.WriteByte('%')
			sb.WriteByte(spec)
			continue
		}
		if argN >= len(rest) {
			return a.NewErrorf("format: not enough arguments for format string"), nil
		}
		arg := rest[argN]
		if arg.Item.Kind != wantKind {
			return a.NewErrorf("format: specifier %%%c expected argument of type %s, got %s", spec, wantKind, arg.Item.Kind), nil
		}
		switch spec {
		case 's':
			sb.WriteString(arg.Item.Str)
		case 'd':
			fmt.Fprintf(&sb, "%d", arg.Item.Num)
		case 'u':
			fmt.Fprintf(&sb, "%d", uint64(arg.Item.Num))
		case 'x':
			fmt.Fprintf(&sb, "%#x", arg.Item.Num)
		case 'f':
			fmt.Fprintf(&sb, "%f", arg.Item.Flt)
		}
		argN++
	}
	return a.NewString(sb.String()), nil
}

func clamp(n, lo, hi int64) int64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func primSubstring(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "substring")
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 1, "substring"); errv != nil {
		return errv, nil
	}
	if len(elems) > 3 {
		return a.NewErrorf("substring: expected between 1 and 3 arguments, got %d", len(elems)), nil
	}
	if errv := expectKind(a, elems[0], value.String, "substring"); errv != nil {
		return errv, nil
	}
	s := elems[0].Item.Str
	strLen := int64(len(s))
	start, end := int64(0), strLen

	if len(elems) >= 2 && !value.IsNil(elems[1]) {
		if errv := expectKind(a, elems[1], value.Int, "substring"); errv != nil {
			return errv, nil
		}
		start = elems[1].Item.Num
		if start < 0 {
			start += strLen
		}
	}
	if len(elems) >= 3 && !value.IsNil(elems[2]) {
		if errv := expectKind(a, elems[2], value.Int, "substring"); errv != nil {
			return errv, nil
		}
		end = elems[2].Item.Num
		if end < 0 {
			end += strLen
		}
	}

	end = clamp(end, 0, strLen)
	start = clamp(start, 0, end)
	return a.NewString(s[start:end]), nil
}

func primReMatchGroups(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "re-match-groups")
	if errv != nil {
		return errv, nil
	}
	if len(elems) < 2 || len(elems) > 3 {
		return a.NewErrorf("re-match-groups: expected 2 or 3 arguments, got %d", len(elems)), nil
	}
	if errv := expectKind(a, elems[0], value.String, "re-match-groups"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[1], value.String, "re-match-groups"); errv != nil {
		return errv, nil
	}
	pattern := elems[0].Item.Str
	str := elems[1].Item.Str
	ignoreCase := len(elems) >= 3 && !value.IsNil(elems[2])

	// CompilePOSIX rejects the (?i) flag group, so the case-insensitive
	// path compiles with Perl syntax and switches to leftmost-longest.
	var re *regexp.Regexp
	var err error
	if ignoreCase {
		re, err = regexp.Compile("(?i)" + pattern)
		if err == nil {
			re.Longest()
		}
	} else {
		re, err = regexp.CompilePOSIX(pattern)
	}
	if err != nil {
		return a.NewErrorf("re-match-groups: invalid regular expression: %s", err), nil
	}

	idx := re.FindStringSubmatchIndex(str)
	if idx == nil {
		return a.Nil(), nil
	}

	var result []value.Value
	for i := 0; i+1 < len(idx); i += 2 {
		if idx[i] == -1 || idx[i+1] == -1 {
			break
		}
		result = append(result, a.NewPair(a.NewInt(int64(idx[i])), a.NewPair(a.NewInt(int64(idx[i+1])), a.Nil())))
	}
	return a.FromSlice(result), nil
}

// RegisterString binds the string primitives into root.
func RegisterString(root value.Env, a *value.Arena) {
	bind(root, a, "write-to-str", primWriteToStr)
	bind(root, a, "format", primFormat)
	bind(root, a, "substring", primSubstring)
	bind(root, a, "re-match-groups", primReMatchGroups)
}

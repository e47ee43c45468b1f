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

// Package primitives registers the ordinary (non-special-form)
// built-ins of the catalogue: evaluation control, equality/order, type
// queries and conversions, list manipulation, strings, arithmetic,
// bitwise operations and I/O. One file per family, grounded
// file-for-file on original_source/src/prim_*.c.
package primitives

import "github.com/db47h/sl/internal/value"

func argList(a *value.Arena, args value.Value, name string) ([]value.Value, value.Value) {
	elems, ok := value.Elements(args)
	if !ok {
		return nil, a.NewErrorf("%s: improper argument list", name)
	}
	return elems, nil
}

func expectArgNum(a *value.Arena, elems []value.Value, n int, name string) value.Value {
	if len(elems) != n {
		return a.NewErrorf("%s: expected %d argument(s), got %d", name, n, len(elems))
	}
	return nil
}

func expectMinArgs(a *value.Arena, elems []value.Value, n int, name string) value.Value {
	if len(elems) < n {
		return a.NewErrorf("%s: expected at least %d argument(s), got %d", name, n, len(elems))
	}
	return nil
}

func expectKind(a *value.Arena, v value.Value, k value.Kind, name string) value.Value {
	if v.Item.Kind != k {
		return a.NewErrorf("%s: expected %s, got %s", name, k, v.Item.Kind)
	}
	return nil
}

func boolResult(a *value.Arena, cond bool) value.Value { return a.Bool(cond) }

func wrongType(a *value.Arena, name string, v value.Value) value.Value {
	return a.NewErrorf("%s: unexpected argument of type %s", name, v.Item.Kind)
}

func bind(root value.Env, a *value.Arena, name string, fn value.PrimFunc) {
	root.BindGlobal(name, a.NewPrimitive(fn), 0)
}

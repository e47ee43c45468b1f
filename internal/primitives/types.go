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

// Type queries and conversions. Grounded on
// original_source/src/prim_type.c. The is-* predicates test the whole
// argument list for homogeneity (value.IsHomogeneous), not just the
// first element.
package primitives

import (
	"strconv"

	"github.com/db47h/sl/internal/value"
)

func primTypeOf(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "type-of")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "type-of"); errv != nil {
		return errv, nil
	}
	return a.NewSymbol(elems[0].Item.Kind.String()), nil
}

func typePredicate(name string, k value.Kind) value.PrimFunc {
	return func(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
		a := ev.Arena()
		return a.Bool(value.IsHomogeneous(args, k)), nil
	}
}

func primIsList(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok {
		return a.NewErrorf("list?: improper argument list"), nil
	}
	for _, el := range elems {
		if !value.IsProperList(el) {
			return a.Nil(), nil
		}
	}
	return a.Tru(), nil
}

func primInt2Flt(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "int->flt")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "int->flt"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Int, "int->flt"); errv != nil {
		return errv, nil
	}
	return a.NewFloat(float64(elems[0].Item.Num)), nil
}

func primFlt2Int(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "flt->int")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "flt->int"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Float, "flt->int"); errv != nil {
		return errv, nil
	}
	return a.NewInt(int64(elems[0].Item.Flt)), nil
}

func primInt2Str(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "int->str")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "int->str"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Int, "int->str"); errv != nil {
		return errv, nil
	}
	return a.NewString(strconv.FormatInt(elems[0].Item.Num, 10)), nil
}

func primFlt2Str(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "flt->str")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "flt->str"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Float, "flt->str"); errv != nil {
		return errv, nil
	}
	return a.NewString(strconv.FormatFloat(elems[0].Item.Flt, 'g', -1, 64)), nil
}

func primStr2Int(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "str->int")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "str->int"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.String, "str->int"); errv != nil {
		return errv, nil
	}
	// strtoll(..., NULL, 0) tolerates trailing garbage and returns 0 on
	// failure to parse; ParseInt does not, so fall back to a prefix scan.
	n, err := strconv.ParseInt(elems[0].Item.Str, 10, 64)
	if err != nil {
		s := elems[0].Item.Str
		end := 0
		if end < len(s) && (s[end] == '+' || s[end] == '-') {
			end++
		}
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		n, err = strconv.ParseInt(s[:end], 10, 64)
		if err != nil {
			n = 0
		}
	}
	return a.NewInt(n), nil
}

func primStr2Flt(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "str->flt")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "str->flt"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.String, "str->flt"); errv != nil {
		return errv, nil
	}
	f, err := strconv.ParseFloat(elems[0].Item.Str, 64)
	if err != nil {
		f = 0
	}
	return a.NewFloat(f), nil
}

// RegisterTypes binds the type-query and conversion primitives into
// root.
func RegisterTypes(root value.Env, a *value.Arena) {
	bind(root, a, "type-of", primTypeOf)
	bind(root, a, "int?", typePredicate("int?", value.Int))
	bind(root, a, "flt?", typePredicate("flt?", value.Float))
	bind(root, a, "symbol?", typePredicate("symbol?", value.Symbol))
	bind(root, a, "string?", typePredicate("string?", value.String))
	bind(root, a, "primitive?", typePredicate("primitive?", value.Primitive))
	bind(root, a, "lambda?", typePredicate("lambda?", value.Lambda))
	bind(root, a, "macro?", typePredicate("macro?", value.Macro))
	bind(root, a, "list?", primIsList)
	bind(root, a, "int->flt", primInt2Flt)
	bind(root, a, "flt->int", primFlt2Int)
	bind(root, a, "int->str", primInt2Str)
	bind(root, a, "flt->str", primFlt2Str)
	bind(root, a, "str->int", primStr2Int)
	bind(root, a, "str->flt", primStr2Flt)
}

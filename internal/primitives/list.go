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

// List construction and inspection: list, cons, car, cdr, length,
// append. Grounded on original_source/src/prim_list.c. Values here are
// immutable once built (no Clone/CloneSpine needed, unlike the
// original's expr_clone_tree defensive copies).
package primitives

import "github.com/db47h/sl/internal/value"

func primList(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	return args, nil
}

func primCons(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "cons")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 2, "cons"); errv != nil {
		return errv, nil
	}
	return a.NewPair(elems[0], elems[1]), nil
}

func primCar(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "car")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "car"); errv != nil {
		return errv, nil
	}
	return a.Car(elems[0]), nil
}

func primCdr(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "cdr")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "cdr"); errv != nil {
		return errv, nil
	}
	return a.Cdr(elems[0]), nil
}

func primLength(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "length")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "length"); errv != nil {
		return errv, nil
	}
	n, errv := a.Length(elems[0])
	if errv != nil {
		return errv, nil
	}
	return a.NewInt(int64(n)), nil
}

func primAppend(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "append")
	if errv != nil {
		return errv, nil
	}
	if len(elems) == 0 {
		return a.Nil(), nil
	}
	if elems[0].Item.Kind == value.String {
		var s string
		for _, el := range elems {
			if el.Item.Kind != value.String {
				return a.NewErrorf("append: all arguments must be strings, got %s", el.Item.Kind), nil
			}
			s += el.Item.Str
		}
		return a.NewString(s), nil
	}
	var result []value.Value
	for _, el := range elems {
		if !value.IsProperList(el) {
			return a.NewErrorf("append: all arguments must be proper lists or strings, got %s", el.Item.Kind), nil
		}
		sub, _ := value.Elements(el)
		result = append(result, sub...)
	}
	return a.FromSlice(result), nil
}

// RegisterList binds the list primitives into root.
func RegisterList(root value.Env, a *value.Arena) {
	bind(root, a, "list", primList)
	bind(root, a, "cons", primCons)
	bind(root, a, "car", primCar)
	bind(root, a, "cdr", primCdr)
	bind(root, a, "length", primLength)
	bind(root, a, "append", primAppend)
}

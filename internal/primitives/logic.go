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

// Equality and ordering: equal?, =, <, >. All are variadic chained
// comparisons over at least 2 arguments. Grounded on
// original_source/src/prim_logic.c.
package primitives

import "github.com/db47h/sl/internal/value"

func chainedCompare(a *value.Arena, args value.Value, name string, cmp func(x, y value.Value) (bool, bool)) (value.Value, error) {
	elems, errv := argList(a, args, name)
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 2, name); errv != nil {
		return errv, nil
	}
	for i := 0; i+1 < len(elems); i++ {
		ok, valid := cmp(elems[i], elems[i+1])
		if !valid {
			return wrongType(a, name, elems[i]), nil
		}
		if !ok {
			return a.Nil(), nil
		}
	}
	return a.Tru(), nil
}

func primEqual(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	return chainedCompare(a, args, "equal?", func(x, y value.Value) (bool, bool) {
		return value.Equal(x, y), true
	})
}

func primNumEqual(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	return chainedCompare(a, args, "=", value.NumEqual)
}

func primLess(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	return chainedCompare(a, args, "<", func(x, y value.Value) (bool, bool) {
		return value.Less(x, y), true
	})
}

func primGreater(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	return chainedCompare(a, args, ">", func(x, y value.Value) (bool, bool) {
		return value.Greater(x, y), true
	})
}

// RegisterLogic binds the equality/order primitives into root.
func RegisterLogic(root value.Env, a *value.Arena) {
	bind(root, a, "equal?", primEqual)
	bind(root, a, "=", primNumEqual)
	bind(root, a, "<", primLess)
	bind(root, a, ">", primGreater)
}

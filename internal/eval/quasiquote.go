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

// Quasiquote rewrite engine, grounded on
// original_source/src/prim_special.c's handle_backquote_arg/is_call_to.
// Nested backquotes are not specially interpreted: a nested `(\` ...)`
// child is just an ordinary Pair whose head happens to be the
// backquote symbol, so the recursion in rewriteList handles it without
// dedicated nesting logic (spec §4.4.4).
package eval

import "github.com/db47h/sl/internal/value"

func isUnquoteCall(v value.Value) bool {
	return v.Item.Kind == value.Pair && v.Item.Car.Item.Kind == value.Symbol &&
		(v.Item.Car.Item.Str == "," || v.Item.Car.Item.Str == "unquote")
}

func isSpliceCall(v value.Value) bool {
	return v.Item.Kind == value.Pair && v.Item.Car.Item.Kind == value.Symbol &&
		(v.Item.Car.Item.Str == ",@" || v.Item.Car.Item.Str == "splice")
}

func singleArg(v value.Value) (value.Value, bool) {
	elems, ok := value.Elements(v.Item.Cdr)
	if !ok || len(elems) != 1 {
		return nil, false
	}
	return elems[0], true
}

func quasiquote(ev value.Evaluator, e value.Env, expr value.Value) (value.Value, error) {
	a := ev.Arena()
	if expr.Item.Kind != value.Pair {
		return expr, nil
	}
	if isSpliceCall(expr) {
		return a.NewError("splice (,@) is not valid as the direct argument of backquote"), nil
	}
	if isUnquoteCall(expr) {
		sub, ok := singleArg(expr)
		if !ok {
			return a.NewErrorf("unquote: expected exactly 1 argument"), nil
		}
		return ev.Eval(e, sub)
	}
	return rewriteList(ev, e, expr)
}

func rewriteList(ev value.Evaluator, e value.Env, lst value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(lst)
	if !ok {
		// improper list: rewrite head and tail independently.
		car, err := quasiquote(ev, e, lst.Item.Car)
		if err != nil {
			return nil, err
		}
		if car.Item.Kind == value.Error {
			return car, nil
		}
		cdr, err := quasiquote(ev, e, lst.Item.Cdr)
		if err != nil {
			return nil, err
		}
		if cdr.Item.Kind == value.Error {
			return cdr, nil
		}
		return a.NewPair(car, cdr), nil
	}

	var result []value.Value
	for _, child := range elems {
		if isSpliceCall(child) {
			sub, ok := singleArg(child)
			if !ok {
				return a.NewErrorf("splice: expected exactly 1 argument"), nil
			}
			v, err := ev.Eval(e, sub)
			if err != nil {
				return nil, err
			}
			if v.Item.Kind == value.Error {
				return v, nil
			}
			spliced, ok := value.Elements(v)
			if !ok {
				return a.NewErrorf("splice: expected a proper list, got %s", v.Item.Kind), nil
			}
			result = append(result, spliced...)
			continue
		}
		rewritten, err := quasiquote(ev, e, child)
		if err != nil {
			return nil, err
		}
		if rewritten.Item.Kind == value.Error {
			return rewritten, nil
		}
		result = append(result, rewritten)
	}
	return a.FromSlice(result), nil
}

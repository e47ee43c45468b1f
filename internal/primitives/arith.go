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

// Arithmetic: +, -, *, /, mod, quotient, remainder, round, floor,
// ceiling, truncate. Grounded on original_source/src/prim_arith.c.
//
// prim_arith.c's doc comments for `+' and `*' both claim a single
// argument is negated (copy-pasted from `-', the only one whose code
// actually does so); neither `+' nor `*''s actual code has a
// single-argument special case, so here both are identity on one
// argument. See DESIGN.md.
package primitives

import (
	"math"

	"github.com/db47h/sl/internal/value"
)

func genericNum(v value.Value) float64 {
	if v.Item.Kind == value.Int {
		return float64(v.Item.Num)
	}
	return v.Item.Flt
}

func numbersHomogeneous(elems []value.Value) bool {
	if len(elems) == 0 {
		return true
	}
	k := elems[0].Item.Kind
	for _, e := range elems[1:] {
		if e.Item.Kind != k {
			return false
		}
	}
	return true
}

func checkAllNumbers(a *value.Arena, elems []value.Value, name string) value.Value {
	for _, e := range elems {
		if !e.Item.Kind.IsNumber() {
			return a.NewErrorf("%s: expected a numeric argument, got %s", name, e.Item.Kind)
		}
	}
	return nil
}

func arithFold(a *value.Arena, elems []value.Value, name string, identity int64, intOp func(a, b int64) int64, fltOp func(a, b float64) float64) value.Value {
	if errv := checkAllNumbers(a, elems, name); errv != nil {
		return errv
	}
	if len(elems) == 0 {
		return a.NewInt(identity)
	}
	if !numbersHomogeneous(elems) {
		total := genericNum(elems[0])
		for _, e := range elems[1:] {
			total = fltOp(total, genericNum(e))
		}
		return a.NewFloat(total)
	}
	if elems[0].Item.Kind == value.Int {
		total := elems[0].Item.Num
		for _, e := range elems[1:] {
			total = intOp(total, e.Item.Num)
		}
		return a.NewInt(total)
	}
	total := elems[0].Item.Flt
	for _, e := range elems[1:] {
		total = fltOp(total, e.Item.Flt)
	}
	return a.NewFloat(total)
}

func primAdd(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "+")
	if errv != nil {
		return errv, nil
	}
	return arithFold(a, elems, "+", 0,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y }), nil
}

func primSub(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "-")
	if errv != nil {
		return errv, nil
	}
	if errv := checkAllNumbers(a, elems, "-"); errv != nil {
		return errv, nil
	}
	if len(elems) == 0 {
		return a.NewInt(0), nil
	}
	if len(elems) == 1 {
		if elems[0].Item.Kind == value.Int {
			return a.NewInt(-elems[0].Item.Num), nil
		}
		return a.NewFloat(-elems[0].Item.Flt), nil
	}
	return arithFold(a, elems, "-", 0,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y }), nil
}

func primMul(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "*")
	if errv != nil {
		return errv, nil
	}
	return arithFold(a, elems, "*", 1,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y }), nil
}

func primDiv(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "/")
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 1, "/"); errv != nil {
		return errv, nil
	}
	if errv := checkAllNumbers(a, elems, "/"); errv != nil {
		return errv, nil
	}
	total := genericNum(elems[0])
	for _, e := range elems[1:] {
		n := genericNum(e)
		if n == 0 {
			return a.NewErrorf("/: division by zero"), nil
		}
		total /= n
	}
	return a.NewFloat(total), nil
}

func primMod(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "mod")
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 1, "mod"); errv != nil {
		return errv, nil
	}
	if errv := checkAllNumbers(a, elems, "mod"); errv != nil {
		return errv, nil
	}
	total := genericNum(elems[0])
	for _, e := range elems[1:] {
		n := genericNum(e)
		if n == 0 {
			return a.NewErrorf("mod: division by zero"), nil
		}
		total = math.Mod(total, n)
		if n < 0 {
			if total > 0 {
				total += n
			}
		} else if total < 0 {
			total += n
		}
	}
	return a.NewFloat(total), nil
}

func primQuotient(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "quotient")
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 1, "quotient"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Int, "quotient"); errv != nil {
		return errv, nil
	}
	total := elems[0].Item.Num
	for _, e := range elems[1:] {
		if errv := expectKind(a, e, value.Int, "quotient"); errv != nil {
			return errv, nil
		}
		if e.Item.Num == 0 {
			return a.NewErrorf("quotient: division by zero"), nil
		}
		total /= e.Item.Num
	}
	return a.NewInt(total), nil
}

func primRemainder(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "remainder")
	if errv != nil {
		return errv, nil
	}
	if errv := expectMinArgs(a, elems, 1, "remainder"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Int, "remainder"); errv != nil {
		return errv, nil
	}
	total := elems[0].Item.Num
	for _, e := range elems[1:] {
		if errv := expectKind(a, e, value.Int, "remainder"); errv != nil {
			return errv, nil
		}
		if e.Item.Num == 0 {
			return a.NewErrorf("remainder: division by zero"), nil
		}
		total %= e.Item.Num
	}
	return a.NewInt(total), nil
}

func roundLike(name string, fn func(float64) float64) value.PrimFunc {
	return func(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
		a := ev.Arena()
		elems, errv := argList(a, args, name)
		if errv != nil {
			return errv, nil
		}
		if errv := expectArgNum(a, elems, 1, name); errv != nil {
			return errv, nil
		}
		switch elems[0].Item.Kind {
		case value.Int:
			return a.NewInt(elems[0].Item.Num), nil
		case value.Float:
			return a.NewFloat(fn(elems[0].Item.Flt)), nil
		default:
			return wrongType(a, name, elems[0]), nil
		}
	}
}

// RegisterArith binds the arithmetic primitives into root.
func RegisterArith(root value.Env, a *value.Arena) {
	bind(root, a, "+", primAdd)
	bind(root, a, "-", primSub)
	bind(root, a, "*", primMul)
	bind(root, a, "/", primDiv)
	bind(root, a, "mod", primMod)
	bind(root, a, "quotient", primQuotient)
	bind(root, a, "remainder", primRemainder)
	bind(root, a, "round", roundLike("round", math.Round))
	bind(root, a, "floor", roundLike("floor", math.Floor))
	bind(root, a, "ceiling", roundLike("ceiling", math.Ceil))
	bind(root, a, "truncate", roundLike("truncate", math.Trunc))
}

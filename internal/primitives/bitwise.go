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

// Bitwise operations on integers: bit-and, bit-or, bit-xor, bit-not,
// shr, shl. Grounded on original_source/src/prim_bitwise.c.
package primitives

import "github.com/db47h/sl/internal/value"

func bitFold(name string, identity int64, op func(a, b int64) int64) value.PrimFunc {
	return func(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
		a := ev.Arena()
		elems, errv := argList(a, args, name)
		if errv != nil {
			return errv, nil
		}
		if errv := expectMinArgs(a, elems, 1, name); errv != nil {
			return errv, nil
		}
		if errv := expectKind(a, elems[0], value.Int, name); errv != nil {
			return errv, nil
		}
		total := elems[0].Item.Num
		for _, e := range elems[1:] {
			if errv := expectKind(a, e, value.Int, name); errv != nil {
				return errv, nil
			}
			total = op(total, e.Item.Num)
		}
		return a.NewInt(total), nil
	}
}

func primBitNot(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "bit-not")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "bit-not"); errv != nil {
		return errv, nil
	}
	if errv := expectKind(a, elems[0], value.Int, "bit-not"); errv != nil {
		return errv, nil
	}
	return a.NewInt(^elems[0].Item.Num), nil
}

func shiftOp(name string, op func(a, b int64) int64) value.PrimFunc {
	return func(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
		a := ev.Arena()
		elems, errv := argList(a, args, name)
		if errv != nil {
			return errv, nil
		}
		if errv := expectArgNum(a, elems, 2, name); errv != nil {
			return errv, nil
		}
		if errv := expectKind(a, elems[0], value.Int, name); errv != nil {
			return errv, nil
		}
		if errv := expectKind(a, elems[1], value.Int, name); errv != nil {
			return errv, nil
		}
		return a.NewInt(op(elems[0].Item.Num, elems[1].Item.Num)), nil
	}
}

// RegisterBitwise binds the bitwise primitives into root.
func RegisterBitwise(root value.Env, a *value.Arena) {
	bind(root, a, "bit-and", bitFold("bit-and", -1, func(x, y int64) int64 { return x & y }))
	bind(root, a, "bit-or", bitFold("bit-or", 0, func(x, y int64) int64 { return x | y }))
	bind(root, a, "bit-xor", bitFold("bit-xor", 0, func(x, y int64) int64 { return x ^ y }))
	bind(root, a, "bit-not", primBitNot)
	bind(root, a, "shr", shiftOp("shr", func(x, y int64) int64 { return x >> uint64(y) }))
	bind(root, a, "shl", shiftOp("shl", func(x, y int64) int64 { return x << uint64(y) }))
}

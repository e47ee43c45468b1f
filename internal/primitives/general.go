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

// Evaluation control (eval, apply, macroexpand), set and randomness.
// Grounded on original_source/src/prim_general.c.
package primitives

import (
	"math/rand"

	"github.com/db47h/sl/internal/value"
)

// rng is process-wide: the evaluator is single-threaded by design
// (spec §5), so no locking is needed around it.
var rng = rand.New(rand.NewSource(1))

func primEval(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "eval")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "eval"); errv != nil {
		return errv, nil
	}
	return ev.Eval(e, elems[0])
}

func primApply(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "apply")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 2, "apply"); errv != nil {
		return errv, nil
	}
	fn, callArgs := elems[0], elems[1]
	if !fn.Item.Kind.IsApplicable() {
		return a.NewErrorf("apply: expected a function or macro as the first argument, got %s", fn.Item.Kind), nil
	}
	if !value.IsProperList(callArgs) {
		return a.NewErrorf("apply: expected a list of arguments, got %s", callArgs.Item.Kind), nil
	}
	return ev.Apply(e, fn, callArgs)
}

func primMacroExpand(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "macroexpand")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "macroexpand"); errv != nil {
		return errv, nil
	}
	return ev.MacroExpand(e, elems[0])
}

// primSet implements the supplemented `set` primitive: (set 'name val)
// rebinds name wherever it is already bound in the chain. See
// DESIGN.md for why this rebinds by name rather than mutating the
// evaluated Expr in place the way prim_set.c does.
func primSet(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "set")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 2, "set"); errv != nil {
		return errv, nil
	}
	name := elems[0]
	if errv := expectKind(a, name, value.Symbol, "set"); errv != nil {
		return errv, nil
	}
	ok, wasConst := e.Set(name.Item.Str, elems[1])
	if wasConst {
		return a.NewErrorf("set: %s is bound const", name.Item.Str), nil
	}
	if !ok {
		return a.NewErrorf("set: %s is unbound", name.Item.Str), nil
	}
	return elems[1], nil
}

// primRandom mirrors prim_random's "return the same numeric type we
// received" contract, using math/rand in place of rand()/RAND_MAX
// scaling.
func primRandom(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "random")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "random"); errv != nil {
		return errv, nil
	}
	limit := elems[0]
	switch limit.Item.Kind {
	case value.Int:
		if limit.Item.Num <= 0 {
			return a.NewErrorf("random: expected a positive limit"), nil
		}
		return a.NewInt(rng.Int63n(limit.Item.Num)), nil
	case value.Float:
		return a.NewFloat(rng.Float64() * limit.Item.Flt), nil
	default:
		return wrongType(a, "random", limit), nil
	}
}

func primSetRandomSeed(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, errv := argList(a, args, "set-random-seed")
	if errv != nil {
		return errv, nil
	}
	if errv := expectArgNum(a, elems, 1, "set-random-seed"); errv != nil {
		return errv, nil
	}
	seed := elems[0]
	if errv := expectKind(a, seed, value.Int, "set-random-seed"); errv != nil {
		return errv, nil
	}
	rng = rand.New(rand.NewSource(seed.Item.Num))
	return a.Tru(), nil
}

// RegisterGeneral binds the evaluation-control, set and randomness
// primitives into root.
func RegisterGeneral(root value.Env, a *value.Arena) {
	bind(root, a, "eval", primEval)
	bind(root, a, "apply", primApply)
	bind(root, a, "macroexpand", primMacroExpand)
	bind(root, a, "set", primSet)
	bind(root, a, "random", primRandom)
	bind(root, a, "set-random-seed", primSetRandomSeed)
}

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

package eval

import "github.com/db47h/sl/internal/value"

// Eval implements spec §4.4.1. The returned error is reserved for host-
// boundary failures surfacing from a primitive; ordinary evaluation
// failures come back as a non-nil Value of Kind Error.
func (ip *Interp) Eval(e value.Env, expr value.Value) (value.Value, error) {
	switch expr.Item.Kind {
	case value.Int, value.Float, value.String, value.Primitive, value.Lambda, value.Macro, value.Error:
		return expr, nil
	case value.Symbol:
		v, ok := e.Get(expr.Item.Str)
		if !ok {
			return ip.arena.NewErrorf("Unbound symbol: %s", expr.Item.Str), nil
		}
		return v, nil
	case value.Pair:
		return ip.evalApplication(e, expr)
	default:
		return ip.arena.NewErrorf("cannot evaluate value of kind %s", expr.Item.Kind), nil
	}
}

func (ip *Interp) evalApplication(e value.Env, form value.Value) (value.Value, error) {
	if !value.IsProperList(form) {
		return ip.arena.NewErrorf("cannot apply: not a proper list"), nil
	}
	head := form.Item.Car
	rawArgs := form.Item.Cdr

	special := false
	if head.Item.Kind == value.Symbol {
		if flags, ok := e.GetFlags(head.Item.Str); ok {
			special = flags.Has(value.SpecialForm)
		}
	}

	fn, err := ip.Eval(e, head)
	if err != nil {
		return nil, err
	}
	if fn.Item.Kind == value.Error {
		return fn, nil
	}
	if !fn.Item.Kind.IsApplicable() {
		return ip.arena.NewErrorf("Expected function or macro, got %s", fn.Item.Kind), nil
	}

	shouldEvalArgs := !value.IsNil(rawArgs) && !special && fn.Item.Kind != value.Macro

	passedArgs := rawArgs
	if shouldEvalArgs {
		elems, ok := value.Elements(rawArgs)
		if !ok {
			return ip.arena.NewErrorf("cannot apply: improper argument list"), nil
		}
		evaluated := make([]value.Value, len(elems))
		for i, a := range elems {
			v, err := ip.Eval(e, a)
			if err != nil {
				return nil, err
			}
			if v.Item.Kind == value.Error {
				return v, nil
			}
			evaluated[i] = v
		}
		passedArgs = ip.arena.FromSlice(evaluated)
	}

	traced := ip.trace.IsTraced(fn)
	if traced {
		ip.trace.PrintPre(ip.out, fn, passedArgs)
	}

	result, err := ip.Apply(e, fn, passedArgs)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// apply's internal protocol error: synthesize an Error rather
		// than propagate a Go nil (spec §4.4.1 step 6).
		result = ip.arena.NewError("unknown error (?)")
	}

	if traced {
		ip.trace.PrintPost(ip.out, result)
	}

	return result, nil
}

// MacroExpand implements the `macroexpand` primitive's semantics: apply
// expr's head, if it names a Macro, once, without then evaluating the
// expansion (spec §6.2).
func (ip *Interp) MacroExpand(e value.Env, expr value.Value) (value.Value, error) {
	if expr.Item.Kind != value.Pair {
		return expr, nil
	}
	head := expr.Item.Car
	fn, err := ip.Eval(e, head)
	if err != nil {
		return nil, err
	}
	if fn.Item.Kind != value.Macro {
		return expr, nil
	}
	return ip.invokeClosure(e, fn.Item.Closure, expr.Item.Cdr)
}

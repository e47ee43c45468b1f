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

// Special-form primitives: quote, backquote/unquote/splice, define,
// define-global, lambda, macro, begin, if, or, and. Grounded on
// original_source/src/prim_special.c. Each is registered with the
// SpecialForm binding flag, so the evaluator passes their args
// unevaluated (spec §4.4.3).
package eval

import "github.com/db47h/sl/internal/value"

func primQuote(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok || len(elems) != 1 {
		return a.NewErrorf("quote: expected exactly 1 argument"), nil
	}
	return elems[0], nil
}

func primBackquote(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok || len(elems) != 1 {
		return a.NewErrorf("backquote: expected exactly 1 argument"), nil
	}
	return quasiquote(ev, e, elems[0])
}

func primUnquoteOutsideBackquote(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	return ev.Arena().NewError("unquote (,) is only valid inside backquote"), nil
}

func primSpliceOutsideBackquote(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	return ev.Arena().NewError("splice (,@) is only valid inside backquote"), nil
}

func primDefine(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok || len(elems) != 2 {
		return a.NewErrorf("define: expected exactly 2 arguments"), nil
	}
	name := elems[0]
	if name.Item.Kind != value.Symbol {
		return a.NewErrorf("define: expected a symbol, got %s", name.Item.Kind), nil
	}
	v, err := ev.Eval(e, elems[1])
	if err != nil {
		return nil, err
	}
	if v.Item.Kind == value.Error {
		return v, nil
	}
	if !e.Bind(name.Item.Str, v, 0) {
		return a.NewErrorf("define: %s is bound const", name.Item.Str), nil
	}
	return v, nil
}

func primDefineGlobal(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok || len(elems) != 2 {
		return a.NewErrorf("define-global: expected exactly 2 arguments"), nil
	}
	name := elems[0]
	if name.Item.Kind != value.Symbol {
		return a.NewErrorf("define-global: expected a symbol, got %s", name.Item.Kind), nil
	}
	v, err := ev.Eval(e, elems[1])
	if err != nil {
		return nil, err
	}
	if v.Item.Kind == value.Error {
		return v, nil
	}
	if !e.BindGlobal(name.Item.Str, v, 0) {
		return a.NewErrorf("define-global: %s is bound const", name.Item.Str), nil
	}
	return v, nil
}

// parseFormals splits a formal-parameter list into mandatory names and
// an optional &rest name (spec §3.3).
func parseFormals(a *value.Arena, formalsList value.Value) (formals []string, hasRest bool, rest string, errv value.Value) {
	elems, ok := value.Elements(formalsList)
	if !ok {
		return nil, false, "", a.NewErrorf("expected a proper list of formal parameters")
	}
	for i := 0; i < len(elems); i++ {
		f := elems[i]
		if f.Item.Kind != value.Symbol {
			return nil, false, "", a.NewErrorf("formal parameters must be symbols")
		}
		if f.Item.Str == "&rest" {
			if i+2 != len(elems) {
				return nil, false, "", a.NewErrorf("&rest must be followed by exactly one name")
			}
			return formals, true, elems[i+1].Item.Str, nil
		}
		formals = append(formals, f.Item.Str)
	}
	return formals, false, "", nil
}

func makeClosure(ev value.Evaluator, e value.Env, args value.Value, kind value.Kind, label string) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok || len(elems) < 2 {
		return a.NewErrorf("%s: expected a formal list and at least one body expression", label), nil
	}
	formals, hasRest, rest, errv := parseFormals(a, elems[0])
	if errv != nil {
		return errv, nil
	}
	return a.NewClosure(kind, &value.Closure{
		Env:     e.Child(),
		Formals: formals,
		HasRest: hasRest,
		Rest:    rest,
		Body:    elems[1:],
	}), nil
}

func primLambda(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	return makeClosure(ev, e, args, value.Lambda, "lambda")
}

func primMacro(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	return makeClosure(ev, e, args, value.Macro, "macro")
}

func primBegin(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok {
		return a.NewErrorf("begin: improper argument list"), nil
	}
	result := a.Nil()
	for _, expr := range elems {
		v, err := ev.Eval(e, expr)
		if err != nil {
			return nil, err
		}
		if v.Item.Kind == value.Error {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func primIf(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok || len(elems) != 3 {
		return a.NewErrorf("if: expected exactly 3 arguments"), nil
	}
	cond, err := ev.Eval(e, elems[0])
	if err != nil {
		return nil, err
	}
	if cond.Item.Kind == value.Error {
		return cond, nil
	}
	if !value.IsNil(cond) {
		return ev.Eval(e, elems[1])
	}
	return ev.Eval(e, elems[2])
}

func primOr(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok {
		return a.NewErrorf("or: improper argument list"), nil
	}
	for _, expr := range elems {
		v, err := ev.Eval(e, expr)
		if err != nil {
			return nil, err
		}
		if v.Item.Kind == value.Error {
			return v, nil
		}
		if !value.IsNil(v) {
			return v, nil
		}
	}
	return a.Nil(), nil
}

func primAnd(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
	a := ev.Arena()
	elems, ok := value.Elements(args)
	if !ok {
		return a.NewErrorf("and: improper argument list"), nil
	}
	result := a.Tru()
	for _, expr := range elems {
		v, err := ev.Eval(e, expr)
		if err != nil {
			return nil, err
		}
		if v.Item.Kind == value.Error {
			return v, nil
		}
		if value.IsNil(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

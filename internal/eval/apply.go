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

// Apply implements spec §4.4.2. args is assumed to already carry the
// correct should-eval-args treatment applied by the caller (Eval, or a
// primitive invoking `apply`/`eval`).
func (ip *Interp) Apply(e value.Env, fn value.Value, args value.Value) (value.Value, error) {
	switch fn.Item.Kind {
	case value.Primitive:
		return fn.Item.Prim(ip, e, args)
	case value.Lambda:
		return ip.invokeClosure(e, fn.Item.Closure, args)
	case value.Macro:
		expansion, err := ip.invokeClosure(e, fn.Item.Closure, args)
		if err != nil {
			return nil, err
		}
		if expansion.Item.Kind == value.Error {
			return expansion, nil
		}
		return ip.Eval(e, expansion)
	default:
		return ip.arena.NewErrorf("Expected function or macro, got %s", fn.Item.Kind), nil
	}
}

// invokeClosure implements spec §4.5. Formals are bound directly into
// the closure's captured frame, not a fresh child of it: the original
// evaluates call arguments left-to-right before invoking apply, so a
// recursive call's rebinding of the shared frame never clobbers a
// value the caller has already consumed: in (* n (fact (- n 1))), n is
// evaluated before the recursive call rebinds it.
func (ip *Interp) invokeClosure(caller value.Env, c *value.Closure, args value.Value) (value.Value, error) {
	elems, ok := value.Elements(args)
	if !ok {
		return ip.arena.NewErrorf("cannot invoke: improper argument list"), nil
	}

	n := len(c.Formals)
	if c.HasRest {
		if len(elems) < n {
			return ip.arena.NewErrorf("wrong number of arguments: expected at least %d, got %d", n, len(elems)), nil
		}
	} else if len(elems) != n {
		return ip.arena.NewErrorf("wrong number of arguments: expected %d, got %d", n, len(elems)), nil
	}

	for i, formal := range c.Formals {
		c.Env.Bind(formal, elems[i], 0)
	}
	if c.HasRest {
		c.Env.Bind(c.Rest, ip.arena.FromSlice(elems[n:]), 0)
	}

	// Transiently retarget the captured frame's parent to the caller's
	// active frame (spec §4.5 step 4).
	c.Env.SetParent(caller)

	result := ip.arena.Nil()
	for _, bodyExpr := range c.Body {
		v, err := ip.Eval(c.Env, bodyExpr)
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

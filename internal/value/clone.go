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

package value

// Clone performs a structural deep copy of v's Pair spine (spec §4.2).
// The evaluator does not call it: quasiquote builds fresh spines with
// FromSlice, and binding and argument passing are by reference.
func (a *Arena) Clone(v Value) Value {
	if IsNil(v) {
		return v
	}
	switch v.Item.Kind {
	case Pair:
		return a.NewPair(a.Clone(v.Item.Car), a.Clone(v.Item.Cdr))
	case Int:
		return a.NewInt(v.Item.Num)
	case Float:
		return a.NewFloat(v.Item.Flt)
	case Symbol:
		return a.NewSymbol(v.Item.Str)
	case String:
		return a.NewString(v.Item.Str)
	case Error:
		return a.NewError(v.Item.Str)
	default:
		// Primitives, Lambdas and Macros are cloned by reference: they
		// are applicable handles, not data to be rewritten.
		return v
	}
}

// CloneSpine copies only the Pair chain of a proper list, sharing the
// original elements (used when a fresh, independently-mutable list
// spine is needed without deep-copying its contents).
func (a *Arena) CloneSpine(v Value) Value {
	elems, ok := Elements(v)
	if !ok {
		return v
	}
	return a.FromSlice(elems)
}

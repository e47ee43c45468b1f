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

// Equal implements structural equality (spec §3.4): same-variant
// payload match, no cross-type numeric promotion, with nil and the
// symbol nil compared equal as a special case.
func Equal(a, b Value) bool {
	if IsNil(a) && IsNil(b) {
		return true
	}
	if IsNil(a) != IsNil(b) {
		return false
	}
	if a.Item.Kind != b.Item.Kind {
		return false
	}
	switch a.Item.Kind {
	case Int:
		return a.Item.Num == b.Item.Num
	case Float:
		return a.Item.Flt == b.Item.Flt
	case Symbol, String, Error:
		return a.Item.Str == b.Item.Str
	case Pair:
		return Equal(a.Item.Car, b.Item.Car) && Equal(a.Item.Cdr, b.Item.Cdr)
	case Primitive:
		return a == b
	case Lambda, Macro:
		return closureEqual(a.Item.Closure, b.Item.Closure)
	default:
		return a == b
	}
}

func closureEqual(x, y *Closure) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	if len(x.Formals) != len(y.Formals) || x.HasRest != y.HasRest || x.Rest != y.Rest {
		return false
	}
	for i := range x.Formals {
		if x.Formals[i] != y.Formals[i] {
			return false
		}
	}
	if len(x.Body) != len(y.Body) {
		return false
	}
	for i := range x.Body {
		if !Equal(x.Body[i], y.Body[i]) {
			return false
		}
	}
	return true
}

// numericValue returns v's value promoted to float64, with ok false if
// v is not a number.
func numericValue(v Value) (f float64, ok bool) {
	switch v.Item.Kind {
	case Int:
		return float64(v.Item.Num), true
	case Float:
		return v.Item.Flt, true
	default:
		return 0, false
	}
}

// NumEqual implements `=`: float-promoting numeric equality (spec
// §3.4).
func NumEqual(a, b Value) (bool, bool) {
	fa, oka := numericValue(a)
	fb, okb := numericValue(b)
	if !oka || !okb {
		return false, false
	}
	return fa == fb, true
}

func byteWiseKind(k Kind) bool { return k == Symbol || k == String || k == Error }

// Less implements `<`: float-promoted for number↔number, byte-wise for
// same-variant symbol/string/error, false for any other combination
// (SPEC_FULL.md §9 resolves the ordering ambiguity this way).
func Less(a, b Value) bool {
	if fa, oka := numericValue(a); oka {
		if fb, okb := numericValue(b); okb {
			return fa < fb
		}
		return false
	}
	if a.Item.Kind == b.Item.Kind && byteWiseKind(a.Item.Kind) {
		return a.Item.Str < b.Item.Str
	}
	return false
}

// Greater is Less with operands compared the other way.
func Greater(a, b Value) bool {
	if fa, oka := numericValue(a); oka {
		if fb, okb := numericValue(b); okb {
			return fa > fb
		}
		return false
	}
	if a.Item.Kind == b.Item.Kind && byteWiseKind(a.Item.Kind) {
		return a.Item.Str > b.Item.Str
	}
	return false
}

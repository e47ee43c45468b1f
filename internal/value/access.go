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

// Car returns v's Pair head, or Nil() if v is Nil, or an Error value
// for any other variant (spec §4.2).
func (a *Arena) Car(v Value) Value {
	switch {
	case IsNil(v):
		return v
	case v.Item.Kind == Pair:
		return v.Item.Car
	default:
		return a.NewErrorf("car: expected pair, got %s", v.Item.Kind)
	}
}

// Cdr is Car's counterpart for the tail.
func (a *Arena) Cdr(v Value) Value {
	switch {
	case IsNil(v):
		return v
	case v.Item.Kind == Pair:
		return v.Item.Cdr
	default:
		return a.NewErrorf("cdr: expected pair, got %s", v.Item.Kind)
	}
}

// IsProperList reports whether v is Nil or a Pair chain terminated by
// Nil.
func IsProperList(v Value) bool {
	for {
		if IsNil(v) {
			return true
		}
		if v.Item.Kind != Pair {
			return false
		}
		v = v.Item.Cdr
	}
}

// Length returns the length of a proper list (Pair chain count) or a
// string (byte count), or an error for anything else (spec §4.2).
func (a *Arena) Length(v Value) (int, Value) {
	switch {
	case IsNil(v):
		return 0, nil
	case v.Item.Kind == String:
		return len(v.Item.Str), nil
	case v.Item.Kind == Pair:
		n := 0
		cur := v
		for !IsNil(cur) {
			if cur.Item.Kind != Pair {
				return 0, a.NewErrorf("length: improper list")
			}
			n++
			cur = cur.Item.Cdr
		}
		return n, nil
	default:
		return 0, a.NewErrorf("length: expected list or string, got %s", v.Item.Kind)
	}
}

// Elements collects a proper list's elements into a slice. ok is false
// if v is not a proper list.
func Elements(v Value) (elems []Value, ok bool) {
	for !IsNil(v) {
		if v.Item.Kind != Pair {
			return nil, false
		}
		elems = append(elems, v.Item.Car)
		v = v.Item.Cdr
	}
	return elems, true
}

// FromSlice builds a proper list out of elems, in order.
func (a *Arena) FromSlice(elems []Value) Value {
	result := a.Nil()
	for i := len(elems) - 1; i >= 0; i-- {
		result = a.NewPair(elems[i], result)
	}
	return result
}

// IsHomogeneous reports whether every element of the proper list v has
// the given kind. An empty list is vacuously homogeneous. This mirrors
// the original's expr_list_has_only_type, used by the type-predicate
// primitives, which test the WHOLE argument list, not just the first
// element (SPEC_FULL.md §6.2).
func IsHomogeneous(v Value, k Kind) bool {
	elems, ok := Elements(v)
	if !ok {
		return false
	}
	for _, e := range elems {
		if e.Item.Kind != k {
			return false
		}
	}
	return true
}

// IsHomogeneousNumber is IsHomogeneous for the "number" variant set
// (Int or Float) rather than a single Kind.
func IsHomogeneousNumber(v Value) bool {
	elems, ok := Elements(v)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !e.Item.Kind.IsNumber() {
			return false
		}
	}
	return true
}

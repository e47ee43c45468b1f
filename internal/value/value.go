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

// Package value implements the tagged value model of spec §3: the sum
// type over Int, Float, Symbol, String, Error, Pair, Primitive, Lambda
// and Macro, plus equality, ordering, predicates and printing. Values
// are allocated from an Arena, which wraps a pool.Pool so that cell
// addresses stay stable for the life of the interpreter (spec §9).
package value

import (
	"fmt"

	"github.com/db47h/sl/internal/pool"
)

// Closure is a Lambda/Macro context: captured frame, formal parameters,
// optional rest parameter, and body expressions (spec §3.3).
type Closure struct {
	Env     Env
	Formals []string
	HasRest bool
	Rest    string
	Body    []Value
}

// Data is the payload stored in every pool cell; Kind selects which
// fields are meaningful.
type Data struct {
	Kind Kind

	Num int64   // Int
	Flt float64 // Float
	Str string  // Symbol, String, Error

	Car, Cdr Value // Pair

	Prim PrimFunc // Primitive

	Closure *Closure // Lambda, Macro
}

// Value is a reference to a pool cell; its identity is the cell's
// address, which the pool guarantees is stable.
type Value = *pool.Cell[Data]

// Arena owns the pool backing a set of Values plus the two canonical
// singletons, nil and tru (spec §3.1).
type Arena struct {
	pool   *pool.Pool[Data]
	growBy int
	nilVal Value
	truVal Value
}

// NewArena creates an Arena with an initial backing array of
// initialCells cells, expanding by growBy cells whenever the free list
// is exhausted.
func NewArena(initialCells, growBy int) *Arena {
	if initialCells <= 0 {
		initialCells = 4096
	}
	if growBy <= 0 {
		growBy = initialCells
	}
	a := &Arena{pool: pool.New[Data](initialCells), growBy: growBy}
	a.nilVal = a.alloc(Data{Kind: Symbol, Str: "nil"})
	a.truVal = a.alloc(Data{Kind: Symbol, Str: "tru"})
	return a
}

func (a *Arena) alloc(d Data) Value {
	c := a.pool.AllocOrExpand(a.growBy)
	c.Item = d
	return c
}

// Nil returns the canonical nil value: both the empty list and logical
// false.
func (a *Arena) Nil() Value { return a.nilVal }

// Tru returns the canonical truth symbol.
func (a *Arena) Tru() Value { return a.truVal }

// Bool returns Tru() if cond else Nil().
func (a *Arena) Bool(cond bool) Value {
	if cond {
		return a.truVal
	}
	return a.nilVal
}

func (a *Arena) NewInt(n int64) Value       { return a.alloc(Data{Kind: Int, Num: n}) }
func (a *Arena) NewFloat(f float64) Value   { return a.alloc(Data{Kind: Float, Flt: f}) }
func (a *Arena) NewSymbol(s string) Value   { return a.alloc(Data{Kind: Symbol, Str: s}) }
func (a *Arena) NewString(s string) Value   { return a.alloc(Data{Kind: String, Str: s}) }
func (a *Arena) NewError(msg string) Value  { return a.alloc(Data{Kind: Error, Str: msg}) }
func (a *Arena) NewPair(car, cdr Value) Value {
	return a.alloc(Data{Kind: Pair, Car: car, Cdr: cdr})
}
func (a *Arena) NewPrimitive(fn PrimFunc) Value {
	return a.alloc(Data{Kind: Primitive, Prim: fn})
}

// NewClosure builds a Lambda or Macro value around c; kind must be
// Lambda or Macro.
func (a *Arena) NewClosure(kind Kind, c *Closure) Value {
	return a.alloc(Data{Kind: kind, Closure: c})
}

// NewErrorf formats msg and wraps it in an Error value.
func (a *Arena) NewErrorf(format string, args ...any) Value {
	return a.NewError(fmt.Sprintf(format, args...))
}

// IsNil reports whether v is the distinguished nil/false value: either
// the canonical singleton or any Symbol spelled "nil" (spec §3.1).
func IsNil(v Value) bool {
	return v != nil && v.Item.Kind == Symbol && v.Item.Str == "nil"
}

// Free releases d's owned sub-resources (nothing for Go's GC-managed
// strings, but Closure environments may drop their last reference) and
// returns v to the arena's free list. Only called by the collector's
// sweep phase on cells it has determined are unreachable (spec §4.1,
// §4.6); Pair children are not recursively freed here since Pairs may
// share substructure — the collector walks reachability first.
func (a *Arena) Free(v Value) {
	v.Item = Data{}
	a.pool.Free(v)
}

// Iter visits every cell in the arena, free or live, in allocation
// order. Used only by the collector.
func (a *Arena) Iter(fn func(Value)) { a.pool.Iter(func(c *pool.Cell[Data]) { fn(c) }) }

// Len returns the number of live cells.
func (a *Arena) Len() int { return a.pool.Len() }

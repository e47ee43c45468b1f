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

// Kind tags the variant a Value holds.
type Kind uint8

const (
	Int Kind = iota
	Float
	Symbol
	String
	Error
	Pair
	Primitive
	Lambda
	Macro
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "flt"
	case Symbol:
		return "symbol"
	case String:
		return "string"
	case Error:
		return "error"
	case Pair:
		return "pair"
	case Primitive:
		return "primitive"
	case Lambda:
		return "lambda"
	case Macro:
		return "macro"
	default:
		return "unknown"
	}
}

// IsNumber reports whether k is Int or Float.
func (k Kind) IsNumber() bool { return k == Int || k == Float }

// IsApplicable reports whether k is Primitive, Lambda or Macro.
func (k Kind) IsApplicable() bool { return k == Primitive || k == Lambda || k == Macro }

// Flags is a per-binding flag set; see package env.
type Flags uint8

const (
	// Const marks a binding that cannot be reassigned in its frame.
	Const Flags = 1 << iota
	// SpecialForm marks a binding whose name suppresses normal argument
	// evaluation when it appears in operator position.
	SpecialForm
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

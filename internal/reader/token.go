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

// Package reader turns a stream of text into value.Value trees: a
// lexer producing a token at a time, and a recursive-descent parser
// building Pair spines from them. Grounded on
// original_source/src/include/lexer.h's token set and parser.c's
// wrap_in_call rewrite of the quote/backquote/unquote/splice reader
// macros into ordinary function calls.
package reader

// Kind identifies the lexical category of a Token.
type Kind int

const (
	EOF Kind = iota
	Int
	Float
	Symbol
	String
	ListOpen
	ListClose
	Dot
	Quote
	Backquote
	Unquote
	Splice
)

// Token is one lexical unit. Num/Flt/Str hold the payload for the
// corresponding Kind; the rest are unused.
type Token struct {
	Kind Kind
	Num  int64
	Flt  float64
	Str  string
}

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

package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/db47h/sl/internal/value"
)

// Parser is a recursive-descent builder of value.Pair trees from a
// Lexer's token stream. Grounded on parser.c's parse_recur/
// wrap_in_call: list tokens build Pair spines, and the four reader-
// macro punctuators rewrite into ordinary function-call forms.
type Parser struct {
	lex    *Lexer
	peeked *Token
}

// NewParser wraps lex for parsing.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) peek() (Token, error) {
	if p.peeked == nil {
		t, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.peeked = &t
	}
	return *p.peeked, nil
}

func (p *Parser) advance() (Token, error) {
	t, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	p.peeked = nil
	return t, nil
}

// ReadForm parses and returns one top-level expression, allocating its
// cells from a. Returns io.EOF once the input is exhausted, matching
// parse()'s NULL return on zero tokens consumed.
func (p *Parser) ReadForm(a *value.Arena) (value.Value, error) {
	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	return p.parseToken(a, t)
}

func (p *Parser) parseToken(a *value.Arena, t Token) (value.Value, error) {
	switch t.Kind {
	case EOF:
		return nil, io.EOF
	case Int:
		return a.NewInt(t.Num), nil
	case Float:
		return a.NewFloat(t.Flt), nil
	case String:
		return a.NewString(t.Str), nil
	case Symbol:
		return a.NewSymbol(t.Str), nil
	case ListOpen:
		return p.parseList(a)
	case ListClose:
		return nil, errors.New("reader: unexpected )")
	case Quote:
		return p.wrapInCall(a, "quote")
	case Backquote:
		return p.wrapInCall(a, "backquote")
	case Unquote:
		return p.wrapInCall(a, "unquote")
	case Splice:
		return p.wrapInCall(a, "splice")
	default:
		return nil, fmt.Errorf("reader: unknown token kind %d", t.Kind)
	}
}

// wrapInCall parses the following expression and wraps it as
// (name expr), exactly as parser.c's wrap_in_call does for the
// quote/backquote/unquote/splice reader macros.
func (p *Parser) wrapInCall(a *value.Arena, name string) (value.Value, error) {
	inner, err := p.ReadForm(a)
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("reader: expected an expression after %q", name)
		}
		return nil, err
	}
	return a.NewPair(a.NewSymbol(name), a.NewPair(inner, a.Nil())), nil
}

func (p *Parser) parseList(a *value.Arena) (value.Value, error) {
	var elems []value.Value
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == ListClose {
			p.peeked = nil
			return a.FromSlice(elems), nil
		}
		if t.Kind == EOF {
			return nil, errors.New("reader: unterminated list")
		}
		p.peeked = nil
		v, err := p.parseToken(a, t)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

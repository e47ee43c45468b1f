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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Lexer is a streaming tokenizer over a rune source. Grounded on
// get_token in original_source/src/lexer.c, generalized to the fuller
// token set declared in include/lexer.h (strings, float/int split,
// backquote/unquote/splice) that file's own tokenizer never produced.
type Lexer struct {
	r *bufio.Reader
}

// NewLexer wraps r for tokenizing.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r)}
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')'
}

func (l *Lexer) skipSpaceAndComments() error {
	for {
		r, _, err := l.r.ReadRune()
		if err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == ';':
			for {
				c, _, err := l.r.ReadRune()
				if err != nil {
					return err
				}
				if c == '\n' {
					break
				}
			}
			continue
		default:
			return l.r.UnreadRune()
		}
	}
}

// Next returns the next Token, or a Token of Kind EOF once the input
// is exhausted. Errors other than io.EOF propagate from the
// underlying reader.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		if err == io.EOF {
			return Token{Kind: EOF}, nil
		}
		return Token{}, err
	}

	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return Token{Kind: EOF}, nil
	}
	if err != nil {
		return Token{}, err
	}

	switch r {
	case '(':
		return Token{Kind: ListOpen}, nil
	case ')':
		return Token{Kind: ListClose}, nil
	case '\'':
		return Token{Kind: Quote}, nil
	case '`':
		return Token{Kind: Backquote}, nil
	case ',':
		r2, _, err := l.r.ReadRune()
		if err == nil && r2 == '@' {
			return Token{Kind: Splice}, nil
		}
		if err == nil {
			_ = l.r.UnreadRune()
		}
		return Token{Kind: Unquote}, nil
	case '"':
		return l.readString()
	default:
		return l.readAtom(r)
	}
}

func (l *Lexer) readString() (Token, error) {
	var sb strings.Builder
	for {
		r, _, err := l.r.ReadRune()
		if err != nil {
			return Token{}, fmt.Errorf("reader: unterminated string: %w", err)
		}
		switch r {
		case '"':
			return Token{Kind: String, Str: sb.String()}, nil
		case '\\':
			esc, _, err := l.r.ReadRune()
			if err != nil {
				return Token{}, fmt.Errorf("reader: unterminated escape sequence: %w", err)
			}
			b, ok := escapedToByte(esc)
			if !ok {
				return Token{}, fmt.Errorf("reader: unsupported escape sequence \\%c", esc)
			}
			sb.WriteByte(b)
		default:
			sb.WriteRune(r)
		}
	}
}

// escapedToByte mirrors original_source/src/util.c's escaped2byte.
func escapedToByte(r rune) (byte, bool) {
	switch r {
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'e':
		return 0x1b, true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

func (l *Lexer) readAtom(first rune) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if isSeparator(r) {
			_ = l.r.UnreadRune()
			break
		}
		sb.WriteRune(r)
	}
	s := sb.String()

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Token{Kind: Int, Num: n}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Token{Kind: Float, Flt: f}, nil
	}
	return Token{Kind: Symbol, Str: s}, nil
}

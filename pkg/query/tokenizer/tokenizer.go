/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"io"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/guiql/pkg/common/parse"
)

// maxPosition is the value at which the position counter wraps back to zero
// and a new epoch begins.
const maxPosition = math.MaxUint32

// Tokenizer lazily turns query text into tokens. It owns the character
// cursor; parsers share a single *Tokenizer and never copy it.
type Tokenizer struct {
	input  string
	offset int

	pos   uint32
	epoch uint32

	// pending holds the identifier prefix that lexReserved scanned without
	// finding a keyword, for lexIdentifier to pick up within the same call
	// to Next.
	pending *Token
}

func New(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize drains input, returning every token up to the end of input or
// up to the first error.
func Tokenize(input string) ([]Token, error) {
	t := New(input)
	tokens := []Token{}

	for {
		tok, err := t.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// Pos returns the character position of the cursor within the current epoch.
func (t *Tokenizer) Pos() uint32 {
	return t.pos
}

// Epoch returns how many times the position counter has wrapped.
func (t *Tokenizer) Epoch() uint32 {
	return t.epoch
}

// Next returns the next token, or io.EOF once the input is exhausted. Any
// other error is terminal for the token being produced; the tokenizer does
// not resynchronize.
func (t *Tokenizer) Next() (Token, error) {
	defer func() { t.pending = nil }()

	for {
		r, ok := t.peek()
		if !ok {
			return Token{}, io.EOF
		}

		switch {
		case unicode.IsSpace(r):
			t.advance()
			continue
		case r >= '0' && r <= '9':
			return t.lexNumberLiteral(), nil
		case unicode.IsLetter(r):
			return t.lexAlphabetical()
		case r == '"':
			return t.lexStringLiteral()
		case r == '@':
			return t.lexElement()
		case r == '{':
			return t.lexPunctuation(TOK_BRACE_L), nil
		case r == '}':
			return t.lexPunctuation(TOK_BRACE_R), nil
		default:
			loc := parse.Location{StartsAt: t.pos, Len: 1}
			t.advance()
			return Token{}, &Error{Err: ErrUnrecognizedCharacter, Location: loc}
		}
	}
}

// lexNumberLiteral matches an integer
//
// Grammar:
//
//	integer         = 1*DIGIT
func (t *Tokenizer) lexNumberLiteral() Token {
	tok := Token{Kind: TOK_NUMBER_LITERAL, Location: parse.Location{StartsAt: t.pos}}
	var literal strings.Builder

	for r, ok := t.peek(); ok && r >= '0' && r <= '9'; r, ok = t.peek() {
		literal.WriteRune(r)
		t.advance()
		tok.Location.Len++
	}

	tok.Text = literal.String()
	return tok
}

// lexStringLiteral matches a string, keeping both quotes in the payload
//
// Grammar:
//
//	string          = DQUOTE *( %x00-21 / %x23-10FFFF ) DQUOTE
func (t *Tokenizer) lexStringLiteral() (Token, error) {
	tok := Token{Kind: TOK_STRING_LITERAL, Location: parse.Location{StartsAt: t.pos}}
	var literal strings.Builder
	quotes := 0

	for r, ok := t.peek(); ok; r, ok = t.peek() {
		literal.WriteRune(r)
		t.advance()
		tok.Location.Len++

		if r == '"' {
			quotes++
			if quotes == 2 {
				tok.Text = literal.String()
				return tok, nil
			}
		}
	}

	return Token{}, &Error{Err: ErrUnterminatedStringLiteral, Location: tok.Location}
}

// lexElement matches a reference to an element in the tree
//
// Grammar:
//
//	element         = "@" 1*ALPHA
func (t *Tokenizer) lexElement() (Token, error) {
	tok := Token{Kind: TOK_ELEMENT, Location: parse.Location{StartsAt: t.pos}}

	r, ok := t.peek()
	if !ok || r != '@' {
		return Token{}, &Error{Err: ErrInvalidElementIdentifier, Location: tok.Location}
	}

	var identifier strings.Builder
	identifier.WriteRune(r)
	t.advance()
	tok.Location.Len++

	for r, ok = t.peek(); ok && unicode.IsLetter(r); r, ok = t.peek() {
		identifier.WriteRune(r)
		t.advance()
		tok.Location.Len++
	}

	if tok.Location.Len == 1 {
		return Token{}, &Error{Err: ErrEmptyElementIdentifier, Location: tok.Location}
	}

	tok.Text = identifier.String()
	return tok, nil
}

func (t *Tokenizer) lexPunctuation(k Kind) Token {
	tok := Token{Kind: k, Location: parse.Location{StartsAt: t.pos, Len: 1}}
	t.advance()
	return tok
}

func (t *Tokenizer) lexAlphabetical() (Token, error) {
	if tok, ok := t.lexReserved(); ok {
		return tok, nil
	}
	return t.lexIdentifier()
}

// lexReserved consumes letters one at a time and returns a keyword as soon
// as the letters read so far spell one. The following character is not
// checked, so "forest" yields "for" and leaves "est" in the input. When the
// run of letters ends without a match, the word is parked in t.pending.
func (t *Tokenizer) lexReserved() (Token, bool) {
	loc := parse.Location{StartsAt: t.pos}
	var word strings.Builder

	for r, ok := t.peek(); ok && unicode.IsLetter(r); r, ok = t.peek() {
		word.WriteRune(r)
		t.advance()
		loc.Len++

		if k, found := LookupKeyword(word.String()); found {
			return Token{Kind: k, Location: loc}, true
		}
	}

	t.pending = &Token{Kind: TOK_IDENTIFIER, Text: word.String(), Location: loc}
	return Token{}, false
}

// lexIdentifier adopts the pending prefix, if any, and extends it up to the
// next whitespace or ';'.
//
// Grammar:
//
//	identifier      = ALPHA *( %x21-3A / %x3C-10FFFF )
func (t *Tokenizer) lexIdentifier() (Token, error) {
	tok := Token{Kind: TOK_IDENTIFIER, Location: parse.Location{StartsAt: t.pos}}

	if p := t.pending; p != nil {
		t.pending = nil
		if p.Kind != TOK_IDENTIFIER {
			return Token{}, &Error{Err: ErrUnexpectedToken, Location: p.Location}
		}
		tok = *p
	}

	var word strings.Builder
	word.WriteString(tok.Text)

	for r, ok := t.peek(); ok && !unicode.IsSpace(r) && r != ';'; r, ok = t.peek() {
		word.WriteRune(r)
		t.advance()
		tok.Location.Len++
	}

	tok.Text = word.String()
	return tok, nil
}

func (t *Tokenizer) peek() (rune, bool) {
	if t.offset >= len(t.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.offset:])
	return r, true
}

func (t *Tokenizer) advance() {
	_, width := utf8.DecodeRuneInString(t.input[t.offset:])
	t.offset += width

	t.pos++
	if t.pos == maxPosition {
		t.epoch++
		t.pos = 0
	}
}

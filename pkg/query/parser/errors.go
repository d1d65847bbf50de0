/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/dburkart/guiql/pkg/common/parse"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
)

// ParseError is the kind of a parse failure.
type ParseError int

const (
	// UnexpectedToken means the token in a required position has the wrong
	// kind.
	UnexpectedToken ParseError = iota + 1
	// SyntaxError means the input ended where a token was required.
	SyntaxError
	// TokenizeError wraps a lexical error.
	TokenizeError
)

func (e ParseError) Error() string {
	switch e {
	case UnexpectedToken:
		return "unexpected token"
	case SyntaxError:
		return "syntax error"
	case TokenizeError:
		return "tokenize error"
	}
	return "unknown parse error"
}

type Error struct {
	Kind     ParseError
	Location parse.Location
	Message  string
	// Cause is the *tokenizer.Error behind a TokenizeError.
	Cause error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Kind.Error(), e.Location)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind.Error(), e.Location, e.Message)
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// FormatError renders the error beneath the query it was found in.
func (e *Error) FormatError(input string) string {
	return parse.FormatError(input, e.Location, "Error: "+e.Message)
}

func unexpectedToken(tok tokenizer.Token, expected string) *Error {
	return &Error{
		Kind:     UnexpectedToken,
		Location: tok.Location,
		Message:  fmt.Sprintf("unexpected token '%s', expected %s", tok.Lexeme(), expected),
	}
}

func syntaxError(at uint32, expected string) *Error {
	return &Error{
		Kind:     SyntaxError,
		Location: parse.Location{StartsAt: at},
		Message:  fmt.Sprintf("unexpected end of query, expected %s", expected),
	}
}

func tokenizeError(err error) *Error {
	e := &Error{Kind: TokenizeError, Cause: err, Message: err.Error()}

	var lexErr *tokenizer.Error
	if errors.As(err, &lexErr) {
		e.Location = lexErr.Location
		e.Message = lexErr.Err.Error()
	}

	return e
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import (
	"fmt"

	"github.com/dburkart/guiql/pkg/common/parse"
)

// TokenizerErr is the kind of a lexical error.
type TokenizerErr int

const (
	ErrUnterminatedStringLiteral TokenizerErr = iota + 1
	// ErrUnexpectedToken signals an internal inconsistency, such as a
	// non-identifier left in the pending slot.
	ErrUnexpectedToken
	ErrEmptyElementIdentifier
	ErrInvalidElementIdentifier
	ErrUnrecognizedCharacter
)

func (e TokenizerErr) Error() string {
	switch e {
	case ErrUnterminatedStringLiteral:
		return "unterminated string literal"
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrEmptyElementIdentifier:
		return "empty element identifier"
	case ErrInvalidElementIdentifier:
		return "invalid element identifier"
	case ErrUnrecognizedCharacter:
		return "unrecognized character"
	}
	return "unknown tokenizer error"
}

// Error is a TokenizerErr together with the span that produced it.
type Error struct {
	Err      TokenizerErr
	Location parse.Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Location)
}

func (e *Error) Unwrap() error {
	return e.Err
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"io"

	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
)

type viewRule int

const (
	viewRuleStart viewRule = iota
	viewRuleBody
)

// ViewParser parses the element body of a create query. It pulls from the
// tokenizer it was given, so tokens it does not reach are left for the
// caller.
//
// Grammar:
//
//	view-body       = "{" *view-element "}"
//	view-element    = identifier [ view-body ]
type ViewParser struct {
	tokenizer *tokenizer.Tokenizer
	state     state
	rule      viewRule

	root *ast.ViewRoot
	// open holds the elements whose bodies are being parsed, innermost last
	open []*ast.ViewElement
	// last is the most recent element at the current level; a "{" opens its
	// body
	last  *ast.ViewElement
	taken bool
}

func NewViewParser(t *tokenizer.Tokenizer) *ViewParser {
	return &ViewParser{tokenizer: t, root: &ast.ViewRoot{}}
}

func (v *ViewParser) ParseAll() (*ast.ViewRoot, error) {
	for {
		switch status, root, err := v.Advance(); status {
		case Failed:
			return nil, err
		case Done:
			return root, nil
		}
	}
}

// Advance performs exactly one state transition, with the same contract as
// Parser.Advance.
func (v *ViewParser) Advance() (Status, *ast.ViewRoot, error) {
	switch v.state.kind {
	case stateReady:
		tok, err := v.tokenizer.Next()
		if err == io.EOF {
			v.endOfInput()
		} else {
			v.state = pending(tok, err)
		}
		return Continue, nil, nil

	case statePendingToken:
		s := v.state
		v.state = state{kind: stateReady}

		if s.lexErr != nil {
			v.state = failed(tokenizeError(s.lexErr))
		} else {
			v.parseToken(s.tok)
		}
		return Continue, nil, nil

	case statePendingParseError:
		return Failed, nil, v.state.err

	case stateEOF:
		if v.taken {
			panic("parser: completed view was already taken")
		}
		root := v.root
		v.root, v.taken = nil, true
		return Done, root, nil
	}

	panic("parser: unknown view state")
}

func (v *ViewParser) endOfInput() {
	switch v.rule {
	case viewRuleStart:
		// The body is optional
		v.state = state{kind: stateEOF}
	case viewRuleBody:
		v.state = failed(syntaxError(v.tokenizer.Pos(), "'}'"))
	}
}

func (v *ViewParser) parseToken(tok tokenizer.Token) {
	switch v.rule {
	case viewRuleStart:
		if tok.Kind != tokenizer.TOK_BRACE_L {
			v.state = failed(unexpectedToken(tok, "'{'"))
			return
		}
		v.root.Token = tok
		v.rule = viewRuleBody

	case viewRuleBody:
		v.body(tok)
	}
}

func (v *ViewParser) body(tok tokenizer.Token) {
	switch tok.Kind {
	case tokenizer.TOK_IDENTIFIER:
		el := &ast.ViewElement{BaseNode: ast.BaseNode{Token: tok}}
		if len(v.open) == 0 {
			v.root.Children = append(v.root.Children, el)
		} else {
			parent := v.open[len(v.open)-1]
			parent.Children = append(parent.Children, el)
		}
		v.last = el

	case tokenizer.TOK_BRACE_L:
		if v.last == nil {
			v.state = failed(unexpectedToken(tok, "an element name before '{'"))
			return
		}
		v.open = append(v.open, v.last)
		v.last = nil

	case tokenizer.TOK_BRACE_R:
		v.last = nil
		if len(v.open) > 0 {
			v.open = v.open[:len(v.open)-1]
			return
		}
		v.root.Close = tok.Location
		v.state = state{kind: stateEOF}

	default:
		v.state = failed(unexpectedToken(tok, "an element name, '{' or '}'"))
	}
}

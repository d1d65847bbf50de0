/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"io"

	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
)

// Status is what a single call to Advance reports.
type Status int

const (
	// Continue means the parser has not reached a terminal state yet.
	Continue Status = iota
	// Failed means the parser holds an error; it is reported on every call.
	Failed
	// Done means the parser completed and handed back its result.
	Done
)

type stateKind int

const (
	stateReady stateKind = iota
	statePendingToken
	statePendingParseError
	stateEOF
)

// state is shared by Parser and ViewParser. statePendingToken carries
// either tok or lexErr, statePendingParseError carries err.
type state struct {
	kind   stateKind
	tok    tokenizer.Token
	lexErr error
	err    error
}

func pending(tok tokenizer.Token, err error) state {
	return state{kind: statePendingToken, tok: tok, lexErr: err}
}

func failed(err error) state {
	return state{kind: statePendingParseError, err: err}
}

type rule int

const (
	ruleQuery rule = iota
	ruleCreateName
	ruleEnd
)

// Parser builds one top-level query from a tokenizer, one token per step.
type Parser struct {
	tokenizer *tokenizer.Tokenizer
	state     state
	rule      rule

	query  *ast.CreateQuery
	result ast.Query
	taken  bool
}

func New(t *tokenizer.Tokenizer) *Parser {
	return &Parser{tokenizer: t}
}

func FromString(input string) *Parser {
	return New(tokenizer.New(input))
}

// Parse parses a single query from input.
func Parse(input string) (ast.Query, error) {
	return FromString(input).ParseAll()
}

// ParseAll drives Advance until the parser reaches a terminal state. Every
// step either consumes a token or reaches the end of input, so this always
// terminates.
func (p *Parser) ParseAll() (ast.Query, error) {
	for {
		switch status, query, err := p.Advance(); status {
		case Failed:
			return nil, err
		case Done:
			return query, nil
		}
	}
}

// Advance performs exactly one state transition.
//
// Once Done has been reported the query belongs to the caller; calling
// Advance again panics.
func (p *Parser) Advance() (Status, ast.Query, error) {
	switch p.state.kind {
	case stateReady:
		tok, err := p.tokenizer.Next()
		if err == io.EOF {
			p.endOfInput()
		} else {
			p.state = pending(tok, err)
		}
		return Continue, nil, nil

	case statePendingToken:
		s := p.state
		p.state = state{kind: stateReady}

		if s.lexErr != nil {
			p.state = failed(tokenizeError(s.lexErr))
		} else {
			p.parseToken(s.tok)
		}
		return Continue, nil, nil

	case statePendingParseError:
		return Failed, nil, p.state.err

	case stateEOF:
		if p.taken {
			panic("parser: completed query was already taken")
		}
		query := p.result
		p.result, p.taken = nil, true
		return Done, query, nil
	}

	panic("parser: unknown state")
}

func (p *Parser) endOfInput() {
	switch p.rule {
	case ruleQuery:
		p.state = failed(syntaxError(p.tokenizer.Pos(), "a query"))
	case ruleCreateName:
		p.state = failed(syntaxError(p.tokenizer.Pos(), "an element name"))
	case ruleEnd:
		p.result = p.query
		p.state = state{kind: stateEOF}
	}
}

func (p *Parser) parseToken(tok tokenizer.Token) {
	switch p.rule {
	case ruleQuery:
		p.startQuery(tok)
	case ruleCreateName:
		p.createQuery(tok)
	case ruleEnd:
		// Trailing input after a complete query is not allowed
		p.state = failed(unexpectedToken(tok, "end of query"))
	}
}

// startQuery dispatches on the keyword that opens a query
//
// Grammar:
//
//	query           = create-query
func (p *Parser) startQuery(tok tokenizer.Token) {
	switch tok.Kind {
	case tokenizer.TOK_CREATE:
		p.query = &ast.CreateQuery{BaseNode: ast.BaseNode{Token: tok}}
		p.rule = ruleCreateName
	default:
		p.state = failed(unexpectedToken(tok, "a query keyword (create)"))
	}
}

// createQuery reads the element name, then hands the shared tokenizer to a
// ViewParser for the body
//
// Grammar:
//
//	create-query    = "create" identifier [ view-body ]
func (p *Parser) createQuery(tok tokenizer.Token) {
	if tok.Kind != tokenizer.TOK_IDENTIFIER {
		p.state = failed(unexpectedToken(tok, "an element name"))
		return
	}

	p.query.ElementName = tok.Text
	p.query.Name = tok.Location

	view, err := NewViewParser(p.tokenizer).ParseAll()
	if err != nil {
		p.state = failed(err)
		return
	}

	p.query.View = view
	p.rule = ruleEnd
}

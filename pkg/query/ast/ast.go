/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/guiql/pkg/common/parse"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
)

type Node interface {
	Value() string
	Location() parse.Location
}

// Query is a complete top-level query item.
type Query interface {
	Node
	queryNode()
}

type Visitor interface {
	Visit(Node) Visitor
}

type (
	BaseNode struct {
		Token tokenizer.Token
	}

	CreateQuery struct {
		BaseNode
		ElementName string
		Name        parse.Location
		View        *ViewRoot
	}

	// ViewRoot is the body of a create query. Its token is the opening brace,
	// or the zero token when the body was omitted.
	ViewRoot struct {
		BaseNode
		Children []*ViewElement
		Close    parse.Location
	}

	ViewElement struct {
		BaseNode
		Children []*ViewElement
	}
)

// -- BaseNode

func (b *BaseNode) Value() string {
	return b.Token.Lexeme()
}

func (b *BaseNode) Location() parse.Location {
	return b.Token.Location
}

//-- CreateQuery

func (c *CreateQuery) Value() string {
	return c.ElementName
}

func (c *CreateQuery) queryNode() {}

//-- ViewRoot

func (v *ViewRoot) Empty() bool {
	return len(v.Children) == 0
}

// Location spans from the opening to the closing brace.
func (v *ViewRoot) Location() parse.Location {
	if v.Token.Kind != tokenizer.TOK_BRACE_L {
		return parse.Location{}
	}
	return parse.Location{
		StartsAt: v.Token.Location.StartsAt,
		Len:      v.Close.End() - v.Token.Location.StartsAt,
	}
}

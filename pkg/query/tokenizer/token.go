/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokenizer

import "github.com/dburkart/guiql/pkg/common/parse"

type Kind int

const (
	TOK_INVALID Kind = iota

	// Payload-bearing tokens
	TOK_IDENTIFIER
	TOK_NUMBER_LITERAL
	TOK_STRING_LITERAL
	TOK_ELEMENT

	TOK_BRACE_L
	TOK_BRACE_R

	// Keywords
	keywordsBegin
	TOK_COMPONENT
	TOK_CONST
	TOK_CREATE
	TOK_DELETE
	TOK_ELSE
	TOK_ENUM
	TOK_FOR
	TOK_FROM
	TOK_FUNC
	TOK_IF
	TOK_INSERT
	TOK_INT
	TOK_KEY
	TOK_LET
	TOK_MATCH
	TOK_NEW
	TOK_NUMBER
	TOK_OR
	TOK_PUB
	TOK_STRING
	TOK_TAG
	TOK_TYPE
	TOK_WITH
	keywordsEnd
)

// keywords maps the reserved words to their token kinds. Lookups are case
// sensitive.
var keywords = map[string]Kind{
	"component": TOK_COMPONENT,
	"const":     TOK_CONST,
	"create":    TOK_CREATE,
	"delete":    TOK_DELETE,
	"else":      TOK_ELSE,
	"enum":      TOK_ENUM,
	"for":       TOK_FOR,
	"from":      TOK_FROM,
	"func":      TOK_FUNC,
	"if":        TOK_IF,
	"insert":    TOK_INSERT,
	"int":       TOK_INT,
	"key":       TOK_KEY,
	"let":       TOK_LET,
	"match":     TOK_MATCH,
	"new":       TOK_NEW,
	"number":    TOK_NUMBER,
	"or":        TOK_OR,
	"pub":       TOK_PUB,
	"string":    TOK_STRING,
	"tag":       TOK_TAG,
	"type":      TOK_TYPE,
	"with":      TOK_WITH,
}

var spellings = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords)+2)
	for word, k := range keywords {
		m[k] = word
	}
	m[TOK_BRACE_L] = "{"
	m[TOK_BRACE_R] = "}"
	return m
}()

// LookupKeyword returns the keyword kind spelled exactly by word.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Keywords returns every reserved word, in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}

func (k Kind) IsKeyword() bool {
	return k > keywordsBegin && k < keywordsEnd
}

// HasPayload reports whether tokens of this kind carry their source text.
func (k Kind) HasPayload() bool {
	switch k {
	case TOK_IDENTIFIER, TOK_NUMBER_LITERAL, TOK_STRING_LITERAL, TOK_ELEMENT:
		return true
	}
	return false
}

func (k Kind) ToString() string {
	switch k {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_NUMBER_LITERAL:
		return "TOK_NUMBER_LITERAL"
	case TOK_STRING_LITERAL:
		return "TOK_STRING_LITERAL"
	case TOK_ELEMENT:
		return "TOK_ELEMENT"
	case TOK_BRACE_L:
		return "TOK_BRACE_L"
	case TOK_BRACE_R:
		return "TOK_BRACE_R"
	case TOK_COMPONENT:
		return "TOK_COMPONENT"
	case TOK_CONST:
		return "TOK_CONST"
	case TOK_CREATE:
		return "TOK_CREATE"
	case TOK_DELETE:
		return "TOK_DELETE"
	case TOK_ELSE:
		return "TOK_ELSE"
	case TOK_ENUM:
		return "TOK_ENUM"
	case TOK_FOR:
		return "TOK_FOR"
	case TOK_FROM:
		return "TOK_FROM"
	case TOK_FUNC:
		return "TOK_FUNC"
	case TOK_IF:
		return "TOK_IF"
	case TOK_INSERT:
		return "TOK_INSERT"
	case TOK_INT:
		return "TOK_INT"
	case TOK_KEY:
		return "TOK_KEY"
	case TOK_LET:
		return "TOK_LET"
	case TOK_MATCH:
		return "TOK_MATCH"
	case TOK_NEW:
		return "TOK_NEW"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_OR:
		return "TOK_OR"
	case TOK_PUB:
		return "TOK_PUB"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_TAG:
		return "TOK_TAG"
	case TOK_TYPE:
		return "TOK_TYPE"
	case TOK_WITH:
		return "TOK_WITH"
	}
	return "TOK_UNKNOWN"
}

func (k Kind) String() string {
	return k.ToString()
}

// Token is a classified, located unit of query text. Text is only set for
// kinds where HasPayload is true.
type Token struct {
	Kind     Kind
	Text     string
	Location parse.Location
}

// Lexeme returns the text the token was scanned from.
func (t Token) Lexeme() string {
	if t.Kind.HasPayload() {
		return t.Text
	}
	return spellings[t.Kind]
}

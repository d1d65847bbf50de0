/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/dburkart/guiql/pkg/common/parse"
	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(start, length uint32) parse.Location {
	return parse.Location{StartsAt: start, Len: length}
}

func requireParseError(t *testing.T, err error, kind ParseError, at parse.Location) *Error {
	t.Helper()

	var parseErr *Error
	require.True(t, errors.As(err, &parseErr), "wanted *Error, got %v", err)
	assert.Equal(t, kind, parseErr.Kind)
	assert.Equal(t, at, parseErr.Location)
	assert.True(t, errors.Is(err, kind))

	return parseErr
}

func TestCreateQuery(t *testing.T) {
	query, err := Parse("create Foo { }")
	require.NoError(t, err)

	create, ok := query.(*ast.CreateQuery)
	require.True(t, ok)

	assert.Equal(t, "Foo", create.ElementName)
	assert.Equal(t, loc(7, 3), create.Name)
	assert.Equal(t, loc(0, 6), create.Location())
	require.NotNil(t, create.View)
	assert.True(t, create.View.Empty())
	assert.Equal(t, tokenizer.TOK_BRACE_L, create.View.Token.Kind)
	assert.Equal(t, loc(13, 1), create.View.Close)
}

func TestCreateQueryWithoutBody(t *testing.T) {
	query, err := Parse("create Foo")
	require.NoError(t, err)

	create := query.(*ast.CreateQuery)
	assert.Equal(t, "Foo", create.ElementName)
	require.NotNil(t, create.View)
	assert.True(t, create.View.Empty())
	assert.Equal(t, tokenizer.TOK_INVALID, create.View.Token.Kind)
}

func TestCreateQueryNestedBody(t *testing.T) {
	query, err := Parse("create Window { Row { Label Button } Footer }")
	require.NoError(t, err)

	view := query.(*ast.CreateQuery).View
	require.Len(t, view.Children, 2)

	row := view.Children[0]
	assert.Equal(t, "Row", row.Value())
	require.Len(t, row.Children, 2)
	assert.Equal(t, "Label", row.Children[0].Value())
	assert.Equal(t, "Button", row.Children[1].Value())

	assert.Equal(t, "Footer", view.Children[1].Value())
	assert.Empty(t, view.Children[1].Children)
}

func TestCreateMissingName(t *testing.T) {
	_, err := Parse("create")
	requireParseError(t, err, SyntaxError, loc(6, 0))
}

func TestEmptyQuery(t *testing.T) {
	_, err := Parse("   ")
	requireParseError(t, err, SyntaxError, loc(3, 0))
}

func TestUnexpectedLeadingToken(t *testing.T) {
	_, err := Parse("@root insert new Element")
	requireParseError(t, err, UnexpectedToken, loc(0, 5))

	_, err = Parse("insert Foo")
	requireParseError(t, err, UnexpectedToken, loc(0, 6))
}

func TestCreateNameMustBeIdentifier(t *testing.T) {
	_, err := Parse("create 12")
	parseErr := requireParseError(t, err, UnexpectedToken, loc(7, 2))

	want := "Syntax error found in query:\ncreate 12\n       ^~ Error: unexpected token '12', expected an element name\n"
	assert.Equal(t, want, parseErr.FormatError("create 12"))
}

func TestTrailingInput(t *testing.T) {
	_, err := Parse("create Foo { } extra")
	requireParseError(t, err, UnexpectedToken, loc(15, 5))
}

func TestViewErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ParseError
		at    parse.Location
	}{
		{"create Foo {", SyntaxError, loc(12, 0)},
		{"create Foo { Row", SyntaxError, loc(16, 0)},
		{"create Foo { Row { }", SyntaxError, loc(20, 0)},
		{"create Foo { { } }", UnexpectedToken, loc(13, 1)},
		{"create Foo }", UnexpectedToken, loc(11, 1)},
		{"create Foo { 42 }", UnexpectedToken, loc(13, 2)},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Parse(test.input)
			requireParseError(t, err, test.kind, test.at)
		})
	}
}

func TestTokenizeErrorsAreWrapped(t *testing.T) {
	_, err := Parse("create \"abc")
	parseErr := requireParseError(t, err, TokenizeError, loc(7, 4))
	assert.True(t, errors.Is(err, tokenizer.ErrUnterminatedStringLiteral))

	var lexErr *tokenizer.Error
	require.True(t, errors.As(parseErr.Cause, &lexErr))
	assert.Equal(t, tokenizer.ErrUnterminatedStringLiteral, lexErr.Err)

	// Raised inside the view parser
	_, err = Parse("create Foo { @ }")
	requireParseError(t, err, TokenizeError, loc(13, 1))
	assert.True(t, errors.Is(err, tokenizer.ErrEmptyElementIdentifier))
}

func TestAdvanceSteps(t *testing.T) {
	p := FromString("create Foo")

	// pull create, interpret it, pull Foo, interpret it (and the empty
	// body), reach the end of input
	for i := 0; i < 5; i++ {
		status, query, err := p.Advance()
		require.Equal(t, Continue, status, "step %d", i)
		require.Nil(t, query)
		require.NoError(t, err)
	}

	status, query, err := p.Advance()
	require.Equal(t, Done, status)
	require.NoError(t, err)
	assert.Equal(t, "Foo", query.Value())
}

func TestFailureIsIdempotent(t *testing.T) {
	p := FromString("delete")

	_, first := p.ParseAll()
	require.Error(t, first)

	for i := 0; i < 3; i++ {
		status, query, err := p.Advance()
		assert.Equal(t, Failed, status)
		assert.Nil(t, query)
		assert.Same(t, first, err)
	}
}

func TestResultIsTakenOnce(t *testing.T) {
	p := FromString("create Foo")

	query, err := p.ParseAll()
	require.NoError(t, err)
	require.NotNil(t, query)

	assert.Panics(t, func() { p.Advance() })
}

func TestViewParserSharesTokenizer(t *testing.T) {
	tk := tokenizer.New("{ A } rest")

	view, err := NewViewParser(tk).ParseAll()
	require.NoError(t, err)
	require.Len(t, view.Children, 1)
	assert.Equal(t, loc(0, 5), view.Location())

	tok, err := tk.Next()
	require.NoError(t, err)
	assert.Equal(t, tokenizer.Token{Kind: tokenizer.TOK_IDENTIFIER, Text: "rest", Location: loc(6, 4)}, tok)
}

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../../test/parsing/query")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	require.NoError(t, err)
	require.NotEmpty(t, tests)

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			scanner := bufio.NewScanner(file)

			shouldPass := false
			scanner.Scan()
			if strings.ToUpper(scanner.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for scanner.Scan() {
				query, err := Parse(scanner.Text())
				if shouldPass && err != nil {
					t.Error(err)
					continue
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected query to fail: %s", scanner.Text())
					continue
				}

				if shouldPass {
					actual += ast.ASTToString(query)
				} else {
					actual += err.Error() + "\n"
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}

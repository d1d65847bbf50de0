/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package guiql

import (
	"bytes"
	"testing"

	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/parser"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorParse(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.NewMetricsStore()
	e := NewEvaluator(zerolog.New(&buf).Level(zerolog.TraceLevel), m)

	q, err := e.Parse("create Foo { Bar }")
	require.NoError(t, err)

	create, ok := q.(*ast.CreateQuery)
	require.True(t, ok)
	assert.Equal(t, "Foo", create.ElementName)
	assert.Contains(t, buf.String(), "\"query-id\"")

	samples, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, samples, metrics.Sample{Name: "guiql_queries", Labels: "kind=create,outcome=ok", Value: 1})
}

func TestEvaluatorParseError(t *testing.T) {
	m := metrics.NewMetricsStore()
	e := NewEvaluator(zerolog.Nop(), m)

	_, err := e.Parse("create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse query")

	parseErr, ok := errors.Cause(err).(*parser.Error)
	require.True(t, ok, "cause should be a *parser.Error, got %T", errors.Cause(err))
	assert.Equal(t, parser.SyntaxError, parseErr.Kind)

	samples, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, samples, metrics.Sample{Name: "guiql_queries", Labels: "kind=unknown,outcome=error", Value: 1})
}

func TestEvaluatorTokenize(t *testing.T) {
	m := metrics.NewMetricsStore()
	e := NewEvaluator(zerolog.Nop(), m)

	tokens, err := e.Tokenize("@root insert new Element")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	tokens, err = e.Tokenize("create \"oops")
	require.Error(t, err)
	assert.Len(t, tokens, 1)
	assert.True(t, errors.Is(err, tokenizer.ErrUnterminatedStringLiteral))

	samples, err := m.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, samples, metrics.Sample{Name: "guiql_tokens", Labels: "kind=TOK_ELEMENT", Value: 1})
	assert.Contains(t, samples, metrics.Sample{Name: "guiql_tokens", Labels: "kind=TOK_CREATE", Value: 1})
}

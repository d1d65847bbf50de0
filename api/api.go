/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package guiql

import (
	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/rs/zerolog"
)

// Evaluator is the entry point for the surrounding application: it turns
// query text into tokens or into a completed query item.
type Evaluator interface {
	Tokenize(string) ([]tokenizer.Token, error)
	Parse(string) (ast.Query, error)
}

// NewEvaluator creates an Evaluator that parses queries in-process. Returned
// errors wrap a *parser.Error or *tokenizer.Error, reachable with
// errors.Cause or errors.As.
func NewEvaluator(log zerolog.Logger, m metrics.MetricsStore) Evaluator {
	return &LocalEvaluator{log: log, metrics: m}
}

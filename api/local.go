/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package guiql

import (
	"time"

	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/parser"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type LocalEvaluator struct {
	log     zerolog.Logger
	metrics metrics.MetricsStore
}

func (e *LocalEvaluator) Tokenize(query string) ([]tokenizer.Token, error) {
	log := e.queryLogger()
	log.Debug().Str("size", humanize.Bytes(uint64(len(query)))).Msg("tokenizing query")

	tokens, err := tokenizer.Tokenize(query)
	for _, tok := range tokens {
		e.metrics.IncTokens(tok.Kind.ToString())
	}

	if err != nil {
		log.Debug().Err(err).Int("tokens", len(tokens)).Msg("tokenizer stopped early")
		return tokens, errors.Wrap(err, "unable to tokenize query")
	}

	log.Trace().Int("tokens", len(tokens)).Msg("tokenized query")
	return tokens, nil
}

func (e *LocalEvaluator) Parse(query string) (ast.Query, error) {
	log := e.queryLogger()
	log.Debug().Str("size", humanize.Bytes(uint64(len(query)))).Msg("parsing query")

	t := time.Now()
	q, err := parser.Parse(query)
	elapsed := time.Since(t)

	if err != nil {
		e.metrics.IncQueries(queryKind(nil), metrics.OutcomeError)
		e.metrics.ObserveParseNS(metrics.OutcomeError, elapsed.Nanoseconds())
		log.Debug().Err(err).Str("dur", elapsed.String()).Msg("unable to parse query")
		return nil, errors.Wrap(err, "unable to parse query")
	}

	e.metrics.IncQueries(queryKind(q), metrics.OutcomeOk)
	e.metrics.ObserveParseNS(metrics.OutcomeOk, elapsed.Nanoseconds())
	log.Trace().Str("dur", elapsed.String()).Str("element", q.Value()).Msg("parsed query")

	return q, nil
}

// queryLogger tags every line logged for one evaluation with the same id.
func (e *LocalEvaluator) queryLogger() zerolog.Logger {
	return e.log.With().Str("query-id", uuid.NewString()).Logger()
}

func queryKind(q ast.Query) string {
	switch q.(type) {
	case *ast.CreateQuery:
		return "create"
	}
	return "unknown"
}

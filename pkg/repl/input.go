/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"io"
	"strings"

	"github.com/dburkart/guiql/pkg/common/parse"
	"github.com/dburkart/guiql/pkg/query/parser"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/pkg/errors"
)

// ReadQuery joins args into a query, or reads the query from r when there
// are no args.
func ReadQuery(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "unable to read query")
	}

	query := strings.TrimRight(string(b), "\r\n")
	if strings.TrimSpace(query) == "" {
		return "", errors.New("no query given")
	}
	return query, nil
}

// FormatError points at the part of query that err was raised for, when err
// carries a location.
func FormatError(query string, err error) string {
	switch e := errors.Cause(err).(type) {
	case *parser.Error:
		return e.FormatError(query)
	case *tokenizer.Error:
		return parse.FormatError(query, e.Location, "Error: "+e.Err.Error())
	}
	return err.Error() + "\n"
}

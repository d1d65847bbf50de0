/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/dustin/go-humanize"
)

type Tokens []tokenizer.Token

func (t Tokens) Headers() []string {
	return []string{"kind", "text", "start", "len"}
}

func (t Tokens) Values() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tok := range t {
		rows = append(rows, []string{
			tok.Kind.ToString(),
			tok.Lexeme(),
			strconv.FormatUint(uint64(tok.Location.StartsAt), 10),
			strconv.FormatUint(uint64(tok.Location.Len), 10),
		})
	}
	return rows
}

// Nodes lists a query tree depth first; nested nodes are indented.
type Nodes struct {
	rows  [][]string
	depth int
}

func NewNodes(root ast.Node) *Nodes {
	n := &Nodes{}
	ast.Walk(n, root)
	return n
}

func (n *Nodes) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		n.depth -= 1
		return nil
	}

	loc := node.Location()
	n.rows = append(n.rows, []string{
		strings.Repeat("  ", n.depth) + reflect.TypeOf(node).Elem().Name(),
		node.Value(),
		strconv.FormatUint(uint64(loc.StartsAt), 10),
		strconv.FormatUint(uint64(loc.Len), 10),
	})
	n.depth += 1

	return n
}

func (n *Nodes) Headers() []string {
	return []string{"node", "value", "start", "len"}
}

func (n *Nodes) Values() [][]string {
	return n.rows
}

type Samples []metrics.Sample

func (s Samples) Headers() []string {
	return []string{"metric", "labels", "value"}
}

func (s Samples) Values() [][]string {
	rows := make([][]string, 0, len(s))
	for _, sample := range s {
		rows = append(rows, []string{sample.Name, sample.Labels, humanize.Commaf(sample.Value)})
	}
	return rows
}

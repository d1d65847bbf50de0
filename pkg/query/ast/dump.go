/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strconv"
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Node) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	value := node.Value()
	switch t := node.(type) {
	case *ViewRoot:
		value = "children=" + strconv.Itoa(len(t.Children))
	}

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + value + "]" + " " + node.Location().String() + "\n"

	d.Output += output
	d.indent += 1

	return d
}

// ASTToString dumps node and its descendants, one node per line.
func ASTToString(node Node) string {
	d := &Dumper{}
	Walk(d, node)
	return d.Output
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *CreateQuery:
		if n.View != nil {
			Walk(v, n.View)
		}

	case *ViewRoot:
		for _, c := range n.Children {
			Walk(v, c)
		}

	case *ViewElement:
		for _, c := range n.Children {
			Walk(v, c)
		}

	default:
		panic("Unexpected Node passed to Walk")
	}

	v.Visit(nil)
}

/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// FormatError renders message beneath input, pointing at the characters
// covered by loc:
//
//	create 12
//	       ^~ Error: unexpected token '12', expected an element name
func FormatError(input string, loc Location, message string) string {
	repeat := int(loc.Len) - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := "Syntax error found in query:\n"
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", int(loc.StartsAt)), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}

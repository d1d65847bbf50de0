/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "fmt"

type TokenType interface {
	ToString() string
}

// Location is a half-open span over the character (rune) positions of the
// input. Len is the number of characters the span covers.
type Location struct {
	StartsAt uint32
	Len      uint32
}

// End returns the position one past the last character of the span.
func (l Location) End() uint32 {
	return l.StartsAt + l.Len
}

func (l Location) String() string {
	return fmt.Sprintf("{%d,%d}", l.StartsAt, l.Len)
}

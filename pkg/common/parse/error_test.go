/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "testing"

func TestFormatError(t *testing.T) {
	got := FormatError("create 12", Location{StartsAt: 7, Len: 2}, "Error: bad name")
	want := "Syntax error found in query:\ncreate 12\n       ^~ Error: bad name\n"

	if got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestFormatErrorEmptySpan(t *testing.T) {
	got := FormatError("create", Location{StartsAt: 6}, "Error: expected an element name")
	want := "Syntax error found in query:\ncreate\n      ^ Error: expected an element name\n"

	if got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestLocationEnd(t *testing.T) {
	l := Location{StartsAt: 17, Len: 7}
	if l.End() != 24 {
		t.Errorf("wanted end 24, got %d", l.End())
	}
	if l.String() != "{17,7}" {
		t.Errorf("wanted {17,7}, got %s", l.String())
	}
}

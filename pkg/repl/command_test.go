/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"testing"
)

func TestParseREPLCommand(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		cmd, err := ParseREPLCommand("parse create Foo { }")
		if err != nil {
			t.Fatal(err)
		}
		if cmd.Name != CommandParse || cmd.Query != "create Foo { }" {
			t.Errorf("unexpected command %+v", cmd)
		}
	})
	t.Run("tokens", func(t *testing.T) {
		cmd, err := ParseREPLCommand("TOKENS  @root insert new Element ")
		if err != nil {
			t.Fatal(err)
		}
		if cmd.Name != CommandTokens || cmd.Query != "@root insert new Element" {
			t.Errorf("unexpected command %+v", cmd)
		}
	})
	t.Run("bare query", func(t *testing.T) {
		cmd, err := ParseREPLCommand("create Foo")
		if err != nil {
			t.Fatal(err)
		}
		if cmd.Name != CommandParse || cmd.Query != "create Foo" {
			t.Errorf("unexpected command %+v", cmd)
		}
	})
	t.Run("tokens no query", func(t *testing.T) {
		_, err := ParseREPLCommand("tokens")
		if err == nil {
			t.Fail()
		}
	})
	t.Run("stats", func(t *testing.T) {
		cmd, err := ParseREPLCommand("stats")
		if err != nil {
			t.Fatal(err)
		}
		if cmd.Name != CommandStats {
			t.Fail()
		}
	})
	t.Run("exit with arguments", func(t *testing.T) {
		_, err := ParseREPLCommand("exit now")
		if err == nil {
			t.Fail()
		}
	})
	t.Run("empty", func(t *testing.T) {
		_, err := ParseREPLCommand("   ")
		if err == nil {
			t.Fail()
		}
	})
}

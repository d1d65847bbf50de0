/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// CommandParse parses a query and prints its tree
	CommandParse = "PARSE"
	// CommandTokens prints the tokens of a query
	CommandTokens = "TOKENS"
	// CommandStats prints the metrics collected this session
	CommandStats = "STATS"
	// CommandHelp prints usage
	CommandHelp = "HELP"
	// CommandExit leaves the shell
	CommandExit = "EXIT"
)

type Command struct {
	Name  string
	Query string
}

// ParseREPLCommand parses a line entered in the shell. A line that does not
// start with a known command is parsed as a query.
//
// This function assumes there is no '\n'
func ParseREPLCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, errors.New("empty command")
	}

	// all commands have a space after them, if not then they are command only
	// like EXIT
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name := strings.ToUpper(cmd); name {
	case CommandParse, CommandTokens:
		if rest == "" {
			return Command{}, errors.Errorf("%s requires a query", strings.ToLower(name))
		}
		return Command{Name: name, Query: rest}, nil
	case CommandStats, CommandHelp, CommandExit:
		if rest != "" {
			return Command{}, errors.Errorf("%s takes no arguments", strings.ToLower(name))
		}
		return Command{Name: name}, nil
	}

	return Command{Name: CommandParse, Query: line}, nil
}

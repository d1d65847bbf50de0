/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package shell

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/chzyer/readline"
	guiql "github.com/dburkart/guiql/api"
	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/query/tokenizer"
	"github.com/dburkart/guiql/pkg/repl"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Command = &cobra.Command{
		Use:   "shell",
		Short: "Interactive terminal for tokenizing and parsing queries",

		RunE: func(cmd *cobra.Command, args []string) error {
			log := viper.Get("logger").(zerolog.Logger)
			store := metrics.NewMetricsStore()

			if port := viper.GetInt("shell.metrics-port"); port > 0 {
				store.RegisterCollector(collectors.NewGoCollector())
				go serveMetrics(log, store, port)
			}

			s := &session{
				evaluator: guiql.NewEvaluator(log, store),
				metrics:   store,
				writer:    repl.NewOutputWriter(os.Stdout, viper.GetString("guiql.output")),
				out:       os.Stdout,
				log:       log,
			}
			return readlinePrompt(s)
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().Int("metrics-port", 0, "Serve /metrics on this port while the shell runs (0 disables)")

	// Bind flags to viper
	viper.BindPFlag("shell.metrics-port", Command.Flags().Lookup("metrics-port"))
}

func serveMetrics(log zerolog.Logger, store metrics.MetricsStore, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", store.Handler())

	log.Info().Int("port", port).Msg("/metrics endpoint started")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Error().Err(err).Msg("error serving metrics")
	}
}

type session struct {
	evaluator guiql.Evaluator
	metrics   metrics.MetricsStore
	writer    repl.OutputWriter
	out       io.Writer
	log       zerolog.Logger
	completer *readline.PrefixCompleter
}

func keywordItems() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for _, kw := range tokenizer.Keywords() {
		ret = append(ret, readline.PcItem(kw))
	}
	return ret
}

func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("parse", keywordItems()...),
		readline.PcItem("tokens", keywordItems()...),
		readline.PcItem("stats"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem("create"),
	)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(s *session) error {
	s.completer = newCompleter()

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          viper.GetString("shell.prompt"),
		HistoryFile:     viper.GetString("shell.history-file"),
		AutoComplete:    s.completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		if !s.exec(line) {
			break
		}
	}
	rl.Clean()
	return nil
}

// exec runs one line entered at the prompt. It reports false once the
// session should end.
func (s *session) exec(line string) bool {
	cmd, err := repl.ParseREPLCommand(line)
	if err != nil {
		s.log.Error().Err(err).Send()
		return true
	}

	switch cmd.Name {
	case repl.CommandExit:
		return false

	case repl.CommandHelp:
		fmt.Fprintln(s.out, "usage:")
		if s.completer != nil {
			fmt.Fprintln(s.out, s.completer.Tree("    "))
		}
		return true

	case repl.CommandStats:
		samples, err := s.metrics.Snapshot()
		if err != nil {
			s.log.Error().Err(err).Msg("unable to collect metrics")
			return true
		}
		s.write(repl.Samples(samples))

	case repl.CommandTokens:
		toks, err := s.evaluator.Tokenize(cmd.Query)
		s.write(repl.Tokens(toks))
		if err != nil {
			fmt.Fprint(s.out, repl.FormatError(cmd.Query, err))
		}

	case repl.CommandParse:
		q, err := s.evaluator.Parse(cmd.Query)
		if err != nil {
			fmt.Fprint(s.out, repl.FormatError(cmd.Query, err))
			return true
		}
		s.write(repl.NewNodes(q))
	}

	fmt.Fprintln(s.out)
	return true
}

func (s *session) write(v repl.Printable) {
	if err := s.writer.Write(v); err != nil {
		s.log.Error().Err(err).Msg("unable to write result")
	}
}

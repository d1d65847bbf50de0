/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package tokens

import (
	"fmt"

	guiql "github.com/dburkart/guiql/api"
	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Command = &cobra.Command{
		Use:   "tokens [query]",
		Short: "Print the tokens of a query",
		Long:  "Print the tokens of a query. The query is read from stdin when no arguments are given.",

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			log := viper.Get("logger").(zerolog.Logger)

			query, err := repl.ReadQuery(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			e := guiql.NewEvaluator(log, metrics.NewMetricsStore())
			toks, tokErr := e.Tokenize(query)

			// Tokens read before an error are still printed
			writer := repl.NewOutputWriter(cmd.OutOrStdout(), viper.GetString("guiql.output"))
			if err := writer.Write(repl.Tokens(toks)); err != nil {
				return errors.Wrap(err, "unable to write tokens")
			}

			if tokErr != nil {
				fmt.Fprint(cmd.ErrOrStderr(), repl.FormatError(query, tokErr))
				return tokErr
			}
			return nil
		},
	}
)

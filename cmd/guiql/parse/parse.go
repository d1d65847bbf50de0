/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"

	guiql "github.com/dburkart/guiql/api"
	"github.com/dburkart/guiql/pkg/metrics"
	"github.com/dburkart/guiql/pkg/query/ast"
	"github.com/dburkart/guiql/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Command = &cobra.Command{
		Use:   "parse [query]",
		Short: "Parse a query and print its tree",
		Long:  "Parse a query and print its tree. The query is read from stdin when no arguments are given.",

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			log := viper.Get("logger").(zerolog.Logger)

			query, err := repl.ReadQuery(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			e := guiql.NewEvaluator(log, metrics.NewMetricsStore())
			q, err := e.Parse(query)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), repl.FormatError(query, err))
				return err
			}

			if tree, _ := cmd.Flags().GetBool("tree"); tree {
				fmt.Fprint(cmd.OutOrStdout(), ast.ASTToString(q))
				return nil
			}

			writer := repl.NewOutputWriter(cmd.OutOrStdout(), viper.GetString("guiql.output"))
			return errors.Wrap(writer.Write(repl.NewNodes(q)), "unable to write query")
		},
	}
)

func init() {
	Command.Flags().Bool("tree", false, "Print the indented tree dump instead of a table")
}

/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package guiql

import (
	"fmt"
	"os"

	"github.com/dburkart/guiql/cmd/guiql/parse"
	"github.com/dburkart/guiql/cmd/guiql/shell"
	"github.com/dburkart/guiql/cmd/guiql/tokens"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "guiql",
		Short: "guiql parses queries against a GUI element tree",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
			return validateOutput()
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", false, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the guiql config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of results [csv, json, text, yaml]")

	// Bind viper config to the root flags
	viper.BindPFlag("guiql.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("guiql.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("guiql.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("guiql version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	tokens.Command.Version = rootCmd.Version
	parse.Command.Version = rootCmd.Version
	shell.Command.Version = rootCmd.Version
	rootCmd.AddCommand(tokens.Command)
	rootCmd.AddCommand(parse.Command)
	rootCmd.AddCommand(shell.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}

// Copyright 2025 The strictyaml Project Contributors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	reprDump bool
	verbose  bool

	log = logrus.New()

	rootCmd = &cobra.Command{
		Use:          "strictyaml [file]",
		Short:        "load and inspect strict-YAML documents",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runLoad,
	}
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&reprDump, "repr", false, "dump the loaded tree with a Go-value structural printer instead of YAML-ish text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scan progress to stderr")
	return rootCmd.Execute()
}

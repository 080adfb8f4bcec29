// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/avail-light-client/cmd/avail-lc/commands"
)

func main() {
	rootCmd, err := commands.NewRootCommand()
	if err != nil {
		panic(err)
	}

	configureCobraCmd(rootCmd, "AVAIL_LC")

	rootCmd.AddCommand(
		commands.InitCmd,
		commands.StatusCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

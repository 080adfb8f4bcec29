// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/ChainSafe/avail-light-client/config"
)

const basePathFlag = "base-path"

// configureCobraCmd configures the cobra command with the given environment prefix.
func configureCobraCmd(cmd *cobra.Command, envPrefix string) {
	cobra.OnInitialize(func() { initEnv(envPrefix) })
	cmd.PersistentPreRunE = concatCobraCmdFuncs(configureViper, cmd.PersistentPreRunE)
}

// initEnv sets to use ENV variables if set.
func initEnv(prefix string) {
	// env variables with AVAIL_LC prefix (eg. AVAIL_LC_BASE_PATH)
	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

type cobraCmdFunc func(cmd *cobra.Command, args []string) error

// concatCobraCmdFuncs concatenates the given cobra command functions into a single function.
func concatCobraCmdFuncs(fs ...cobraCmdFunc) cobraCmdFunc {
	return func(cmd *cobra.Command, args []string) error {
		for _, f := range fs {
			if f != nil {
				if err := f(cmd, args); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// configureViper sets up viper to read from the config file found under the
// base path, when there is one.
func configureViper(cmd *cobra.Command, args []string) error {
	basePath := viper.GetString(basePathFlag)
	viper.SetConfigName(strings.TrimSuffix(cfg.DefaultConfigFileName, filepath.Ext(cfg.DefaultConfigFileName)))
	viper.AddConfigPath(basePath)
	viper.AddConfigPath(filepath.Join(basePath, "config"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

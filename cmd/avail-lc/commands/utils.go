// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/chaindb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChainSafe/avail-light-client/lib/lightclient"
)

// addStringFlagBindViper adds a string flag to the given command and binds it to the given viper name
func addStringFlagBindViper(cmd *cobra.Command,
	name,
	defaultValue,
	usage,
	viperBindName string,
) error {
	cmd.PersistentFlags().String(name, defaultValue, usage)
	return viper.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// addBoolFlagBindViper adds a bool flag to the given command and binds it to the given viper name
func addBoolFlagBindViper(
	cmd *cobra.Command,
	name string,
	defaultValue bool,
	usage string,
	viperBindName string,
) error {
	cmd.PersistentFlags().Bool(name, defaultValue, usage)
	return viper.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// openState opens the light client database under the given base path and
// wraps it in the state layer.
func openState(basePath string) (*lightclient.State, *chaindb.BadgerDB, error) {
	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir: filepath.Join(basePath, "db"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return lightclient.NewState(db), db, nil
}

// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/avail-light-client/lib/lightclient"
)

// InitCmd is the command to initialise the light client database
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise the light client database from the configured checkpoint",
	Long: `The init command seeds a fresh light client database with the trusted
checkpoint from the configuration file.
Example:
	avail-lc init --config config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return execInit(cmd)
	},
}

// execInit executes the init command
func execInit(_ *cobra.Command) error {
	checkpoint, err := config.Checkpoint.ToCheckpoint()
	if err != nil {
		return fmt.Errorf("invalid checkpoint config: %w", err)
	}

	state, db, err := openState(config.BasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("closing database: %s", err)
		}
	}()

	err = state.Initialize(checkpoint)
	if errors.Is(err, lightclient.ErrAlreadyInitialised) {
		return fmt.Errorf("database at %s is already initialised", config.BasePath)
	} else if err != nil {
		return err
	}

	logger.Infof("initialised database at %s from checkpoint block %d, set id %d",
		config.BasePath, checkpoint.Header.Number, checkpoint.SetID)
	return nil
}

// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/avail-light-client/lib/lightclient"
)

// StatusCmd is the command to print the light client's verified head
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the light client's verified head and active authority set id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return execStatus(cmd)
	},
}

// execStatus executes the status command
func execStatus(cmd *cobra.Command) error {
	state, db, err := openState(config.BasePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("closing database: %s", err)
		}
	}()

	head, err := state.Head()
	if errors.Is(err, lightclient.ErrNotInitialised) {
		return fmt.Errorf("database at %s is not initialised, run avail-lc init first", config.BasePath)
	} else if err != nil {
		return err
	}

	hash, err := state.HeaderHash(head)
	if err != nil {
		return err
	}

	dataRoot, err := state.DataRoot(head)
	if err != nil {
		return err
	}

	setID, err := state.ActiveSetID()
	if err != nil {
		return err
	}

	cmd.Printf("head:       %d (%s)\n", head, hash)
	cmd.Printf("data root:  %s\n", dataRoot)
	cmd.Printf("set id:     %d\n", setID)
	return nil
}

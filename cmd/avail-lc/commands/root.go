// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package commands implements the avail-lc command line interface.
package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/gossamer/lib/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/ChainSafe/avail-light-client/config"
	"github.com/ChainSafe/avail-light-client/internal/log"
	"github.com/ChainSafe/avail-light-client/internal/metrics"
	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/avail-light-client/lib/lightclient"
	"github.com/ChainSafe/avail-light-client/relayer"
)

var (
	config = cfg.DefaultConfig()
	logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))
)

// ParseConfig parses the config from the config file and command line flags.
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get --config: %s", err)
	}

	con := cfg.DefaultConfig()
	if configFile != "" {
		if err := cfg.LoadConfig(con, configFile); err != nil {
			return nil, err
		}
	} else if err := viper.Unmarshal(con); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	if con.BasePath == "" {
		return nil, fmt.Errorf("--base-path cannot be empty")
	}
	con.BasePath = utils.ExpandDir(con.BasePath)

	level, err := log.ParseLevel(con.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log-level: %s", err)
	}
	log.Patch(log.SetLevel(level))

	return con, nil
}

// NewRootCommand creates the root command
func NewRootCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "avail-lc",
		Short: "Avail GRANDPA light client",
		Long: `avail-lc follows an Avail chain's finalised headers and maintains a
locally verified view of its header, state root and data root history.
Usage:
	avail-lc init --config config.toml
	avail-lc --base-path ~/.local/share/avail-lc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execRoot(cmd)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			config, err = ParseConfig(cmd)
			return err
		},
	}

	if err := addRootFlags(cmd); err != nil {
		return nil, err
	}

	return cmd, nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to the TOML configuration file")

	if err := addStringFlagBindViper(cmd,
		"base-path",
		config.BasePath,
		"directory holding the light client database",
		"base-path"); err != nil {
		return fmt.Errorf("failed to add --base-path flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd,
		"log-level",
		config.LogLevel,
		"Global log level. Supports levels critical (silent), error, warn, info, debug and trace",
		"log-level"); err != nil {
		return fmt.Errorf("failed to add --log-level flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd,
		"endpoint",
		config.Chain.Endpoint,
		"websocket RPC url of an Avail full node",
		"chain.endpoint"); err != nil {
		return fmt.Errorf("failed to add --endpoint flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd,
		"metrics-address",
		config.MetricsAddress,
		"Listen address of the metric server",
		"metrics-address"); err != nil {
		return fmt.Errorf("failed to add --metrics-address flag: %s", err)
	}
	if err := addBoolFlagBindViper(cmd,
		"publish-metrics",
		config.PublishMetrics,
		"Publish metrics to prometheus",
		"publish-metrics"); err != nil {
		return fmt.Errorf("failed to add --publish-metrics flag: %s", err)
	}

	return nil
}

// execRoot runs the light client until interrupted.
func execRoot(_ *cobra.Command) error {
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
	logger.Infof("resuming from head %d", head)

	chain, err := relayer.NewSubstrateChain(config.Chain.Endpoint)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", config.Chain.Endpoint, err)
	}

	handler := lightclient.NewHandler(state,
		lightclient.TrieProofVerifier{},
		grandpa.JustificationVerifier{},
		grandpa.EventDecoder{})

	service := relayer.NewService(chain, handler, state)
	if err := service.Start(); err != nil {
		return fmt.Errorf("starting relayer: %w", err)
	}
	defer func() {
		if err := service.Stop(); err != nil {
			logger.Errorf("stopping relayer: %s", err)
		}
	}()

	if config.PublishMetrics {
		server := metrics.NewServer(config.MetricsAddress)
		if err := server.Start(); err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			if err := server.Stop(); err != nil {
				logger.Errorf("stopping metrics server: %s", err)
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)
	<-sigc
	logger.Info("signal interrupt, shutting down...")

	return nil
}

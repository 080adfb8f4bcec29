// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package cfg holds the light client's configuration, loaded from a TOML
// file and command line flags through viper.
package cfg

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
	"github.com/spf13/viper"

	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/avail-light-client/lib/lightclient"
)

// DefaultConfigFileName is the file looked up inside the base path when no
// explicit config file is given.
const DefaultConfigFileName = "config.toml"

// Config is the top level light client configuration.
type Config struct {
	BaseConfig `mapstructure:",squash"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Checkpoint CheckpointConfig `mapstructure:"checkpoint"`
}

// BaseConfig covers the node-wide settings.
type BaseConfig struct {
	// BasePath is the directory holding the light client database
	BasePath string `mapstructure:"base-path"`
	// LogLevel is the global log level
	LogLevel string `mapstructure:"log-level"`
	// MetricsAddress is the listen address of the prometheus metrics server
	MetricsAddress string `mapstructure:"metrics-address"`
	// PublishMetrics enables the prometheus metrics server
	PublishMetrics bool `mapstructure:"publish-metrics"`
}

// ChainConfig covers the remote chain the relayer follows.
type ChainConfig struct {
	// Endpoint is the websocket RPC url of a full node
	Endpoint string `mapstructure:"endpoint"`
}

// CheckpointConfig is the trusted checkpoint the light client database is
// initialised from.
type CheckpointConfig struct {
	Number    uint32            `mapstructure:"number"`
	Hash      string            `mapstructure:"hash"`
	StateRoot string            `mapstructure:"state-root"`
	DataRoot  string            `mapstructure:"data-root"`
	SetID     uint64            `mapstructure:"set-id"`
	Authority []AuthorityConfig `mapstructure:"authority"`
}

// AuthorityConfig is one grandpa authority of the checkpoint's set.
type AuthorityConfig struct {
	// Key is the hex encoded ed25519 public key
	Key    string `mapstructure:"key"`
	Weight uint64 `mapstructure:"weight"`
}

// DefaultConfig returns a config with sane defaults and an empty checkpoint.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: BaseConfig{
			BasePath:       "~/.local/share/avail-lc",
			LogLevel:       "info",
			MetricsAddress: "localhost:9876",
			PublishMetrics: false,
		},
		Chain: ChainConfig{
			Endpoint: "ws://localhost:9944",
		},
	}
}

// ValidateBasic checks the config without touching disk or network.
func (c *Config) ValidateBasic() error {
	if c.BasePath == "" {
		return fmt.Errorf("base-path cannot be empty")
	}
	if c.Chain.Endpoint == "" {
		return fmt.Errorf("chain.endpoint cannot be empty")
	}
	if _, err := c.Checkpoint.ToCheckpoint(); err != nil {
		return fmt.Errorf("invalid checkpoint: %w", err)
	}
	return nil
}

// ToCheckpoint parses the checkpoint config into the light client's
// checkpoint type.
func (c *CheckpointConfig) ToCheckpoint() (*lightclient.Checkpoint, error) {
	hash, err := common.HexToHash(c.Hash)
	if err != nil {
		return nil, fmt.Errorf("parsing hash: %w", err)
	}

	stateRoot, err := common.HexToHash(c.StateRoot)
	if err != nil {
		return nil, fmt.Errorf("parsing state-root: %w", err)
	}

	dataRoot, err := common.HexToHash(c.DataRoot)
	if err != nil {
		return nil, fmt.Errorf("parsing data-root: %w", err)
	}

	if len(c.Authority) != lightclient.NumAuthorities {
		return nil, fmt.Errorf("have %d authorities, expected %d",
			len(c.Authority), lightclient.NumAuthorities)
	}

	authorities := make([]grandpa.Authority, len(c.Authority))
	for i, authority := range c.Authority {
		keyBytes, err := common.HexToBytes(authority.Key)
		if err != nil {
			return nil, fmt.Errorf("parsing authority %d key: %w", i, err)
		}

		key, err := ed25519.NewPublicKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("parsing authority %d key: %w", i, err)
		}

		authorities[i] = grandpa.Authority{
			Key:    key.AsBytes(),
			Weight: authority.Weight,
		}
	}

	return &lightclient.Checkpoint{
		Header: lightclient.Header{
			Number:    c.Number,
			Hash:      hash,
			StateRoot: stateRoot,
			DataRoot:  dataRoot,
		},
		SetID:       c.SetID,
		Authorities: authorities,
	}, nil
}

// LoadConfig reads the config file at path into config, on top of whatever
// flags viper has already bound.
func LoadConfig(config *Config, path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("unmarshalling config: %w", err)
	}
	return nil
}

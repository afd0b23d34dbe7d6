// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// AppConfig is the top-level configuration the entry sequencer parses in
// step 1, bundling the node, storage and logger sections plus the
// listen addresses the HTTPSERVER/NETWORK/RPCMODE module kinds need.
type AppConfig struct {
	NodeCfg    NodeConfig    `yaml:"node"`
	StorageCfg StorageConfig `yaml:"storage"`
	LoggerCfg  LoggerConfig  `yaml:"logger"`

	// HTTPAddr is where HTTPSERVER listens, e.g. "127.0.0.1:8645".
	HTTPAddr string `yaml:"http_addr"`

	// NetworkListenAddr is the libp2p multiaddr NETWORK listens on.
	NetworkListenAddr string `yaml:"network_listen_addr"`

	// RPCJWTSecretHex is the shared secret RPCMODE validates bearer tokens
	// against, hex-encoded.
	RPCJWTSecretHex string `yaml:"rpc_jwt_secret"`
}

// DefaultAppConfig returns MetabaseNet's own defaults, generalized from the
// documented §6 defaults (bucket_width_seconds=3600, compress_chunks=true)
// plus this corpus's usual local-only listen addresses.
func DefaultAppConfig(dataPath string) AppConfig {
	return AppConfig{
		NodeCfg:           NodeConfig{DataPath: dataPath, Mode: ModeServer},
		StorageCfg:        DefaultStorageConfig(dataPath),
		LoggerCfg:         DefaultLoggerConfig(),
		HTTPAddr:          "127.0.0.1:8645",
		NetworkListenAddr: "/ip4/0.0.0.0/tcp/30303",
	}
}

// LoadAppConfig reads and parses a YAML config file at path, starting from
// DefaultAppConfig(dataPath) so unset fields keep their defaults.
func LoadAppConfig(path, dataPath string) (AppConfig, error) {
	cfg := DefaultAppConfig(dataPath)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section the entry sequencer can validate without
// touching the filesystem.
func (c *AppConfig) Validate() error {
	if err := c.NodeCfg.Validate(); err != nil {
		return err
	}
	if err := c.StorageCfg.Validate(); err != nil {
		return err
	}
	return c.LoggerCfg.Validate()
}

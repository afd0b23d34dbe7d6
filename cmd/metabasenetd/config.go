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

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/metabasenet/metabasenet/conf"
)

// buildConfig implements entry sequencer step 1: parse configuration and
// compute the data directory. CLI flags override a YAML file, which
// overrides DefaultAppConfig. The data directory is the exception: the
// data directory flag's value, its default included, always replaces both
// NodeCfg.DataPath and StorageCfg.DataPath.
func buildConfig(c *cli.Context) (conf.AppConfig, error) {
	dataDir := c.String(dataDirFlag.Name)

	cfg, err := conf.LoadAppConfig(c.String(configFlag.Name), dataDir)
	if err != nil {
		return cfg, err
	}

	cfg.NodeCfg.DataPath = dataDir
	cfg.StorageCfg.DataPath = dataDir

	switch {
	case c.Bool(purgeFlag.Name):
		cfg.NodeCfg.Mode = conf.ModePurge
	case c.Bool(minerFlag.Name):
		cfg.NodeCfg.Mode = conf.ModeMiner
	case c.Bool(clientFlag.Name):
		cfg.NodeCfg.Mode = conf.ModeClient
	default:
		if cfg.NodeCfg.Mode == "" {
			cfg.NodeCfg.Mode = conf.ModeServer
		}
	}

	if c.IsSet(httpAddrFlag.Name) {
		cfg.HTTPAddr = c.String(httpAddrFlag.Name)
	}
	if c.IsSet(jwtSecretFlag.Name) {
		cfg.RPCJWTSecretHex = c.String(jwtSecretFlag.Name)
	}
	if c.Bool(debugFlag.Name) {
		cfg.LoggerCfg.Level = "debug"
	}
	if c.Bool(testnetFlag.Name) {
		cfg.NetworkListenAddr = "/ip4/0.0.0.0/tcp/40303"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

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

import "fmt"

// MinFreeDiskSpaceMB is the minimum free space the entry sequencer requires
// in the data directory before it will proceed past step 2.
const MinFreeDiskSpaceMB = 100

// NodeConfig holds the settings the entry sequencer needs before any module
// is attached: where the node keeps its files and which run mode to build.
type NodeConfig struct {
	// DataPath is the directory holding the .lock file and every module's
	// on-disk state, including CTSDB chunk directories.
	DataPath string `json:"data_path" yaml:"data_path"`

	// Mode selects which module kinds the entry sequencer instantiates.
	Mode Mode `json:"mode" yaml:"mode"`
}

// Validate checks the fields the entry sequencer can validate without
// touching the filesystem (step 1). Filesystem checks happen in step 2.
func (c *NodeConfig) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("mode %q is not one of SERVER, MINER, CLIENT, PURGE", c.Mode)
	}
	return nil
}

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

// DefaultBucketWidthSeconds is the width of a CTSDB time bucket when the
// caller does not override it.
const DefaultBucketWidthSeconds = 3600

// StorageConfig configures a single CTSDB instance. The entry sequencer owns
// one StorageConfig per database it opens; CTSDB itself never parses flags
// or files.
type StorageConfig struct {
	// DataPath is the directory the database's chunk files live under.
	DataPath string `json:"data_path" yaml:"data_path"`

	// BucketWidthSeconds is the width B of a time bucket; must be positive.
	BucketWidthSeconds int64 `json:"bucket_width_seconds" yaml:"bucket_width_seconds"`

	// CompressChunks enables per-record snappy compression on flush.
	CompressChunks bool `json:"compress_chunks" yaml:"compress_chunks"`
}

// DefaultStorageConfig returns the documented defaults (§4.D, §6).
func DefaultStorageConfig(dataPath string) StorageConfig {
	return StorageConfig{
		DataPath:           dataPath,
		BucketWidthSeconds: DefaultBucketWidthSeconds,
		CompressChunks:     true,
	}
}

// Validate rejects a non-positive bucket width; everything else has a
// usable zero value.
func (c *StorageConfig) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if c.BucketWidthSeconds <= 0 {
		return fmt.Errorf("bucket_width_seconds must be positive, got %d", c.BucketWidthSeconds)
	}
	return nil
}

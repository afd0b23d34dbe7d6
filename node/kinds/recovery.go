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

package kinds

import (
	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/modules/ctsdb"
	"github.com/metabasenet/metabasenet/node"
)

// Recovery wraps a CTSDB instance and owns its first Initialize attempt. A
// clean crash leaves only a stale .tmp file, which db.Initialize already
// sweeps on its own; Recovery exists for the rarer case of a dirty chunk
// directory that still fails to open, where the only way forward is to
// wipe the directory and retry, per the chunk store's corrupted-chunk edge
// case.
type Recovery struct {
	Base
	dataPath string
	db       *ctsdb.DB
}

// NewRecovery constructs the RECOVERY module over db, rooted at dataPath.
// db must not yet have had Initialize called; Recovery owns the first
// attempt.
func NewRecovery(dataPath string, db *ctsdb.DB, sink log.Sink) *Recovery {
	return &Recovery{Base: NewBase("recovery", sink), dataPath: dataPath, db: db}
}

// Initialize attempts to open db normally. If that fails, it wipes the
// directory and retries once; a second failure is returned to the caller.
func (r *Recovery) Initialize(c *node.Container) error {
	if err := r.db.Initialize(); err == nil {
		return r.Base.Initialize(c)
	} else {
		r.sink.Warn("recovery: initial open failed, wiping and retrying", "error", err)
	}

	if err := ctsdb.WipeDirectory(r.dataPath); err != nil {
		return err
	}
	if err := r.db.Initialize(); err != nil {
		return err
	}
	return r.Base.Initialize(c)
}

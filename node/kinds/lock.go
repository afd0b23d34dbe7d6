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
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

// Lock is the pseudo-module that acquires the exclusive lock on
// "<data>/.lock" before any other module may touch the data directory.
// It is always the first kind in every mode's ordered list.
type Lock struct {
	Base
	dataPath string
	f        *flock.Flock
}

// NewLock constructs the LOCK module for the given data directory.
func NewLock(dataPath string, sink log.Sink) *Lock {
	return &Lock{Base: NewBase("lock", sink), dataPath: dataPath}
}

func (l *Lock) Initialize(c *node.Container) error {
	l.f = flock.New(filepath.Join(l.dataPath, ".lock"))
	ok, err := l.f.TryLock()
	if err != nil {
		return errors.Wrap(err, "lock: acquire")
	}
	if !ok {
		return errors.ErrLockContended
	}
	l.Base.Initialize(c)
	return nil
}

func (l *Lock) Deinitialize(c *node.Container) error {
	if l.f != nil {
		_ = l.f.Unlock()
	}
	return l.Base.Deinitialize(c)
}

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

package ctsdb

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/metabasenet/metabasenet/pkg/errors"
)

const lockFileName = ".lock"

// dirLock wraps the exclusive advisory lock taken on <path>/.lock. The LOCK
// module in node/kinds uses this same file for its own acquire-first check.
type dirLock struct {
	f *flock.Flock
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(path, 0755); mkErr != nil {
			return errors.Wrap(mkErr, "ctsdb: create data directory")
		}
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "ctsdb: stat data directory")
	}
	if !info.IsDir() {
		return errors.Errorf("ctsdb: %s is not a directory", path)
	}
	return nil
}

func acquireDirLock(path string) (*dirLock, error) {
	f := flock.New(filepath.Join(path, lockFileName))
	ok, err := f.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, "ctsdb: acquire lock")
	}
	if !ok {
		return nil, errors.ErrLockContended
	}
	return &dirLock{f: f}, nil
}

func (l *dirLock) release() {
	if l == nil || l.f == nil {
		return
	}
	_ = l.f.Unlock()
}

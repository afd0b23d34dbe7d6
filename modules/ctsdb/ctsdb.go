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

// Package ctsdb implements the chunked time-series database: a time-bucketed
// map of immutable on-disk chunks plus an in-memory write buffer, backed by
// modules/ctsdb/chunk for the on-disk format.
package ctsdb

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/metabasenet/metabasenet/common/digest"
	"github.com/metabasenet/metabasenet/modules/ctsdb/chunk"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

const (
	// DefaultBucketWidthSeconds matches conf.DefaultBucketWidthSeconds; kept
	// as a fallback for callers constructing a DB directly.
	DefaultBucketWidthSeconds = 3600

	dirCacheSize = 256
)

type dbState int

const (
	stateClosed dbState = iota
	stateOpen
)

// DB is one chunked time-series database rooted at a directory. The zero
// value is not usable; construct with New.
type DB struct {
	path         string
	bucketWidth  int64
	compress     bool

	mu    sync.RWMutex
	state dbState

	lock *dirLock

	// buffer holds writes not yet flushed, bucket -> key -> serialized record.
	buffer map[uint64]map[digest.Hash256][]byte

	// onDisk tracks which buckets have a chunk file on disk, refreshed at
	// Initialize and after Flush/RemoveAll.
	onDisk map[uint64]bool

	dirCache *lru.Cache[uint64, *chunk.Index]
}

// New constructs a DB for the given root path, bucket width and compression
// policy. Call Initialize before using it.
func New(path string, bucketWidth int64, compress bool) *DB {
	if bucketWidth <= 0 {
		bucketWidth = DefaultBucketWidthSeconds
	}
	cache, _ := lru.New[uint64, *chunk.Index](dirCacheSize)
	return &DB{
		path:        path,
		bucketWidth: bucketWidth,
		compress:    compress,
		buffer:      make(map[uint64]map[digest.Hash256][]byte),
		onDisk:      make(map[uint64]bool),
		dirCache:    cache,
	}
}

func (db *DB) bucketOf(t int64) uint64 {
	if db.bucketWidth <= 0 {
		return uint64(t)
	}
	b := t / db.bucketWidth
	if t < 0 && t%db.bucketWidth != 0 {
		b--
	}
	return uint64(b)
}

// Initialize acquires the directory lock, creates path if missing, recovers
// stale temp files, and builds the on-disk bucket index. Calling Initialize
// twice without an intervening Deinitialize fails with ErrAlreadyOpen.
func (db *DB) Initialize() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.state == stateOpen {
		return errors.ErrAlreadyOpen
	}

	if err := ensureDir(db.path); err != nil {
		return err
	}

	lock, err := acquireDirLock(db.path)
	if err != nil {
		return err
	}

	if err := chunk.RecoverStaleTemp(db.path); err != nil {
		lock.release()
		return err
	}

	ids, err := chunk.ListBucketIDs(db.path)
	if err != nil {
		lock.release()
		return err
	}

	db.onDisk = make(map[uint64]bool, len(ids))
	for _, id := range ids {
		db.onDisk[id] = true
	}
	db.buffer = make(map[uint64]map[digest.Hash256][]byte)
	db.dirCache.Purge()
	db.lock = lock
	db.state = stateOpen
	return nil
}

// Deinitialize releases the directory lock. Unflushed buffered writes are
// discarded; callers must Flush first if they want them persisted.
func (db *DB) Deinitialize() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.state != stateOpen {
		return errors.ErrNotOpen
	}
	db.lock.release()
	db.lock = nil
	db.buffer = make(map[uint64]map[digest.Hash256][]byte)
	db.dirCache.Purge()
	db.state = stateClosed
	return nil
}

// Update buffers r under key k in the bucket derived from t. The last write
// for a key within a bucket wins.
func (db *DB) Update(t int64, k digest.Hash256, r []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.state != stateOpen {
		return errors.ErrNotOpen
	}

	bucket := db.bucketOf(t)
	m, ok := db.buffer[bucket]
	if !ok {
		m = make(map[digest.Hash256][]byte)
		db.buffer[bucket] = m
	}
	rec := make([]byte, len(r))
	copy(rec, r)
	m[k] = rec
	return nil
}

// Retrieve looks up the record for (t, k), consulting the write buffer
// before the on-disk chunk. It reports false if no record exists.
func (db *DB) Retrieve(t int64, k digest.Hash256) ([]byte, bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.state != stateOpen {
		return nil, false, errors.ErrNotOpen
	}

	bucket := db.bucketOf(t)
	if m, ok := db.buffer[bucket]; ok {
		if rec, ok := m[k]; ok {
			out := make([]byte, len(rec))
			copy(out, rec)
			return out, true, nil
		}
	}

	if !db.onDisk[bucket] {
		return nil, false, nil
	}

	idx, err := db.loadIndex(bucket)
	if err != nil {
		return nil, false, err
	}
	return chunk.ReadRecord(idx, k)
}

func (db *DB) loadIndex(bucket uint64) (*chunk.Index, error) {
	if idx, ok := db.dirCache.Get(bucket); ok {
		return idx, nil
	}
	idx, err := chunk.ReadChunkIndex(db.path, bucket)
	if err != nil {
		return nil, err
	}
	db.dirCache.Add(bucket, idx)
	return idx, nil
}

// Visitor is invoked by WalkThrough for each distinct (key, record) in
// increasing key order within each bucket, buckets visited in increasing
// order. Returning false stops the walk.
type Visitor func(bucket uint64, k digest.Hash256, r []byte) bool

// WalkThrough visits every record whose bucket falls in
// [floor(tLo/width) .. floor(tHi/width)], in ascending bucket then key
// order, with buffered values overriding on-disk values for the same key.
func (db *DB) WalkThrough(tLo, tHi int64, visit Visitor) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.state != stateOpen {
		return errors.ErrNotOpen
	}

	lo, hi := db.bucketOf(tLo), db.bucketOf(tHi)
	if lo > hi {
		return nil
	}

	buckets := make([]uint64, 0)
	seen := make(map[uint64]bool)
	for b := range db.onDisk {
		if b >= lo && b <= hi {
			buckets = append(buckets, b)
			seen[b] = true
		}
	}
	for b := range db.buffer {
		if b >= lo && b <= hi && !seen[b] {
			buckets = append(buckets, b)
		}
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })

	for _, b := range buckets {
		stop, err := db.walkBucket(b, visit)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

func (db *DB) walkBucket(bucket uint64, visit Visitor) (stop bool, err error) {
	overrides := db.buffer[bucket]
	merged := make(map[digest.Hash256][]byte, len(overrides))

	if db.onDisk[bucket] {
		idx, err := db.loadIndex(bucket)
		if err != nil {
			return false, err
		}
		walkErr := chunk.WalkChunk(idx, func(k digest.Hash256, r []byte) bool {
			merged[k] = r
			return true
		})
		if walkErr != nil {
			return false, walkErr
		}
	}
	for k, r := range overrides {
		merged[k] = r
	}

	remaining := make([]digest.Hash256, 0, len(merged))
	for k := range merged {
		remaining = append(remaining, k)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Less(remaining[j]) })
	for _, k := range remaining {
		if !visit(bucket, k, merged[k]) {
			return true, nil
		}
	}
	return false, nil
}

// Flush materializes every buffered bucket into a new chunk, in ascending
// bucket order, merging any existing on-disk entries with the buffered
// overrides. A failure on one bucket leaves earlier buckets flushed and
// surfaces FlushFailed; later buckets remain buffered.
func (db *DB) Flush() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.state != stateOpen {
		return errors.ErrNotOpen
	}

	buckets := make([]uint64, 0, len(db.buffer))
	for b := range db.buffer {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i] < buckets[j] })

	for _, b := range buckets {
		if err := db.flushBucket(b); err != nil {
			return errors.FlushFailed(b, err)
		}
		delete(db.buffer, b)
		db.dirCache.Remove(b)
	}
	return nil
}

func (db *DB) flushBucket(bucket uint64) error {
	overrides := db.buffer[bucket]
	merged := make(map[digest.Hash256][]byte, len(overrides))

	if db.onDisk[bucket] {
		idx, err := chunk.ReadChunkIndex(db.path, bucket)
		if err != nil {
			return err
		}
		if err := chunk.WalkChunk(idx, func(k digest.Hash256, r []byte) bool {
			merged[k] = r
			return true
		}); err != nil {
			return err
		}
	}
	for k, r := range overrides {
		merged[k] = r
	}

	entries := make([]chunk.Entry, 0, len(merged))
	for k, r := range merged {
		entries = append(entries, chunk.Entry{Key: k, Record: r})
	}
	if err := chunk.WriteChunk(db.path, bucket, entries, db.compress); err != nil {
		return err
	}
	db.onDisk[bucket] = true
	return nil
}

// WipeDirectory deletes every chunk file under path without requiring a
// prior Initialize. It exists for the RECOVERY module kind, which may need
// to reset a database that failed to open cleanly before a DB instance is
// usable.
func WipeDirectory(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	ids, err := chunk.ListBucketIDs(path)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := chunk.DeleteChunk(path, id); err != nil {
			return err
		}
	}
	return chunk.RecoverStaleTemp(path)
}

// RemoveAll deletes every chunk file and clears the write buffer.
func (db *DB) RemoveAll() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.state != stateOpen {
		return errors.ErrNotOpen
	}

	for b := range db.onDisk {
		if err := chunk.DeleteChunk(db.path, b); err != nil {
			return err
		}
	}
	db.onDisk = make(map[uint64]bool)
	db.buffer = make(map[uint64]map[digest.Hash256][]byte)
	db.dirCache.Purge()
	return nil
}

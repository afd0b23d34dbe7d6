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

// Package chunk implements the immutable on-disk file format CTSDB stores
// one time bucket in: a header, a sorted key directory, and a payload of
// serialized records, with optional Snappy compression of each record
// and a CRC32 trailer over the whole file.
package chunk

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"os"
	"path/filepath"
	"sort"

	"github.com/metabasenet/metabasenet/common/codec"
	"github.com/metabasenet/metabasenet/common/digest"
	"github.com/metabasenet/metabasenet/common/encoding"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

const (
	magic         uint32 = 0x4b53_5443 // "CTSK" read little-endian
	formatVersion uint16 = 1

	flagCompressed uint16 = 1 << 0

	maxRecordLen = 1<<32 - 1
)

// Entry is one (key, record) pair as presented to WriteChunk. Entries need
// not be sorted or deduplicated; WriteChunk does both.
type Entry struct {
	Key    digest.Hash256
	Record []byte
}

// dirEntry is one directory slot: the key plus the byte range of its
// (possibly compressed) payload within the chunk's payload section.
type dirEntry struct {
	Key    digest.Hash256
	Offset uint32
	Length uint32
}

// Index is the parsed header and directory of a chunk, without the payload
// loaded. ReadRecord and WalkChunk both start from an Index.
type Index struct {
	BucketID   uint64
	Compressed bool
	Entries    []dirEntry
	path       string
	payloadOff int64
}

func chunkPath(dir string, bucketID uint64) string {
	return filepath.Join(dir, bucketFileName(bucketID))
}

func bucketFileName(bucketID uint64) string {
	return "bucket-" + itoa(bucketID) + ".chk"
}

func tmpFileName(bucketID uint64) string {
	return "bucket-" + itoa(bucketID) + ".tmp"
}

func itoa(v uint64) string {
	return string(appendUint(nil, v))
}

func appendUint(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[i:]...)
}

// WriteChunk sorts entries by key, deduplicates keeping the last occurrence,
// and atomically materializes the bucket's chunk file in dir: write to a
// ".tmp" file, fsync, rename over the final ".chk" path.
func WriteChunk(dir string, bucketID uint64, entries []Entry, compress bool) error {
	sorted := dedupSortEntries(entries)

	for _, e := range sorted {
		if len(e.Record) > maxRecordLen {
			return errors.ErrRecordTooLarge
		}
	}

	payload := encoding.GetBuffer()
	defer encoding.PutBuffer(payload)
	dirEntries := make([]dirEntry, 0, len(sorted))
	for _, e := range sorted {
		rec := e.Record
		if compress {
			rec = codec.Compress(rec)
		}
		if len(rec) > maxRecordLen {
			return errors.ErrRecordTooLarge
		}
		dirEntries = append(dirEntries, dirEntry{
			Key:    e.Key,
			Offset: uint32(payload.Len()),
			Length: uint32(len(rec)),
		})
		payload.Write(rec)
	}

	out := encoding.GetBuffer()
	defer encoding.PutBuffer(out)
	writeHeader(out, bucketID, uint32(len(dirEntries)), compress)
	writeDirectory(out, dirEntries)
	codec.PutUint32(out, uint32(payload.Len()))
	out.Write(payload.Bytes())

	sum := crc32.ChecksumIEEE(out.Bytes())
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], sum)
	out.Write(trailer[:])

	return atomicWrite(dir, bucketID, out.Bytes())
}

func dedupSortEntries(entries []Entry) []Entry {
	byKey := make(map[digest.Hash256][]byte, len(entries))
	order := make([]digest.Hash256, 0, len(entries))
	for _, e := range entries {
		if _, seen := byKey[e.Key]; !seen {
			order = append(order, e.Key)
		}
		byKey[e.Key] = e.Record
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Less(order[j]) })

	out := make([]Entry, 0, len(order))
	for _, k := range order {
		out = append(out, Entry{Key: k, Record: byKey[k]})
	}
	return out
}

func writeHeader(out *bytes.Buffer, bucketID uint64, count uint32, compress bool) {
	var flags uint16
	if compress {
		flags = flagCompressed
	}
	codec.PutUint32(out, magic)
	codec.PutUint16(out, formatVersion)
	codec.PutUint16(out, flags)
	codec.PutUint64(out, bucketID)
	codec.PutUint32(out, count)
}

func writeDirectory(out *bytes.Buffer, entries []dirEntry) {
	for _, e := range entries {
		out.Write(e.Key[:])
		codec.PutUint32(out, e.Offset)
		codec.PutUint32(out, e.Length)
	}
}

func atomicWrite(dir string, bucketID uint64, data []byte) error {
	tmpPath := filepath.Join(dir, tmpFileName(bucketID))
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "chunk: create temp file")
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "chunk: write temp file")
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "chunk: fsync temp file")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "chunk: close temp file")
	}
	if err := os.Rename(tmpPath, chunkPath(dir, bucketID)); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "chunk: rename temp file")
	}
	return nil
}

const dirEntrySize = 32 + 4 + 4 // key + offset + length

// ReadChunkIndex reads and validates the header and directory of the chunk
// for bucketID, without loading the payload.
func ReadChunkIndex(dir string, bucketID uint64) (*Index, error) {
	path := chunkPath(dir, bucketID)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "chunk: read file")
	}
	if len(raw) < 4 {
		return nil, errors.ErrCorruptedChunk
	}

	sum := binary.LittleEndian.Uint32(raw[len(raw)-4:])
	body := raw[:len(raw)-4]
	if crc32.ChecksumIEEE(body) != sum {
		return nil, errors.ErrCorruptedChunk
	}

	r := bytes.NewReader(body)
	gotMagic, err := codec.ReadUint32(r)
	if err != nil || gotMagic != magic {
		return nil, errors.ErrCorruptedChunk
	}
	version, err := codec.ReadUint16(r)
	if err != nil || version != formatVersion {
		return nil, errors.ErrCorruptedChunk
	}
	flags, err := codec.ReadUint16(r)
	if err != nil {
		return nil, errors.ErrCorruptedChunk
	}
	gotBucket, err := codec.ReadUint64(r)
	if err != nil || gotBucket != bucketID {
		return nil, errors.ErrCorruptedChunk
	}
	count, err := codec.ReadUint32(r)
	if err != nil {
		return nil, errors.ErrCorruptedChunk
	}

	entries := make([]dirEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		var key digest.Hash256
		if _, err := r.Read(key[:]); err != nil {
			return nil, errors.ErrCorruptedChunk
		}
		offset, err := codec.ReadUint32(r)
		if err != nil {
			return nil, errors.ErrCorruptedChunk
		}
		length, err := codec.ReadUint32(r)
		if err != nil {
			return nil, errors.ErrCorruptedChunk
		}
		entries = append(entries, dirEntry{Key: key, Offset: offset, Length: length})
	}

	if _, err := codec.ReadUint32(r); err != nil { // payload length, unused here
		return nil, errors.ErrCorruptedChunk
	}

	payloadOff := int64(len(body)) - int64(r.Len())

	return &Index{
		BucketID:   bucketID,
		Compressed: flags&flagCompressed != 0,
		Entries:    entries,
		path:       path,
		payloadOff: payloadOff,
	}, nil
}

// ReadRecord binary-searches idx's directory for key and returns the
// decompressed, raw serialized record bytes, or (nil, false) if absent.
func ReadRecord(idx *Index, key digest.Hash256) ([]byte, bool, error) {
	i := sort.Search(len(idx.Entries), func(i int) bool {
		return !idx.Entries[i].Key.Less(key)
	})
	if i == len(idx.Entries) || idx.Entries[i].Key != key {
		return nil, false, nil
	}
	e := idx.Entries[i]

	f, err := os.Open(idx.path)
	if err != nil {
		return nil, false, errors.Wrap(err, "chunk: open file")
	}
	defer f.Close()

	raw := encoding.GetByteSlice(int(e.Length))
	defer encoding.PutByteSlice(raw)
	if _, err := f.ReadAt(raw, idx.payloadOff+int64(e.Offset)); err != nil {
		return nil, false, errors.Wrap(err, "chunk: read payload")
	}

	if idx.Compressed {
		rec, err := codec.Uncompress(raw)
		if err != nil {
			return nil, false, errors.ErrCorruptedChunk
		}
		return rec, true, nil
	}

	rec := make([]byte, len(raw))
	copy(rec, raw)
	return rec, true, nil
}

// Visitor is called for each (key, record) pair WalkChunk visits, in
// increasing key order. Returning false stops the walk early.
type Visitor func(key digest.Hash256, record []byte) bool

// WalkChunk iterates idx's entries in key order, invoking visit with each
// decompressed record.
func WalkChunk(idx *Index, visit Visitor) error {
	if len(idx.Entries) == 0 {
		return nil
	}
	f, err := os.Open(idx.path)
	if err != nil {
		return errors.Wrap(err, "chunk: open file")
	}
	defer f.Close()

	for _, e := range idx.Entries {
		raw := encoding.GetByteSlice(int(e.Length))
		if _, err := f.ReadAt(raw, idx.payloadOff+int64(e.Offset)); err != nil {
			encoding.PutByteSlice(raw)
			return errors.Wrap(err, "chunk: read payload")
		}

		var rec []byte
		if idx.Compressed {
			var err error
			rec, err = codec.Uncompress(raw)
			encoding.PutByteSlice(raw)
			if err != nil {
				return errors.ErrCorruptedChunk
			}
		} else {
			rec = make([]byte, len(raw))
			copy(rec, raw)
			encoding.PutByteSlice(raw)
		}

		if !visit(e.Key, rec) {
			break
		}
	}
	return nil
}

// DeleteChunk removes the chunk file for bucketID. Idempotent: a missing
// file is not an error.
func DeleteChunk(dir string, bucketID uint64) error {
	err := os.Remove(chunkPath(dir, bucketID))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "chunk: delete file")
	}
	return nil
}

// Exists reports whether a chunk file for bucketID is present in dir.
func Exists(dir string, bucketID uint64) bool {
	_, err := os.Stat(chunkPath(dir, bucketID))
	return err == nil
}

// RecoverStaleTemp removes any leftover ".tmp" files in dir, the residue of
// a write that was interrupted before the rename to ".chk". Called once by
// Initialize before the bucket index is built.
func RecoverStaleTemp(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "chunk: scan directory")
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".tmp" {
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return errors.Wrap(err, "chunk: remove stale temp file")
			}
		}
	}
	return nil
}

// ListBucketIDs scans dir for "bucket-<id>.chk" files and returns their IDs.
func ListBucketIDs(dir string) ([]uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "chunk: scan directory")
	}
	var ids []uint64
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".chk" {
			continue
		}
		id, ok := parseBucketFileName(name)
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func parseBucketFileName(name string) (uint64, bool) {
	const prefix, suffix = "bucket-", ".chk"
	if len(name) <= len(prefix)+len(suffix) {
		return 0, false
	}
	if name[:len(prefix)] != prefix || name[len(name)-len(suffix):] != suffix {
		return 0, false
	}
	digits := name[len(prefix) : len(name)-len(suffix)]
	var id uint64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
		id = id*10 + uint64(c-'0')
	}
	return id, true
}

// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package ctsdb

import (
	"testing"

	"github.com/metabasenet/metabasenet/common/digest"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

func k(b byte) digest.Hash256 { return digest.BytesToHash256([]byte{b}) }

func openDB(t *testing.T, compress bool) *DB {
	t.Helper()
	db := New(t.TempDir(), 3600, compress)
	if err := db.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() { _ = db.Deinitialize() })
	return db
}

func TestInitializeTwiceFails(t *testing.T) {
	db := New(t.TempDir(), 3600, false)
	if err := db.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer db.Deinitialize()
	if err := db.Initialize(); !errors.Is(err, errors.ErrAlreadyOpen) {
		t.Fatalf("expected ErrAlreadyOpen, got %v", err)
	}
}

func TestOperationsRequireOpen(t *testing.T) {
	db := New(t.TempDir(), 3600, false)
	if err := db.Update(0, k(1), []byte("x")); !errors.Is(err, errors.ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen from Update, got %v", err)
	}
	if _, _, err := db.Retrieve(0, k(1)); !errors.Is(err, errors.ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen from Retrieve, got %v", err)
	}
	if err := db.Flush(); !errors.Is(err, errors.ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen from Flush, got %v", err)
	}
	if err := db.Deinitialize(); !errors.Is(err, errors.ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen from Deinitialize, got %v", err)
	}
}

func TestUpdateRetrieveBeforeFlush(t *testing.T) {
	db := openDB(t, false)
	if err := db.Update(100, k(1), []byte("hello")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rec, ok, err := db.Retrieve(100, k(1))
	if err != nil || !ok {
		t.Fatalf("Retrieve: ok=%v err=%v", ok, err)
	}
	if string(rec) != "hello" {
		t.Fatalf("got %q", rec)
	}
}

func TestLastWriteWins(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(1), []byte("old"))
	_ = db.Update(100, k(1), []byte("new"))
	rec, _, _ := db.Retrieve(100, k(1))
	if string(rec) != "new" {
		t.Fatalf("expected last write to win, got %q", rec)
	}
}

func TestRetrieveMissingReturnsFalse(t *testing.T) {
	db := openDB(t, false)
	_, ok, err := db.Retrieve(0, k(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected missing key to report false")
	}
}

func TestFlushPersistsAndClearsBuffer(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(1), []byte("hello"))
	if err := db.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(db.buffer[db.bucketOf(100)]) != 0 {
		t.Fatal("expected buffer to be cleared after flush")
	}
	rec, ok, err := db.Retrieve(100, k(1))
	if err != nil || !ok || string(rec) != "hello" {
		t.Fatalf("expected record to survive on disk after flush: ok=%v err=%v rec=%q", ok, err, rec)
	}
}

func TestFlushIdempotent(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(1), []byte("hello"))
	if err := db.Flush(); err != nil {
		t.Fatalf("first Flush: %v", err)
	}
	if err := db.Flush(); err != nil {
		t.Fatalf("second Flush (no-op) should succeed: %v", err)
	}
	rec, ok, _ := db.Retrieve(100, k(1))
	if !ok || string(rec) != "hello" {
		t.Fatal("expected record to remain after idempotent flush")
	}
}

func TestFlushMergesOverridesWithOnDisk(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(1), []byte("a"))
	_ = db.Update(100, k(2), []byte("b"))
	if err := db.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	_ = db.Update(100, k(2), []byte("b2"))
	_ = db.Update(100, k(3), []byte("c"))
	if err := db.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}

	var got []string
	_ = db.WalkThrough(0, 200, func(bucket uint64, key digest.Hash256, r []byte) bool {
		got = append(got, string(r))
		return true
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 records after merge, got %v", got)
	}
}

func TestWalkThroughOrderAndOverride(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(3), []byte("c"))
	_ = db.Update(100, k(1), []byte("a"))
	if err := db.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	_ = db.Update(100, k(2), []byte("b"))
	_ = db.Update(100, k(1), []byte("a-override"))

	var seen []string
	err := db.WalkThrough(0, 200, func(bucket uint64, key digest.Hash256, r []byte) bool {
		seen = append(seen, string(r))
		return true
	})
	if err != nil {
		t.Fatalf("WalkThrough: %v", err)
	}
	if len(seen) != 3 || seen[0] != "a-override" || seen[1] != "b" || seen[2] != "c" {
		t.Fatalf("expected ordered [a-override b c], got %v", seen)
	}
}

func TestWalkThroughEarlyStop(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(1), []byte("a"))
	_ = db.Update(100, k(2), []byte("b"))
	_ = db.Update(100, k(3), []byte("c"))

	var count int
	_ = db.WalkThrough(0, 200, func(bucket uint64, key digest.Hash256, r []byte) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("expected walk to stop after 1 visit, got %d", count)
	}
}

func TestWalkThroughAcrossBuckets(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(0, k(1), []byte("bucket0"))
	_ = db.Update(3600, k(1), []byte("bucket1"))
	if err := db.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	var buckets []uint64
	_ = db.WalkThrough(0, 3600, func(bucket uint64, key digest.Hash256, r []byte) bool {
		buckets = append(buckets, bucket)
		return true
	})
	if len(buckets) != 2 || buckets[0] > buckets[1] {
		t.Fatalf("expected ascending bucket order, got %v", buckets)
	}
}

func TestRemoveAllClearsEverything(t *testing.T) {
	db := openDB(t, false)
	_ = db.Update(100, k(1), []byte("a"))
	if err := db.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := db.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	_, ok, _ := db.Retrieve(100, k(1))
	if ok {
		t.Fatal("expected no records after RemoveAll")
	}
}

func TestDeinitializeDoesNotFlush(t *testing.T) {
	dir := t.TempDir()
	db := New(dir, 3600, false)
	if err := db.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	_ = db.Update(100, k(1), []byte("unflushed"))
	if err := db.Deinitialize(); err != nil {
		t.Fatalf("Deinitialize: %v", err)
	}

	db2 := New(dir, 3600, false)
	if err := db2.Initialize(); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	defer db2.Deinitialize()
	_, ok, _ := db2.Retrieve(100, k(1))
	if ok {
		t.Fatal("expected unflushed data to be discarded on Deinitialize")
	}
}

func TestLockContendedOnSecondInitialize(t *testing.T) {
	dir := t.TempDir()
	db1 := New(dir, 3600, false)
	if err := db1.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer db1.Deinitialize()

	db2 := New(dir, 3600, false)
	if err := db2.Initialize(); !errors.Is(err, errors.ErrLockContended) {
		t.Fatalf("expected ErrLockContended, got %v", err)
	}
}

func TestCompressedRoundTripThroughFlush(t *testing.T) {
	db := openDB(t, true)
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 17)
	}
	_ = db.Update(100, k(1), payload)
	if err := db.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	rec, ok, err := db.Retrieve(100, k(1))
	if err != nil || !ok {
		t.Fatalf("Retrieve: ok=%v err=%v", ok, err)
	}
	if len(rec) != len(payload) {
		t.Fatalf("length mismatch: got %d want %d", len(rec), len(payload))
	}
	for i := range payload {
		if rec[i] != payload[i] {
			t.Fatalf("payload mismatch at %d", i)
		}
	}
}

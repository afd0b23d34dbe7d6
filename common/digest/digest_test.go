// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package digest

import "testing"

func TestHash256Compare(t *testing.T) {
	a := BytesToHash256([]byte{0x01})
	b := BytesToHash256([]byte{0x02})
	if !a.Less(b) {
		t.Fatal("expected a < b")
	}
	if b.Less(a) {
		t.Fatal("expected b not < a")
	}
	if a.Compare(a) != 0 {
		t.Fatal("expected equal hashes to compare 0")
	}
}

func TestBytesToHash256Padding(t *testing.T) {
	h := BytesToHash256([]byte{0xff})
	for i := 0; i < len(h)-1; i++ {
		if h[i] != 0 {
			t.Fatalf("expected zero padding at index %d, got %x", i, h[i])
		}
	}
	if h[len(h)-1] != 0xff {
		t.Fatalf("expected last byte 0xff, got %x", h[len(h)-1])
	}
}

func TestBytesToHash256Truncation(t *testing.T) {
	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i)
	}
	h := BytesToHash256(long)
	want := long[len(long)-32:]
	for i := range h {
		if h[i] != want[i] {
			t.Fatalf("truncation mismatch at %d: got %x want %x", i, h[i], want[i])
		}
	}
}

func TestSwapRoundTrip(t *testing.T) {
	if Swap16(Swap16(0x1234)) != 0x1234 {
		t.Fatal("Swap16 not involutive")
	}
	if Swap32(Swap32(0x01020304)) != 0x01020304 {
		t.Fatal("Swap32 not involutive")
	}
	if Swap64(Swap64(0x0102030405060708)) != 0x0102030405060708 {
		t.Fatal("Swap64 not involutive")
	}
}

func TestSwapValues(t *testing.T) {
	if got := Swap16(0x1234); got != 0x3412 {
		t.Fatalf("Swap16(0x1234) = %x", got)
	}
	if got := Swap32(0x01020304); got != 0x04030201 {
		t.Fatalf("Swap32(0x01020304) = %x", got)
	}
}

func TestHash256String(t *testing.T) {
	h := BytesToHash256([]byte{0xde, 0xad})
	s := h.String()
	if len(s) != 2+64 {
		t.Fatalf("unexpected string length %d: %s", len(s), s)
	}
	if s[:2] != "0x" {
		t.Fatalf("expected 0x prefix, got %s", s[:2])
	}
}

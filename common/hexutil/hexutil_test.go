// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package hexutil

import "testing"

func TestEncode(t *testing.T) {
	if got := Encode([]byte{0xde, 0xad, 0xbe, 0xef}); got != "0xdeadbeef" {
		t.Fatalf("Encode = %q", got)
	}
	if got := Encode(nil); got != "0x" {
		t.Fatalf("Encode(nil) = %q", got)
	}
}

func TestDecodeTolerant(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0xdeadbeef", "deadbeef"},
		{"deadbeef", "deadbeef"},
		{"0xDEAD", "dead"},
		{"0xabc", "0abc"},
		{"0x12zz", "12"},
		{"0x", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := Encode(Decode(c.in))[2:]
		if got != c.want {
			t.Errorf("Decode(%q) hex = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeStrict(t *testing.T) {
	if _, err := DecodeStrict("deadbeef"); err == nil {
		t.Fatal("expected error for missing 0x prefix")
	}
	if _, err := DecodeStrict("0xabc"); err == nil {
		t.Fatal("expected error for odd length")
	}
	if _, err := DecodeStrict("0x12zz"); err == nil {
		t.Fatal("expected error for invalid hex character")
	}
	b, err := DecodeStrict("0xdeadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Encode(b) != "0xdeadbeef" {
		t.Fatalf("roundtrip failed: %x", b)
	}
}

func TestMustDecodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustDecode("nothex")
}

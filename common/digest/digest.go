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

// Package digest defines the fixed-width big-endian hash types CTSDB keys
// are built from, plus the byte-order helpers the wire format needs.
package digest

import (
	"bytes"
	"encoding/hex"
)

// Hash224 is a 224-bit big-endian digest.
type Hash224 [28]byte

// Hash256 is a 256-bit big-endian digest; this is the width CTSDB keys use.
type Hash256 [32]byte

// Bytes returns h as a byte slice.
func (h Hash256) Bytes() []byte { return h[:] }

// String returns the 0x-prefixed hex encoding of h.
func (h Hash256) String() string { return "0x" + hex.EncodeToString(h[:]) }

// Compare orders h and other by unsigned lexicographic byte comparison, the
// ordering CTSDB chunk directories and WalkThrough rely on.
func (h Hash256) Compare(other Hash256) int {
	return bytes.Compare(h[:], other[:])
}

// Less reports whether h sorts before other.
func (h Hash256) Less(other Hash256) bool {
	return h.Compare(other) < 0
}

// BytesToHash256 left-truncates or zero-pads b into a Hash256.
func BytesToHash256(b []byte) Hash256 {
	var h Hash256
	if len(b) > len(h) {
		b = b[len(b)-len(h):]
	}
	copy(h[len(h)-len(b):], b)
	return h
}

// Bytes returns h as a byte slice.
func (h Hash224) Bytes() []byte { return h[:] }

// String returns the 0x-prefixed hex encoding of h.
func (h Hash224) String() string { return "0x" + hex.EncodeToString(h[:]) }

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(x uint16) uint16 {
	return x<<8 | x>>8
}

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(x uint32) uint32 {
	return x<<24 | (x&0xff00)<<8 | (x&0xff0000)>>8 | x>>24
}

// Swap64 reverses the byte order of a 64-bit value.
func Swap64(x uint64) uint64 {
	return x<<56 |
		(x&0xff00)<<40 |
		(x&0xff0000)<<24 |
		(x&0xff000000)<<8 |
		(x&0xff00000000)>>8 |
		(x&0xff0000000000)>>24 |
		(x&0xff000000000000)>>40 |
		x>>56
}

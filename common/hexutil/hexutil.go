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

// Package hexutil encodes and decodes the 0x-prefixed hex strings used in
// config files, CLI flags and log output throughout the node.
package hexutil

import (
	"encoding/hex"
	"strings"

	"github.com/metabasenet/metabasenet/pkg/errors"
)

const prefix = "0x"

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

// Encode returns the 0x-prefixed hex encoding of b.
func Encode(b []byte) string {
	return prefix + hex.EncodeToString(b)
}

// Decode tolerantly decodes a hex string. The leading "0x" is optional;
// decoding stops at the first non-hex rune and returns whatever bytes were
// decoded up to that point. An odd number of trailing hex digits is decoded
// by pairing from the right, zero-padding the leftmost nibble.
func Decode(s string) []byte {
	s = strings.TrimPrefix(s, prefix)

	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	s = s[:end]

	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		// unreachable: s is built from verified hex digits only.
		return nil
	}
	return b
}

// DecodeStrict decodes a 0x-prefixed hex string, rejecting any input that is
// not exactly "0x" followed by an even number of hex digits.
func DecodeStrict(s string) ([]byte, error) {
	if !strings.HasPrefix(s, prefix) {
		return nil, errors.Errorf("hexutil: missing 0x prefix in %q", s)
	}
	s = s[len(prefix):]
	if len(s)%2 != 0 {
		return nil, errors.Errorf("hexutil: odd length hex string %q", s)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, errors.Errorf("hexutil: invalid hex character %q at position %d", s[i], i)
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "hexutil: decode")
	}
	return b, nil
}

// MustDecode is like Decode but panics if s cannot be decoded strictly.
// Intended for use with compile-time constants only.
func MustDecode(s string) []byte {
	b, err := DecodeStrict(s)
	if err != nil {
		panic(err)
	}
	return b
}

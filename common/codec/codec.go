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

// Package codec implements the node's on-disk byte format: fixed-width
// little-endian integers, unsigned-varint length prefixes, and a Record
// contract every chunk-store payload satisfies.
package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	varint "github.com/multiformats/go-varint"

	"github.com/metabasenet/metabasenet/pkg/errors"
)

// Record is implemented by any value the chunk store can persist. Serialize
// and Deserialize must round-trip: deserializing what was just serialized
// yields an equal value.
type Record interface {
	Serialize(out *bytes.Buffer) error
	Deserialize(in *bytes.Reader) error
}

// PutUint16 appends x to out, little-endian.
func PutUint16(out *bytes.Buffer, x uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], x)
	out.Write(b[:])
}

// PutUint32 appends x to out, little-endian.
func PutUint32(out *bytes.Buffer, x uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], x)
	out.Write(b[:])
}

// PutUint64 appends x to out, little-endian.
func PutUint64(out *bytes.Buffer, x uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	out.Write(b[:])
}

// ReadUint16 consumes 2 bytes from in, little-endian.
func ReadUint16(in *bytes.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(in, b[:]); err != nil {
		return 0, errors.Wrap(err, "codec: read uint16")
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadUint32 consumes 4 bytes from in, little-endian.
func ReadUint32(in *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(in, b[:]); err != nil {
		return 0, errors.Wrap(err, "codec: read uint32")
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadUint64 consumes 8 bytes from in, little-endian.
func ReadUint64(in *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(in, b[:]); err != nil {
		return 0, errors.Wrap(err, "codec: read uint64")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// PutBytes writes an unsigned-varint length prefix followed by b.
func PutBytes(out *bytes.Buffer, b []byte) {
	out.Write(varint.ToUvarint(uint64(len(b))))
	out.Write(b)
}

// ReadBytes reads a varint-prefixed byte buffer written by PutBytes.
func ReadBytes(in *bytes.Reader) ([]byte, error) {
	n, err := varint.ReadUvarint(in)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCorruptedInput, err.Error())
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(in, b); err != nil {
		return nil, errors.Wrap(errors.ErrCorruptedInput, err.Error())
	}
	return b, nil
}

// Encode serializes r into a freshly allocated buffer.
func Encode(r Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes b into r.
func Decode(b []byte, r Record) error {
	return r.Deserialize(bytes.NewReader(b))
}

// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package codec

import (
	"bytes"
	"testing"

	"github.com/metabasenet/metabasenet/pkg/errors"
)

type sampleRecord struct {
	ID    uint64
	Flags uint16
	Data  []byte
}

func (r *sampleRecord) Serialize(out *bytes.Buffer) error {
	PutUint64(out, r.ID)
	PutUint16(out, r.Flags)
	PutBytes(out, r.Data)
	return nil
}

func (r *sampleRecord) Deserialize(in *bytes.Reader) error {
	id, err := ReadUint64(in)
	if err != nil {
		return err
	}
	flags, err := ReadUint16(in)
	if err != nil {
		return err
	}
	data, err := ReadBytes(in)
	if err != nil {
		return err
	}
	r.ID, r.Flags, r.Data = id, flags, data
	return nil
}

func TestRecordRoundTrip(t *testing.T) {
	want := &sampleRecord{ID: 42, Flags: 7, Data: []byte("hello world")}
	b, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := &sampleRecord{}
	if err := Decode(b, got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ID != want.ID || got.Flags != want.Flags || !bytes.Equal(got.Data, want.Data) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestRecordRoundTripEmptyData(t *testing.T) {
	want := &sampleRecord{ID: 1, Flags: 0, Data: nil}
	b, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := &sampleRecord{}
	if err := Decode(b, got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got.Data) != 0 {
		t.Fatalf("expected empty data, got %v", got.Data)
	}
}

func TestFixedWidthLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	PutUint32(&buf, 0x01020304)
	b := buf.Bytes()
	if b[0] != 0x04 || b[3] != 0x01 {
		t.Fatalf("expected little-endian layout, got %x", b)
	}
}

func TestCompressUncompressRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 100)
	compressed := Compress(src)
	out, err := Uncompress(compressed)
	if err != nil {
		t.Fatalf("Uncompress: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("round trip mismatch")
	}
}

func TestUncompressEmptyInput(t *testing.T) {
	out, err := Uncompress(Compress(nil))
	if err != nil {
		t.Fatalf("Uncompress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}

func TestUncompressCorruptedInput(t *testing.T) {
	_, err := Uncompress([]byte{0xff, 0xff, 0xff, 0xff, 0xff})
	if err == nil {
		t.Fatal("expected error for malformed frame")
	}
	if !errors.Is(err, errors.ErrCorruptedInput) {
		t.Fatalf("expected ErrCorruptedInput in chain, got %v", err)
	}
}

func TestReadBytesCorruptedInput(t *testing.T) {
	in := bytes.NewReader([]byte{0x05, 0x01, 0x02}) // claims 5 bytes, only has 2
	_, err := ReadBytes(in)
	if err == nil {
		t.Fatal("expected error for truncated buffer")
	}
	if !errors.Is(err, errors.ErrCorruptedInput) {
		t.Fatalf("expected ErrCorruptedInput in chain, got %v", err)
	}
}

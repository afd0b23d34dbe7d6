// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package errors

import (
	"errors"
	"fmt"
	"testing"
)

// =============================================================================
// 错误定义测试
// =============================================================================

// TestSentinelErrors 测试哨兵错误的文本
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{ErrConfigInvalid, "configuration invalid"},
		{ErrDirUnavailable, "data directory unavailable"},
		{ErrLockContended, "data directory is locked by another instance"},
		{ErrNotOpen, "ctsdb: not open"},
		{ErrAlreadyOpen, "ctsdb: already open"},
		{ErrCorruptedChunk, "ctsdb: corrupted chunk"},
		{ErrCorruptedInput, "codec: corrupted input"},
		{ErrRecordTooLarge, "ctsdb: record too large"},
		{ErrDuplicateModule, "node: duplicate module name"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expected {
			t.Errorf("Expected error message '%s', got '%s'", tt.expected, tt.err.Error())
		}
	}
	t.Log("✓ sentinel errors are correctly defined")
}

func TestFlushFailedUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := FlushFailed(7, cause)

	if !errors.Is(err, cause) {
		t.Fatal("FlushFailed should wrap its cause so errors.Is matches")
	}

	var fe *FlushError
	if !errors.As(err, &fe) {
		t.Fatal("FlushFailed should be an *FlushError")
	}
	if fe.Bucket != 7 {
		t.Errorf("Bucket = %d, want 7", fe.Bucket)
	}

	want := fmt.Sprintf("ctsdb: flush failed at bucket 7: %v", cause)
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestModuleInitFailedUnwraps(t *testing.T) {
	cause := errors.New("port already in use")
	err := ModuleInitFailed("HTTPSERVER", cause)

	if !errors.Is(err, cause) {
		t.Fatal("ModuleInitFailed should wrap its cause so errors.Is matches")
	}

	var mie *ModuleInitError
	if !errors.As(err, &mie) {
		t.Fatal("ModuleInitFailed should be a *ModuleInitError")
	}
	if mie.Name != "HTTPSERVER" {
		t.Errorf("Name = %q, want HTTPSERVER", mie.Name)
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil, ...) should return nil")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, "opening chunk")

	if !errors.Is(wrapped, cause) {
		t.Fatal("Wrap should preserve the cause for errors.Is")
	}
	if wrapped.Error() != "opening chunk: boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestIsAs(t *testing.T) {
	if !Is(FlushFailed(1, ErrCorruptedChunk), ErrCorruptedChunk) {
		t.Error("Is should delegate to errors.Is")
	}

	var fe *FlushError
	if !As(FlushFailed(2, ErrCorruptedChunk), &fe) {
		t.Error("As should delegate to errors.As")
	}
}

func TestNewErrorf(t *testing.T) {
	if New("x").Error() != "x" {
		t.Error("New should format as given text")
	}
	if Errorf("x=%d", 5).Error() != "x=5" {
		t.Error("Errorf should format like fmt.Errorf")
	}
}

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

// Package errors defines the error kinds shared by the entry sequencer, the
// module container, and the CTSDB engine. This is a centralized location for
// error definitions so callers can match on a sentinel with errors.Is rather
// than on an error string.
package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// =====================
// Entry sequencer errors
// =====================

var (
	// ErrConfigInvalid names the class of a parsed configuration that fails
	// validation. conf's Validate methods report their own errors and do not
	// return this value.
	ErrConfigInvalid = errors.New("configuration invalid")

	// ErrDirUnavailable names the class of a data directory that cannot be
	// created, is not writable, or does not have the required free space. The
	// entry sequencer's directory check reports its own errors and does not
	// return this value.
	ErrDirUnavailable = errors.New("data directory unavailable")

	// ErrLockContended is returned by the LOCK module when another instance
	// already holds the exclusive lock on the data directory.
	ErrLockContended = errors.New("data directory is locked by another instance")
)

// =====================
// CTSDB errors
// =====================

var (
	// ErrNotOpen is returned by every CTSDB operation except Initialize when
	// the database has not been opened, or has already been closed.
	ErrNotOpen = errors.New("ctsdb: not open")

	// ErrAlreadyOpen is returned by Initialize when the database is already open.
	ErrAlreadyOpen = errors.New("ctsdb: already open")

	// ErrCorruptedChunk is returned when a chunk's magic, version, or crc32
	// trailer does not match. The bucket is treated as absent by the caller.
	ErrCorruptedChunk = errors.New("ctsdb: corrupted chunk")

	// ErrCorruptedInput is returned by codec.Uncompress when the input is not
	// a well-formed compressed frame.
	ErrCorruptedInput = errors.New("codec: corrupted input")

	// ErrRecordTooLarge is returned by the chunk store when a serialized
	// record exceeds 2^32-1 bytes. The caller's write buffer retains the write.
	ErrRecordTooLarge = errors.New("ctsdb: record too large")
)

// =====================
// Module container errors
// =====================

var (
	// ErrDuplicateModule names the rejection of a module whose name is
	// already attached. Container.Attach reports that case by returning
	// false and does not return this value.
	ErrDuplicateModule = errors.New("node: duplicate module name")
)

// FlushError reports that Flush stopped partway through, at the given
// bucket, for the given cause. Earlier buckets (in ascending order) were
// already flushed; this bucket and all later ones remain buffered.
type FlushError struct {
	Bucket uint64
	Cause  error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("ctsdb: flush failed at bucket %d: %v", e.Bucket, e.Cause)
}

func (e *FlushError) Unwrap() error { return e.Cause }

// FlushFailed constructs a FlushError.
func FlushFailed(bucket uint64, cause error) error {
	return &FlushError{Bucket: bucket, Cause: cause}
}

// ModuleInitError reports that the named module's Initialize returned an
// error during Container.Run, which then unwound every previously
// initialized module in reverse attach order.
type ModuleInitError struct {
	Name  string
	Cause error
}

func (e *ModuleInitError) Error() string {
	return fmt.Sprintf("node: module %q failed to initialize: %v", e.Name, e.Cause)
}

func (e *ModuleInitError) Unwrap() error { return e.Cause }

// ModuleInitFailed constructs a ModuleInitError.
func ModuleInitFailed(name string, cause error) error {
	return &ModuleInitError{Name: name, Cause: cause}
}

// =====================
// Helper Functions
// =====================

// Wrap wraps an error with additional context, attaching a stack trace at
// the call site.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message, attaching a stack trace
// at the call site.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

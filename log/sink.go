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

package log

// Sink is the narrow logging surface core packages (the module container,
// CTSDB) accept instead of calling the package-level logger directly, so
// they stay testable without a global logging side effect. Logger already
// satisfies Sink; pass Default() in production and a recording fake in
// tests.
type Sink interface {
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

// Default returns the package's root logger as a Sink.
func Default() Sink {
	return Root()
}

// discardSink implements Sink by dropping everything. Used as the
// container's fallback when node.New is given a nil sink.
type discardSink struct{}

func (discardSink) Trace(string, ...interface{}) {}
func (discardSink) Debug(string, ...interface{}) {}
func (discardSink) Info(string, ...interface{})  {}
func (discardSink) Warn(string, ...interface{})  {}
func (discardSink) Error(string, ...interface{}) {}
func (discardSink) Crit(string, ...interface{})  {}

// Discard is a Sink that drops every message.
var Discard Sink = discardSink{}

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

// Package kinds provides one concrete, lifecycle-implementing module per
// kind the mode registry names, so the container and mode registry are
// exercised end to end by real instances rather than mocks. None of these
// implement blockchain business logic; that is out of scope.
package kinds

import (
	"sync"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
)

// Base implements node.Module with named no-op lifecycle methods and a
// transition log, embeddable by any inert kind that just needs to exist,
// be found by name, and record that it passed through each phase.
type Base struct {
	name string
	sink log.Sink

	mu          sync.Mutex
	transitions []string
}

// NewBase constructs a Base named name, logging through sink (log.Discard
// if nil).
func NewBase(name string, sink log.Sink) Base {
	if sink == nil {
		sink = log.Discard
	}
	return Base{name: name, sink: sink}
}

func (b *Base) Name() string { return b.name }

func (b *Base) record(phase string) {
	b.mu.Lock()
	b.transitions = append(b.transitions, phase)
	b.mu.Unlock()
	b.sink.Debug("module lifecycle transition", "module", b.name, "phase", phase)
}

// Transitions returns the phases recorded so far, in order. Exposed for
// tests that assert on lifecycle ordering.
func (b *Base) Transitions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.transitions))
	copy(out, b.transitions)
	return out
}

func (b *Base) Initialize(c *node.Container) error { b.record("initialize"); return nil }
func (b *Base) Run(c *node.Container) error         { b.record("run"); return nil }
func (b *Base) Halt(c *node.Container) error        { b.record("halt"); return nil }
func (b *Base) Deinitialize(c *node.Container) error { b.record("deinitialize"); return nil }

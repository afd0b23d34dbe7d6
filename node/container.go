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

package node

import (
	"sync"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

// Phase is the container's monotonically advancing lifecycle state.
type Phase int

const (
	PhaseConstructed Phase = iota
	PhaseInitialized
	PhaseRunning
	PhaseHalted
	PhaseDeinitialized
)

// Container holds named module instances in attach order and drives their
// shared lifecycle. Construct it with New; the zero value has no module
// map, event bus or sink and is not usable.
type Container struct {
	mu      sync.RWMutex
	byName  map[string]Module
	ordered []Module
	phase   Phase

	bus *EventBus
	log log.Sink
}

// New constructs an empty container with its event bus ready, logging
// through sink. A nil sink discards log output, which keeps the zero-arg
// construction pattern used in tests side-effect free.
func New(sink log.Sink) *Container {
	if sink == nil {
		sink = log.Discard
	}
	return &Container{
		byName: make(map[string]Module),
		bus:    newEventBus(),
		log:    sink,
	}
}

// Bus returns the container's event bus. Modules with naturally cyclic
// relationships depend on this instead of on each other directly.
func (c *Container) Bus() *EventBus {
	return c.bus
}

// Attach registers m under its declared name, in call order. It rejects a
// duplicate name and returns false; the caller owns discarding the instance.
func (c *Container) Attach(m Module) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := m.Name()
	if _, exists := c.byName[name]; exists {
		return false
	}
	c.byName[name] = m
	c.ordered = append(c.ordered, m)
	return true
}

// GetObject looks up the module registered under name. The returned
// instance is borrowed; the container retains ownership until Exit.
func (c *Container) GetObject(name string) (Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.byName[name]
	return m, ok
}

// Capability looks up the module registered under name and type-asserts it
// to T, the capability interface the caller needs. This replaces ad hoc
// downcasting: a caller that only needs e.g. Wallet never imports the
// concrete module package.
func Capability[T any](c *Container, name string) (T, bool) {
	var zero T
	m, ok := c.GetObject(name)
	if !ok {
		return zero, false
	}
	t, ok := m.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Run initializes every attached module in attach order. If any Initialize
// fails, already-initialized modules are Halted and Deinitialized in
// reverse order and Run returns the failure wrapped as ModuleInitError. On
// success, Run then calls Run on each module in attach order.
func (c *Container) Run() error {
	c.mu.Lock()
	modules := append([]Module(nil), c.ordered...)
	c.mu.Unlock()

	initialized := make([]Module, 0, len(modules))
	for _, m := range modules {
		if err := m.Initialize(c); err != nil {
			c.unwind(initialized)
			return errors.ModuleInitFailed(m.Name(), err)
		}
		initialized = append(initialized, m)
	}

	c.setPhase(PhaseInitialized)

	for _, m := range modules {
		if err := m.Run(c); err != nil {
			c.unwind(initialized)
			return errors.ModuleInitFailed(m.Name(), err)
		}
	}

	c.setPhase(PhaseRunning)
	return nil
}

// unwind halts and deinitializes modules in reverse order, logging but not
// propagating individual failures.
func (c *Container) unwind(modules []Module) {
	for i := len(modules) - 1; i >= 0; i-- {
		m := modules[i]
		if err := m.Halt(c); err != nil {
			c.log.Error("module halt failed during unwind", "module", m.Name(), "err", err)
		}
		if err := m.Deinitialize(c); err != nil {
			c.log.Error("module deinitialize failed during unwind", "module", m.Name(), "err", err)
		}
	}
}

// Halt calls Halt on every attached module in attach order, logging but not
// propagating individual failures.
func (c *Container) Halt() {
	c.mu.RLock()
	modules := append([]Module(nil), c.ordered...)
	c.mu.RUnlock()

	for _, m := range modules {
		if err := m.Halt(c); err != nil {
			c.log.Error("module halt failed", "module", m.Name(), "err", err)
		}
	}
	c.setPhase(PhaseHalted)
}

// Exit calls Halt then Deinitialize on every attached module in reverse
// attach order, swallowing individual failures but logging them.
func (c *Container) Exit() {
	c.mu.RLock()
	modules := append([]Module(nil), c.ordered...)
	c.mu.RUnlock()

	for i := len(modules) - 1; i >= 0; i-- {
		m := modules[i]
		if err := m.Halt(c); err != nil {
			c.log.Error("module halt failed during exit", "module", m.Name(), "err", err)
		}
		if err := m.Deinitialize(c); err != nil {
			c.log.Error("module deinitialize failed during exit", "module", m.Name(), "err", err)
		}
	}
	c.bus.close()
	c.setPhase(PhaseDeinitialized)
}

func (c *Container) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

// Phase reports the container's current lifecycle phase.
func (c *Container) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

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

package kinds

import (
	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
)

// Dispatcher and Service would naturally reference each other (the
// dispatcher routes work the service produces, the service reports status
// the dispatcher consumes). Both instead hold only a Bus reference,
// demonstrating the no-cyclic-references design the event bus exists for.
type Dispatcher struct {
	Base
	bus *node.EventBus
}

func NewDispatcher(sink log.Sink) *Dispatcher { return &Dispatcher{Base: NewBase("dispatcher", sink)} }

func (d *Dispatcher) Initialize(c *node.Container) error {
	d.bus = c.Bus()
	return d.Base.Initialize(c)
}

// Dispatch publishes work onto topic for any subscribed SERVICE to pick up.
func (d *Dispatcher) Dispatch(topic string, work any) {
	if d.bus != nil {
		d.bus.Publish(topic, work)
	}
}

type Service struct {
	Base
	bus *node.EventBus
}

func NewService(sink log.Sink) *Service { return &Service{Base: NewBase("service", sink)} }

func (s *Service) Initialize(c *node.Container) error {
	s.bus = c.Bus()
	return s.Base.Initialize(c)
}

// Subscribe exposes the bus to callers that want to consume a dispatcher's
// published topic without depending on Dispatcher directly.
func (s *Service) Subscribe(topic string) <-chan any {
	if s.bus == nil {
		return nil
	}
	return s.bus.Subscribe(topic)
}

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

// Package node implements the module container: a named, ordered set of
// long-lived service objects driven through a shared lifecycle, plus the
// capability lookup and event bus that let modules depend on each other
// without cyclic references.
package node

// Module is implemented by every service the container manages. Name must
// be stable for the lifetime of the instance; the container uses it for
// Attach's duplicate check and for GetObject lookups.
type Module interface {
	Name() string
	Initialize(c *Container) error
	Run(c *Container) error
	Halt(c *Container) error
	Deinitialize(c *Container) error
}

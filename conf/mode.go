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

package conf

// Mode selects which module kinds the entry sequencer builds. It is consumed
// by node/mode's registry, never parsed there.
type Mode string

const (
	ModeServer Mode = "SERVER"
	ModeMiner  Mode = "MINER"
	ModeClient Mode = "CLIENT"
	ModePurge  Mode = "PURGE"
)

// Valid reports whether m is one of the four modes the registry knows.
func (m Mode) Valid() bool {
	switch m {
	case ModeServer, ModeMiner, ModeClient, ModePurge:
		return true
	default:
		return false
	}
}

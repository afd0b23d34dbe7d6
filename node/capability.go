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

// HTTPHostConfig is implemented by modules exposing an HTTP listen address,
// a capability other kinds can look up instead of downcasting to the
// concrete HTTPSERVER type. No module kind in this tree looks it up.
type HTTPHostConfig interface {
	ListenAddr() string
}

// Wallet is the capability a caller can look up to sign or derive
// addresses without depending on the concrete wallet implementation (real
// key-backed or dummy). No module kind in this tree looks it up.
type Wallet interface {
	Address() string
	Sign(digest []byte) ([]byte, error)
}

// NetworkHost is implemented by the NETWORK module and looked up by
// NETCHANNEL; the tx/block channel kinds do not look it up.
type NetworkHost interface {
	PeerID() string
	Addrs() []string
}

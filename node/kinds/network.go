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
	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/core/host"

	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

// Network constructs a libp2p host and exposes it as the node.NetworkHost
// capability. It never joins a gossip topic or speaks a wire protocol —
// that framing is out of scope.
type Network struct {
	Base
	listenAddr string
	host       host.Host
}

// NewNetwork constructs the NETWORK module listening on the given
// multiaddr (e.g. "/ip4/0.0.0.0/tcp/30303").
func NewNetwork(listenAddr string, sink log.Sink) *Network {
	return &Network{Base: NewBase("network", sink), listenAddr: listenAddr}
}

func (n *Network) Initialize(c *node.Container) error {
	h, err := libp2p.New(libp2p.ListenAddrStrings(n.listenAddr))
	if err != nil {
		return errors.Wrap(err, "network: construct libp2p host")
	}
	n.host = h
	return n.Base.Initialize(c)
}

func (n *Network) Halt(c *node.Container) error {
	if n.host != nil {
		_ = n.host.Close()
	}
	return n.Base.Halt(c)
}

// PeerID implements node.NetworkHost.
func (n *Network) PeerID() string {
	if n.host == nil {
		return ""
	}
	return n.host.ID().String()
}

// Addrs implements node.NetworkHost.
func (n *Network) Addrs() []string {
	if n.host == nil {
		return nil
	}
	addrs := make([]string, 0, len(n.host.Addrs()))
	for _, a := range n.host.Addrs() {
		addrs = append(addrs, a.String())
	}
	return addrs
}

// NetChannel looks up the NETWORK module's host via the capability lookup
// and holds it open for the duration of its own lifecycle; it is the
// anchor the BLOCKCHANNEL/CERTTXCHANNEL/USERTXCHANNEL/DELEGATEDCHANNEL
// kinds would open per-protocol streams from, were wire framing in scope.
type NetChannel struct {
	Base
	networkName string
	host        node.NetworkHost
}

// NewNetChannel constructs the NETCHANNEL module, which depends on the
// NETWORK module registered under networkName.
func NewNetChannel(networkName string, sink log.Sink) *NetChannel {
	return &NetChannel{Base: NewBase("netchannel", sink), networkName: networkName}
}

func (nc *NetChannel) Initialize(c *node.Container) error {
	h, ok := node.Capability[node.NetworkHost](c, nc.networkName)
	if !ok {
		return errors.Errorf("netchannel: network capability %q not found", nc.networkName)
	}
	nc.host = h
	return nc.Base.Initialize(c)
}

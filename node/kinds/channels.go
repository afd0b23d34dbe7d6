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

// eventChannel subscribes to the event bus topic named after its own kind
// on Initialize, the shape BLOCKCHANNEL/CERTTXCHANNEL/USERTXCHANNEL/
// DELEGATEDCHANNEL all share: each is a thin, topic-scoped consumer rather
// than a direct reference to the modules that publish on that topic.
type eventChannel struct {
	Base
	topic string
	sub   <-chan any
}

func newEventChannel(name, topic string, sink log.Sink) eventChannel {
	return eventChannel{Base: NewBase(name, sink), topic: topic}
}

func (e *eventChannel) Initialize(c *node.Container) error {
	e.sub = c.Bus().Subscribe(e.topic)
	return e.Base.Initialize(c)
}

// Events returns the channel's topic subscription.
func (e *eventChannel) Events() <-chan any { return e.sub }

type BlockChannel struct{ eventChannel }

func NewBlockChannel(sink log.Sink) *BlockChannel {
	return &BlockChannel{newEventChannel("blockchannel", "BLOCKCHANNEL", sink)}
}

type CertTxChannel struct{ eventChannel }

func NewCertTxChannel(sink log.Sink) *CertTxChannel {
	return &CertTxChannel{newEventChannel("certtxchannel", "CERTTXCHANNEL", sink)}
}

type UserTxChannel struct{ eventChannel }

func NewUserTxChannel(sink log.Sink) *UserTxChannel {
	return &UserTxChannel{newEventChannel("usertxchannel", "USERTXCHANNEL", sink)}
}

type DelegatedChannel struct{ eventChannel }

func NewDelegatedChannel(sink log.Sink) *DelegatedChannel {
	return &DelegatedChannel{newEventChannel("delegatedchannel", "DELEGATEDCHANNEL", sink)}
}

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

import "github.com/metabasenet/metabasenet/log"

// TxPool, Blockchain, ForkManager, Consensus, BlockMaker and CoreProtocol
// are named modules that only record lifecycle transitions. Their real
// counterparts would hold the mempool, chain state, fork-choice rule,
// consensus engine and block assembly loop respectively — all out of
// scope here.

type TxPool struct{ Base }

func NewTxPool(sink log.Sink) *TxPool { return &TxPool{NewBase("txpool", sink)} }

type Blockchain struct{ Base }

func NewBlockchain(sink log.Sink) *Blockchain { return &Blockchain{NewBase("blockchain", sink)} }

type ForkManager struct{ Base }

func NewForkManager(sink log.Sink) *ForkManager { return &ForkManager{NewBase("forkmanager", sink)} }

type Consensus struct{ Base }

func NewConsensus(sink log.Sink) *Consensus { return &Consensus{NewBase("consensus", sink)} }

type BlockMaker struct{ Base }

func NewBlockMaker(sink log.Sink) *BlockMaker { return &BlockMaker{NewBase("blockmaker", sink)} }

type CoreProtocol struct{ Base }

func NewCoreProtocol(sink log.Sink) *CoreProtocol { return &CoreProtocol{NewBase("coreprotocol", sink)} }

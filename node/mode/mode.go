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

// Package mode is the pure data table mapping a run mode to the ordered
// list of module kinds the entry sequencer must instantiate for it.
package mode

import "github.com/metabasenet/metabasenet/conf"

// Kind identifies one of the module roles the source enumerates. A kind
// says what a module does; a mode says which kinds a run needs.
type Kind string

const (
	KindLock             Kind = "LOCK"
	KindBlockMaker       Kind = "BLOCKMAKER"
	KindCoreProtocol     Kind = "COREPROTOCOL"
	KindDispatcher       Kind = "DISPATCHER"
	KindHTTPGet          Kind = "HTTPGET"
	KindHTTPServer       Kind = "HTTPSERVER"
	KindNetChannel       Kind = "NETCHANNEL"
	KindBlockChannel     Kind = "BLOCKCHANNEL"
	KindCertTxChannel    Kind = "CERTTXCHANNEL"
	KindUserTxChannel    Kind = "USERTXCHANNEL"
	KindDelegatedChannel Kind = "DELEGATEDCHANNEL"
	KindNetwork          Kind = "NETWORK"
	KindRPCClient        Kind = "RPCCLIENT"
	KindRPCMode          Kind = "RPCMODE"
	KindService          Kind = "SERVICE"
	KindTxPool           Kind = "TXPOOL"
	KindWallet           Kind = "WALLET"
	KindBlockchain       Kind = "BLOCKCHAIN"
	KindForkManager      Kind = "FORKMANAGER"
	KindConsensus        Kind = "CONSENSUS"
	KindDataStat         Kind = "DATASTAT"
	KindRecovery         Kind = "RECOVERY"
)

// registry maps each run mode to its ordered module-kind list. LOCK always
// comes first: per the entry sequencer's contract, no other module may
// touch the data directory before the exclusive lock is held.
var registry = map[conf.Mode][]Kind{
	conf.ModeServer: {
		KindLock,
		KindRecovery,
		KindNetwork,
		KindNetChannel,
		KindBlockChannel,
		KindCertTxChannel,
		KindUserTxChannel,
		KindDelegatedChannel,
		KindDispatcher,
		KindService,
		KindCoreProtocol,
		KindTxPool,
		KindBlockchain,
		KindForkManager,
		KindConsensus,
		KindHTTPServer,
		KindRPCMode,
		KindDataStat,
	},
	conf.ModeMiner: {
		KindLock,
		KindRecovery,
		KindNetwork,
		KindNetChannel,
		KindBlockChannel,
		KindCertTxChannel,
		KindUserTxChannel,
		KindDelegatedChannel,
		KindDispatcher,
		KindService,
		KindCoreProtocol,
		KindTxPool,
		KindWallet,
		KindBlockMaker,
		KindBlockchain,
		KindForkManager,
		KindConsensus,
		KindHTTPServer,
		KindRPCMode,
		KindDataStat,
	},
	conf.ModeClient: {
		KindLock,
		KindHTTPGet,
		KindRPCClient,
		KindWallet,
	},
	// PURGE is handled outside Container.Run by the entry sequencer: it maps
	// to LOCK alone, followed by a ctsdb.WipeDirectory pass over the storage
	// data path. Listed here for completeness of the table.
	conf.ModePurge: {
		KindLock,
	},
}

// KindsFor returns the ordered module-kind list for mode, or (nil, false)
// if mode is not one the registry knows about.
func KindsFor(m conf.Mode) ([]Kind, bool) {
	kinds, ok := registry[m]
	if !ok {
		return nil, false
	}
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out, true
}

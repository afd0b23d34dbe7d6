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
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/holiman/uint256"

	"github.com/metabasenet/metabasenet/common/hexutil"
	"github.com/metabasenet/metabasenet/log"
	"github.com/metabasenet/metabasenet/node"
	"github.com/metabasenet/metabasenet/pkg/errors"
)

// realWallet realizes node.Wallet with a btcec-generated keypair. Signing
// and address-derivation schemes beyond "hex of the public key" are a
// Non-goal; this exists to exercise the capability lookup end to end.
type realWallet struct {
	Base
	priv  *btcec.PrivateKey
	nonce *uint256.Int
}

// NewRealWallet constructs the WALLET module with a freshly generated
// keypair.
func NewRealWallet(sink log.Sink) (*realWallet, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "wallet: generate key")
	}
	return &realWallet{
		Base:  NewBase("wallet", sink),
		priv:  priv,
		nonce: uint256.NewInt(0),
	}, nil
}

// Address implements node.Wallet.
func (w *realWallet) Address() string {
	return hexutil.Encode(w.priv.PubKey().SerializeCompressed())
}

// Sign implements node.Wallet. This is key-generation-grade only: it signs
// a 32-byte digest with ECDSA compact signatures, nothing more (no
// transaction format).
func (w *realWallet) Sign(digest []byte) ([]byte, error) {
	if len(digest) == 0 {
		return nil, errors.New("wallet: empty digest")
	}
	var d [32]byte
	if len(digest) >= 32 {
		copy(d[:], digest[:32])
	} else {
		copy(d[32-len(digest):], digest)
	}
	sig := ecdsa.SignCompact(w.priv, d[:], true)
	w.nonce.AddUint64(w.nonce, 1)
	return sig, nil
}

// Nonce reports how many signatures this wallet has produced since it was
// constructed. It is not persisted and resets on restart.
func (w *realWallet) Nonce() *uint256.Int {
	return new(uint256.Int).Set(w.nonce)
}

// dummyWallet realizes node.Wallet without any real key material. The
// entry sequencer attaches it in place of realWallet when generating a
// real keypair fails, so the capability stays present.
type dummyWallet struct {
	Base
}

// NewDummyWallet constructs a WALLET module with no backing key.
func NewDummyWallet(sink log.Sink) *dummyWallet {
	return &dummyWallet{Base: NewBase("wallet", sink)}
}

func (w *dummyWallet) Address() string { return "0x0000000000000000000000000000000000000000" }

func (w *dummyWallet) Sign(digest []byte) ([]byte, error) {
	return nil, errors.New("wallet: dummy wallet cannot sign")
}

var _ node.Wallet = (*realWallet)(nil)
var _ node.Wallet = (*dummyWallet)(nil)

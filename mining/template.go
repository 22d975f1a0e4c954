// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining builds candidate blocks for the external miner process
// to search. Mempool-based transaction selection is out of scope
// (a Non-goal of fee ordering): a template always carries only the
// coinbase.
package mining

import (
	"time"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/script"
	"github.com/didanet/didanode/wire"
)

// Template is a candidate block ready for nonce search: everything but
// the winning Nonce is already fixed.
type Template struct {
	Block  *wire.Block
	Height int32
}

// NewTemplate assembles a candidate block extending tip, paying the
// schedule's reward for the next height to rewardKey.
func NewTemplate(tip *blockchain.BlockIndexNode, rewardKey *secp256k1.PublicKey) (*Template, error) {
	height := tip.Height + 1
	reward := blockchain.BlockReward(height)

	coinbaseIn := &wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: wire.CoinbaseOutputIndex},
		Sequence:         0xffffffff,
	}
	coinbaseOut := &wire.TxOut{
		Value:         reward,
		LockingScript: script.NewLockingScript(rewardKey).Encode(),
	}

	coinbase, err := wire.NewTransaction([]*wire.TxIn{coinbaseIn}, []*wire.TxOut{coinbaseOut})
	if err != nil {
		return nil, err
	}

	header := wire.BlockHeader{
		PreviousBlockHash: tip.Hash,
		Timestamp:         uint32(time.Now().Unix()),
		DifficultyTarget:  blockchain.NextDifficulty(tip),
	}
	b, err := wire.NewBlock(header, []*wire.Transaction{coinbase})
	if err != nil {
		return nil, err
	}

	return &Template{Block: b, Height: height}, nil
}

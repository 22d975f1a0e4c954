// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/didanet/didanode/wire"
)

// genesisCoinbaseMessage is carried in the genesis coinbase's unlocking
// script, following the convention of stamping a human-readable marker
// in the block that predates any real transaction history.
const genesisCoinbaseMessage = "didanode genesis 2026-07-30"

func generateGenesisCoinbaseTx() *wire.Transaction {
	in := &wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: wire.CoinbaseOutputIndex},
		UnlockingScript:  []byte(genesisCoinbaseMessage),
		Sequence:         0xffffffff,
	}
	out := &wire.TxOut{
		Value:         wire.GenesisReward,
		LockingScript: []byte{},
	}

	tx, err := wire.NewTransaction([]*wire.TxIn{in}, []*wire.TxOut{out})
	if err != nil {
		// A single coinbase input/output always satisfies the arity
		// invariant; this would only fire on a programming error.
		panic(err)
	}
	return tx
}

// GenesisBlock is the fixed first block of the chain: the tree is always
// rooted at this well-known genesis header. Its timestamp,
// reward and difficulty come straight from the wire package constants so
// blockchain.NewBlockTree(chaincfg.GenesisBlock.Header) agrees with every
// other component that references those constants.
var GenesisBlock = func() *wire.Block {
	header := wire.BlockHeader{
		Timestamp:        wire.GenesisTimestamp,
		DifficultyTarget: wire.InitialDifficulty,
		Nonce:            0,
	}

	b, err := wire.NewBlock(header, []*wire.Transaction{generateGenesisCoinbaseTx()})
	if err != nil {
		panic(err)
	}
	return b
}()

// GenesisHash is the id of GenesisBlock, computed once at init time.
var GenesisHash = GenesisBlock.ID()

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"errors"

	"github.com/didanet/didanode/wire"
)

// ErrDifficultyMismatch is returned when a block's header difficulty does
// not match what NextDifficulty expects from its parent.
var ErrDifficultyMismatch = errors.New("blockchain: block difficulty does not match expected next difficulty")

// ErrRewardMismatch is returned when a coinbase output total exceeds the
// schedule's BlockReward for the block's height.
var ErrRewardMismatch = errors.New("blockchain: coinbase reward exceeds the block's schedule allowance")

// ValidateBlock checks a candidate block against its would-be parent node:
// wire-level shape invariants (coinbase placement, Merkle root), the
// expected next difficulty, and the coinbase reward schedule. Transaction
// script validation is explicitly out of scope: inputs other than the
// coinbase sentinel are not checked for spendability here.
func ValidateBlock(b *wire.Block, parent *BlockIndexNode) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if b.Header.DifficultyTarget != NextDifficulty(parent) {
		return ErrDifficultyMismatch
	}

	coinbaseTotal := int64(0)
	for _, out := range b.Transactions[0].Outputs {
		coinbaseTotal += out.Value
	}
	if coinbaseTotal > BlockReward(parent.Height+1) {
		return ErrRewardMismatch
	}

	return nil
}

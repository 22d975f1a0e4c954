// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/didanet/didanode/wire"

// HalvingInterval is the placeholder number of blocks between coinbase
// reward halvings. Economic policy knobs like the halving schedule are
// named only so they have a seam; the exact interval is not specified
// further and is not validated against network difficulty or real time.
const HalvingInterval = 210_000

// BlockReward returns the coinbase subsidy for a block at the given
// height, starting at wire.GenesisReward and halving every HalvingInterval
// blocks until it reaches zero.
func BlockReward(height int32) int64 {
	halvings := height / HalvingInterval
	if halvings >= 64 {
		return 0
	}
	return wire.GenesisReward >> uint(halvings)
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg describes the parameters of the single network this
// node understands. Only one network exists, so Params needs no
// selection machinery, just a single well-known instance.
package chaincfg

import "github.com/didanet/didanode/wire"

// Params describes the fixed parameters of the network.
type Params struct {
	Name          string
	DefaultPort   string
	GenesisHeader wire.BlockHeader
	GenesisHash   [32]byte
}

// MainNetParams is the (and only) network this node speaks.
var MainNetParams = Params{
	Name:          "mainnet",
	DefaultPort:   "8633",
	GenesisHeader: GenesisBlock.Header,
	GenesisHash:   GenesisHash,
}

// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node implements the single cooperative, non-blocking I/O loop
// that drives handshake, headers-first sync, and block download for
// every connected peer.
package node

import (
	"time"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/chaincfg"
	"github.com/didanet/didanode/peer"
)

// Timeout durations for outstanding sync requests.
const (
	HeadersTimeout = 60 * time.Second
	BlockTimeout   = 60 * time.Second
)

// Config configures a Node at construction time. There is no
// PeerNotifier/TxMemPool/FeeEstimator: the node talks to peers directly
// through its own peer.Network, and mempool fee ordering is out of scope.
type Config struct {
	ChainParams chaincfg.Params

	// ListenAddr is the local address the node accepts inbound peers on.
	ListenAddr string

	// BootstrapPeers is the static list of addresses the node dials
	// outbound at startup.
	BootstrapPeers []string

	// Dialer controls how outbound connections are established,
	// allowing a SOCKS5 proxy to be configured by the caller.
	Dialer peer.Dialer

	// MinerRewardKey names the address GetBlockTemplate's coinbase pays
	// when a miner polls this node over the RPC-tagged wire messages.
	MinerRewardKey *secp256k1.PublicKey
}

// newTree constructs a fresh BlockTree rooted at the configured genesis
// header, matching every component that otherwise references
// chaincfg.GenesisBlock directly.
func newTree(params chaincfg.Params) *blockchain.BlockTree {
	return blockchain.NewBlockTree(params.GenesisHeader)
}

// Copyright (c) 2013-2024 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the framed binary message protocol exchanged
// between didanode peers: a fixed u32 length-prefix header followed by a
// tagged-union payload.
package wire

// ProtocolVersion is the protocol version this package speaks. Unlike
// btcd-lineage nodes, didanode has no version negotiation ladder: the
// handshake only checks for exact equality with the peer's
// announced version.
const ProtocolVersion uint32 = 1

// Protocol-visible constants.
const (
	// MaxHeadersPerMsg is H_max_headers, the largest number of headers a
	// single Headers reply may carry.
	MaxHeadersPerMsg = 2000

	// BlockDownloadWindow is W, the sliding window (in block heights)
	// the scheduler keeps open ahead of a peer's last common block.
	BlockDownloadWindow = 1024

	// MaxBlocksInTransit is P, the maximum number of in-flight
	// GetBlockData requests outstanding to a single peer at once.
	MaxBlocksInTransit = 16

	// NonceBatchSize is N_nonce_batch, the number of nonces the miner
	// tries per yield back to its I/O loop.
	NonceBatchSize = 1_000_000

	// GenesisTimestamp is the fixed genesis block timestamp (seconds
	// since epoch).
	GenesisTimestamp uint32 = 1_630_569_467

	// GenesisReward is the coinbase reward minted by the genesis block.
	GenesisReward int64 = 50

	// InitialDifficulty is the number of required leading zero bits for
	// every block until a future implementation supplies retargeting.
	InitialDifficulty uint32 = 8
)

// MessageOrdinal identifies the wire-level tag of a payload's variant.
type MessageOrdinal byte

const (
	OrdinalVersion MessageOrdinal = iota
	OrdinalVerAck
	OrdinalGetHeaders
	OrdinalHeaders
	OrdinalGetBlockData
	OrdinalBlock
	OrdinalJSONRPCRequest
	OrdinalJSONRPCResponse
)

func (o MessageOrdinal) String() string {
	switch o {
	case OrdinalVersion:
		return "version"
	case OrdinalVerAck:
		return "verack"
	case OrdinalGetHeaders:
		return "getheaders"
	case OrdinalHeaders:
		return "headers"
	case OrdinalGetBlockData:
		return "getblockdata"
	case OrdinalBlock:
		return "block"
	case OrdinalJSONRPCRequest:
		return "jsonrpcrequest"
	case OrdinalJSONRPCResponse:
		return "jsonrpcresponse"
	default:
		return "unknown"
	}
}

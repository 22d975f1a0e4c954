// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/didanet/didanode/chainhash"
)

// BlockHeaderLen is the fixed encoded size of a BlockHeader: two 32-byte
// hashes plus three u32 fields.
const BlockHeaderLen = chainhash.HashSize*2 + 4 + 4 + 4

// BlockHeader holds didanode's five header fields. It is a didanode
// header, not a flokicoin one: there is no version field, no AuxPoW, and
// Bits is reinterpreted as a plain "required leading zero bits" count
// (DifficultyTarget) rather than a compact float encoding.
type BlockHeader struct {
	// PreviousBlockHash is the hash of the parent block header.
	PreviousBlockHash chainhash.Hash

	// MerkleRoot is the Merkle root over the block's transaction ids.
	MerkleRoot chainhash.Hash

	// Timestamp is seconds since the Unix epoch, truncated to uint32 on
	// the wire.
	Timestamp uint32

	// DifficultyTarget is the number of required leading zero bits in
	// the block hash.
	DifficultyTarget uint32

	// Nonce is the 32-bit counter varied by proof-of-work search.
	Nonce uint32
}

// Hash computes the block identifier: double-SHA256 of the serialized
// header.
func (h *BlockHeader) Hash() chainhash.Hash {
	var buf bytes.Buffer
	// Encode cannot fail writing into a bytes.Buffer.
	_ = h.Encode(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// HashWithNonce returns the block hash that would result from substituting
// nonce for the header's own Nonce field, leaving the receiver unmodified.
// It satisfies pow.TrialHeader.
func (h BlockHeader) HashWithNonce(nonce uint32) chainhash.Hash {
	h.Nonce = nonce
	return h.Hash()
}

// Encode writes the header's five fields to w in declaration order,
// little-endian, fixed-width.
func (h *BlockHeader) Encode(w io.Writer) error {
	var buf [8]byte
	if err := writeHash(w, h.PreviousBlockHash); err != nil {
		return err
	}
	if err := writeHash(w, h.MerkleRoot); err != nil {
		return err
	}
	if err := writeUint32(w, buf[:], h.Timestamp); err != nil {
		return err
	}
	if err := writeUint32(w, buf[:], h.DifficultyTarget); err != nil {
		return err
	}
	return writeUint32(w, buf[:], h.Nonce)
}

// Decode reads a header from r in the same layout Encode writes.
func (h *BlockHeader) Decode(r io.Reader) error {
	var buf [8]byte
	if err := readHash(r, &h.PreviousBlockHash); err != nil {
		return err
	}
	if err := readHash(r, &h.MerkleRoot); err != nil {
		return err
	}
	ts, err := readUint32(r, buf[:])
	if err != nil {
		return err
	}
	h.Timestamp = ts

	d, err := readUint32(r, buf[:])
	if err != nil {
		return err
	}
	h.DifficultyTarget = d

	n, err := readUint32(r, buf[:])
	if err != nil {
		return err
	}
	h.Nonce = n
	return nil
}

// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pow implements the proof-of-work engine: target-hash derivation
// from a difficulty (a count of required leading zero bits), and the
// nonce search that satisfies it.
package pow

import (
	"github.com/kkdai/bstream"

	"github.com/didanet/didanode/chainhash"
)

// MaxDifficulty is the largest difficulty value Target accepts: every bit of
// the hash is required to be zero.
const MaxDifficulty = chainhash.HashSize * 8

// Target derives the 32-byte target hash for a difficulty of d required
// leading zero bits. The result is the largest 256-bit value with
// exactly d leading zero bits: the first d bits are zero, the following bit
// (if any) is implicitly the first one bit, and every remaining bit is one.
//
// Target is built bit-by-bit with a bstream.BStream writer rather than with
// byte-aligned shifts, since d is not required to be a multiple of 8.
func Target(d uint32) chainhash.Hash {
	if d > MaxDifficulty {
		d = MaxDifficulty
	}

	w := bstream.NewBStreamWriter(chainhash.HashSize)
	for i := uint32(0); i < uint32(MaxDifficulty); i++ {
		w.WriteBit(i >= d)
	}

	var target chainhash.Hash
	copy(target[:], w.Bytes())
	return target
}

// MeetsTarget reports whether hash satisfies the proof-of-work target
// derived from difficulty d: hash ≤ target(d), compared as unsigned
// 256-bit integers via the hash's lexicographic byte order.
func MeetsTarget(hash chainhash.Hash, d uint32) bool {
	return hash.Compare(Target(d)) <= 0
}

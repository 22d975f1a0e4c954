// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import "github.com/didanet/didanode/chainhash"

// TrialHeader is the minimal shape a nonce search trials against. It is
// kept separate from wire.BlockHeader so this package has no dependency
// on the wire encoding; wire.BlockHeader satisfies it directly.
type TrialHeader interface {
	// HashWithNonce returns the block hash that results from trying the given nonce, leaving the
	// receiver's own fields untouched.
	HashWithNonce(nonce uint32) chainhash.Hash
}

// ComputeNonce searches nonce ∈ [start, stop] for the first value (lowest,
// tried in ascending order) whose resulting block hash satisfies the
// difficulty-d target. It returns (0, false) if the range is exhausted
// without success.
//
// ComputeNonce is deterministic and side-effect-free for fixed arguments: it
// reads only through hdr.HashWithNonce and never mutates shared state, so
// repeated calls with identical arguments return the identical nonce.
func ComputeNonce(hdr TrialHeader, d uint32, start, stop uint32) (uint32, bool) {
	target := Target(d)

	nonce := start
	for {
		if hdr.HashWithNonce(nonce).Compare(target) <= 0 {
			return nonce, true
		}
		if nonce == stop {
			return 0, false
		}
		nonce++
	}
}

// ComputeNonceParallel behaves exactly like ComputeNonce but divides the
// [start, stop] range across workers goroutines and returns the lowest
// matching nonce found, preserving ComputeNonce's contract that the first
// (lowest) matching nonce is returned.
func ComputeNonceParallel(hdr TrialHeader, d uint32, start, stop uint32, workers int) (uint32, bool) {
	if workers < 2 || stop <= start {
		return ComputeNonce(hdr, d, start, stop)
	}

	target := Target(d)
	span := uint64(stop) - uint64(start) + 1
	chunk := span / uint64(workers)
	if chunk == 0 {
		chunk = 1
	}

	type result struct {
		nonce uint32
		found bool
	}
	results := make(chan result, workers)

	lo := uint64(start)
	launched := 0
	for lo <= uint64(stop) {
		hi := lo + chunk - 1
		if hi > uint64(stop) {
			hi = uint64(stop)
		}

		go func(lo, hi uint64) {
			for n := lo; n <= hi; n++ {
				if hdr.HashWithNonce(uint32(n)).Compare(target) <= 0 {
					results <- result{uint32(n), true}
					return
				}
			}
			results <- result{0, false}
		}(lo, hi)
		launched++

		if hi == uint64(stop) {
			break
		}
		lo = hi + 1
	}

	best := uint32(0)
	found := false
	for i := 0; i < launched; i++ {
		r := <-results
		if r.found && (!found || r.nonce < best) {
			best, found = r.nonce, true
		}
	}
	return best, found
}

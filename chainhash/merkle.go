// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// MerkleRoot computes the root of the binary Merkle tree built over ids, the
// ordered sequence of transaction identifiers in a block:
//
//  1. the leaf level is H(serialize(tx_id)) for each id
//  2. while the level has more than one node, odd levels duplicate the last
//     node, adjacent pairs are combined as H(L ‖ R)
//  3. the root is the single remaining node
//
// MerkleRoot panics if ids is empty; a block always has at least its
// coinbase transaction.
func MerkleRoot(ids []Hash) Hash {
	if len(ids) == 0 {
		panic("chainhash: MerkleRoot called with no transaction ids")
	}

	level := make([]Hash, len(ids))
	for i, id := range ids {
		level[i] = HashH(id[:])
	}

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([]Hash, len(level)/2)
		for i := range next {
			next[i] = combine(level[2*i], level[2*i+1])
		}
		level = next
	}

	return level[0]
}

// combine returns H(L ‖ R), the parent of two Merkle tree siblings.
func combine(left, right Hash) Hash {
	var buf [2 * HashSize]byte
	copy(buf[:HashSize], left[:])
	copy(buf[HashSize:], right[:])
	return HashH(buf[:])
}

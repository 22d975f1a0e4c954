// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/didanet/didanode/chainhash"

// ActiveChain is the ordered genesis-to-tip view of the block tree: a
// cache over the tree, not a second source of truth. It is only ever
// mutated by BlockTree.Insert, which keeps it atomically consistent with
// a reorg's tree-side splice.
type ActiveChain struct {
	nodes []*BlockIndexNode
}

func newActiveChain(genesis *BlockIndexNode) *ActiveChain {
	return &ActiveChain{nodes: []*BlockIndexNode{genesis}}
}

// Genesis returns the chain's root, in O(1).
func (c *ActiveChain) Genesis() *BlockIndexNode {
	return c.nodes[0]
}

// Tip returns the chain's current tip, in O(1).
func (c *ActiveChain) Tip() *BlockIndexNode {
	return c.nodes[len(c.nodes)-1]
}

// Height returns the tip's height.
func (c *ActiveChain) Height() int32 {
	return c.Tip().Height
}

// Hashes returns every hash from genesis to tip, in O(n).
func (c *ActiveChain) Hashes() []chainhash.Hash {
	out := make([]chainhash.Hash, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n.Hash
	}
	return out
}

// Contains reports whether hash is on the active chain.
func (c *ActiveChain) Contains(hash chainhash.Hash) bool {
	for _, n := range c.nodes {
		if n.Hash == hash {
			return true
		}
	}
	return false
}

// HeightOf returns the height of hash on the active chain, if present.
// Used by the GetHeaders responder to find the first locator entry that
// lies on the chain.
func (c *ActiveChain) HeightOf(hash chainhash.Hash) (int32, bool) {
	for _, n := range c.nodes {
		if n.Hash == hash {
			return n.Height, true
		}
	}
	return 0, false
}

// NodeAtHeight returns the active-chain node at the given height, if any.
func (c *ActiveChain) NodeAtHeight(height int32) (*BlockIndexNode, bool) {
	if height < 0 || int(height) >= len(c.nodes) {
		return nil, false
	}
	return c.nodes[height], true
}

// append extends the chain by a single new tip, the straight-extension
// path (no reorg needed).
func (c *ActiveChain) append(node *BlockIndexNode) {
	c.nodes = append(c.nodes, node)
}

// rewindAndAppend splices a reorg: removed is ordered tip-to-fork
// (exclusive of the fork), and added is ordered new-tip-to-fork (exclusive
// of the fork), as FindFork returns it. It truncates the chain back to the
// fork point and appends added in reverse (fork side first), in one step,
// so no external observer ever sees an inconsistent half-reorged chain.
func (c *ActiveChain) rewindAndAppend(removed, added []*BlockIndexNode) {
	c.nodes = c.nodes[:len(c.nodes)-len(removed)]
	for i := len(added) - 1; i >= 0; i-- {
		c.nodes = append(c.nodes, added[i])
	}
}

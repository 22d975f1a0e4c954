// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the headers-only block tree, its derived
// active-chain view, the orphan pool, and block storage. The tree is
// owned exclusively by the node's single cooperative loop: none of its
// methods take a lock, by design.
package blockchain

import (
	"errors"
	"math/big"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

// ErrUnconnectedHeader is returned by Insert when the header's parent is not
// already in the tree.
var ErrUnconnectedHeader = errors.New("blockchain: header's parent is not in the tree")

// ErrDuplicateHeader is returned by Insert when the header's hash is
// already present.
var ErrDuplicateHeader = errors.New("blockchain: header already in the tree")

// BlockIndexNode is a node of the block tree: a header together with
// its derived height and accumulated chain work. ParentHash is stored
// rather than a pointer to the parent node to keep the tree a flat map
// of owned headers referencing each other only by key.
type BlockIndexNode struct {
	Header     wire.BlockHeader
	Hash       chainhash.Hash
	ParentHash chainhash.Hash
	Height     int32
	ChainWork  *big.Int
}

// Work returns the proof-of-work weight contributed by a single block at
// the given difficulty. A flat 1-per-block increment would work too, but
// a real implementation should scale with difficulty, so didanode uses
// 2^difficulty: still a strictly monotonically increasing function of d,
// preserving every invariant that depends only on that property.
func Work(difficulty uint32) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(difficulty))
}

// NextDifficulty is the retargeting hook. This implementation performs no
// retargeting: it simply repeats the parent's difficulty, leaving the
// seam in place for a future difficulty-adjustment algorithm.
func NextDifficulty(parent *BlockIndexNode) uint32 {
	return parent.Header.DifficultyTarget
}

// ReorgEvent describes a switch of the active chain from one tip to
// another. Removed is ordered from the old tip down to (excluding) the
// fork point; Added is ordered from just after the fork point up to the
// new tip.
type ReorgEvent struct {
	ForkHash chainhash.Hash
	Removed  []*BlockIndexNode
	Added    []*BlockIndexNode
}

// BlockTree is the headers-only tree, rooted at a fixed genesis header.
// It owns the derived ActiveChain cache and keeps both in sync within a
// single Insert call.
type BlockTree struct {
	nodes   map[chainhash.Hash]*BlockIndexNode
	genesis chainhash.Hash
	active  *ActiveChain
}

// NewBlockTree creates a tree rooted at genesisHeader, which is assigned
// height 0 and the single-block chain work for its own difficulty.
func NewBlockTree(genesisHeader wire.BlockHeader) *BlockTree {
	hash := genesisHeader.Hash()
	root := &BlockIndexNode{
		Header:    genesisHeader,
		Hash:      hash,
		Height:    0,
		ChainWork: Work(genesisHeader.DifficultyTarget),
	}

	tree := &BlockTree{
		nodes:   map[chainhash.Hash]*BlockIndexNode{hash: root},
		genesis: hash,
	}
	tree.active = newActiveChain(root)
	return tree
}

// GenesisHash returns the fixed root hash of the tree.
func (t *BlockTree) GenesisHash() chainhash.Hash {
	return t.genesis
}

// Exists reports whether hash is a node of the tree.
func (t *BlockTree) Exists(hash chainhash.Hash) bool {
	_, ok := t.nodes[hash]
	return ok
}

// Node returns the tree node for hash, if present.
func (t *BlockTree) Node(hash chainhash.Hash) (*BlockIndexNode, bool) {
	n, ok := t.nodes[hash]
	return n, ok
}

// ActiveChain returns the tree's derived active-chain cache.
func (t *BlockTree) ActiveChain() *ActiveChain {
	return t.active
}

// Insert adds header to the tree. Its precondition is that the
// parent is already present and the header's own hash is not; violating
// either is a fatal programming/protocol error upstream (peer
// misbehaviour), reported here as an error rather than a panic so the
// caller (the node's message dispatcher) can turn it into a peer
// disconnect instead of crashing the whole node.
//
// If the new node's chain work strictly exceeds the current tip's, the
// active chain is spliced onto the new path and a ReorgEvent describing
// the change is returned; otherwise the second return value is nil.
func (t *BlockTree) Insert(header wire.BlockHeader) (*BlockIndexNode, *ReorgEvent, error) {
	hash := header.Hash()
	if _, ok := t.nodes[hash]; ok {
		return nil, nil, ErrDuplicateHeader
	}

	parent, ok := t.nodes[header.PreviousBlockHash]
	if !ok {
		return nil, nil, ErrUnconnectedHeader
	}

	node := &BlockIndexNode{
		Header:     header,
		Hash:       hash,
		ParentHash: parent.Hash,
		Height:     parent.Height + 1,
		ChainWork:  new(big.Int).Add(parent.ChainWork, Work(header.DifficultyTarget)),
	}
	t.nodes[hash] = node

	var reorg *ReorgEvent
	oldTip := t.active.Tip()
	if node.ChainWork.Cmp(oldTip.ChainWork) > 0 {
		forkHash, removedHashes, addedHashes, ok := t.FindFork(oldTip.Hash, node.Hash)
		if !ok {
			// Unreachable given both are tree members sharing genesis as
			// a common ancestor; kept as a defensive error rather than a
			// panic since it crosses a peer-triggered code path.
			return node, nil, errors.New("blockchain: active tip and new node share no ancestor")
		}

		removed := make([]*BlockIndexNode, len(removedHashes))
		for i, h := range removedHashes {
			removed[i] = t.nodes[h]
		}
		added := make([]*BlockIndexNode, len(addedHashes))
		for i, h := range addedHashes {
			added[i] = t.nodes[h]
		}

		t.active.rewindAndAppend(removed, added)

		// The event lists the added nodes from just after the fork up to
		// the new tip, the reverse of FindFork's tip-to-fork path.
		addedAsc := make([]*BlockIndexNode, len(added))
		for i, n := range added {
			addedAsc[len(added)-1-i] = n
		}
		reorg = &ReorgEvent{ForkHash: forkHash, Removed: removed, Added: addedAsc}
		logger.Infof("REORGANIZE: new best chain %s (height %d), removing %d block(s), adding %d block(s) back to fork point %s",
			node.Hash, node.Height, len(removed), len(added), forkHash)
	}

	return node, reorg, nil
}

// Ancestor returns the ancestor of hash at targetHeight, or false if hash
// is unknown or targetHeight exceeds hash's own height.
func (t *BlockTree) Ancestor(hash chainhash.Hash, targetHeight int32) (*BlockIndexNode, bool) {
	node, ok := t.nodes[hash]
	if !ok || targetHeight < 0 || targetHeight > node.Height {
		return nil, false
	}

	for node.Height > targetHeight {
		parent, ok := t.nodes[node.ParentHash]
		if !ok {
			return nil, false
		}
		node = parent
	}
	return node, true
}

// FindFork locates the lowest common ancestor of a and b and the hash
// paths walking from each down toward (excluding) the fork point, ordered
// from the tip end toward the fork.
func (t *BlockTree) FindFork(a, b chainhash.Hash) (fork chainhash.Hash, pathA, pathB []chainhash.Hash, ok bool) {
	nodeA, okA := t.nodes[a]
	nodeB, okB := t.nodes[b]
	if !okA || !okB {
		return chainhash.Hash{}, nil, nil, false
	}

	for nodeA.Height > nodeB.Height {
		pathA = append(pathA, nodeA.Hash)
		nodeA = t.nodes[nodeA.ParentHash]
	}
	for nodeB.Height > nodeA.Height {
		pathB = append(pathB, nodeB.Hash)
		nodeB = t.nodes[nodeB.ParentHash]
	}

	for nodeA.Hash != nodeB.Hash {
		pathA = append(pathA, nodeA.Hash)
		pathB = append(pathB, nodeB.Hash)
		nodeA = t.nodes[nodeA.ParentHash]
		nodeB = t.nodes[nodeB.ParentHash]
	}

	return nodeA.Hash, pathA, pathB, true
}

// Locator builds a sparse descending-height vector of block hashes for
// hash: the last 10 heights, then heights stepping back with
// exponentially growing gaps, always ending in genesis.
func (t *BlockTree) Locator(hash chainhash.Hash) []chainhash.Hash {
	node, ok := t.nodes[hash]
	if !ok {
		return nil
	}

	var locator []chainhash.Hash
	step := int32(1)
	height := node.Height
	for {
		locator = append(locator, node.Hash)
		if node.Hash == t.genesis {
			return locator
		}

		if len(locator) >= 10 {
			step *= 2
		}
		height -= step

		if height <= 0 {
			node = t.nodes[t.genesis]
			continue
		}

		anc, ok := t.Ancestor(hash, height)
		if !ok {
			node = t.nodes[t.genesis]
			continue
		}
		node = anc
	}
}

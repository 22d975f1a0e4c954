// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

// OrphanPool holds blocks whose parent is not yet known to the tree,
// indexed by parent hash. It is disjoint from the block tree by
// parent-presence: a block belongs here exactly while its parent is
// absent from the tree.
type OrphanPool struct {
	byParent map[chainhash.Hash]map[chainhash.Hash]*wire.Block
	ids      map[chainhash.Hash]struct{}
}

// NewOrphanPool returns an empty orphan pool.
func NewOrphanPool() *OrphanPool {
	return &OrphanPool{
		byParent: make(map[chainhash.Hash]map[chainhash.Hash]*wire.Block),
		ids:      make(map[chainhash.Hash]struct{}),
	}
}

// Insert adds b to the pool, keyed by its PreviousBlockHash. It is
// idempotent by (parent, id): inserting the same block twice is a no-op.
func (p *OrphanPool) Insert(b *wire.Block) {
	id := b.ID()
	if _, exists := p.ids[id]; exists {
		return
	}

	parent := b.Header.PreviousBlockHash
	set, ok := p.byParent[parent]
	if !ok {
		set = make(map[chainhash.Hash]*wire.Block)
		p.byParent[parent] = set
	}
	set[id] = b
	p.ids[id] = struct{}{}
}

// Remove returns and removes every orphan whose parent hash equals
// parentHash. The caller is expected to feed the returned blocks back into
// node acceptance.
func (p *OrphanPool) Remove(parentHash chainhash.Hash) []*wire.Block {
	set, ok := p.byParent[parentHash]
	if !ok {
		return nil
	}
	delete(p.byParent, parentHash)

	out := make([]*wire.Block, 0, len(set))
	for id, b := range set {
		out = append(out, b)
		delete(p.ids, id)
	}
	return out
}

// Exists reports whether blockID is currently held as an orphan.
func (p *OrphanPool) Exists(blockID chainhash.Hash) bool {
	_, ok := p.ids[blockID]
	return ok
}

// Len returns the number of orphans currently held.
func (p *OrphanPool) Len() int {
	return len(p.ids)
}

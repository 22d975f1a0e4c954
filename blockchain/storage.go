// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

// BlockStorage is the content-addressed store of fully downloaded blocks.
// It performs no eviction itself; callers that want a bound (e.g. the
// node keeping memory proportional to the download window) can wrap it.
type BlockStorage struct {
	blocks map[chainhash.Hash]*wire.Block
}

// NewBlockStorage returns an empty block store.
func NewBlockStorage() *BlockStorage {
	return &BlockStorage{blocks: make(map[chainhash.Hash]*wire.Block)}
}

// Insert stores b, keyed by its id. Re-inserting the same block is a no-op.
func (s *BlockStorage) Insert(b *wire.Block) {
	id := b.ID()
	if _, ok := s.blocks[id]; ok {
		return
	}
	s.blocks[id] = b
}

// Get returns the block for hash, if stored.
func (s *BlockStorage) Get(hash chainhash.Hash) (*wire.Block, bool) {
	b, ok := s.blocks[hash]
	return b, ok
}

// Has reports whether hash is present without copying the block out.
func (s *BlockStorage) Has(hash chainhash.Hash) bool {
	_, ok := s.blocks[hash]
	return ok
}

// Len returns the number of stored blocks.
func (s *BlockStorage) Len() int {
	return len(s.blocks)
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

func genesisHeader() wire.BlockHeader {
	return wire.BlockHeader{Timestamp: wire.GenesisTimestamp, DifficultyTarget: wire.InitialDifficulty}
}

func child(t *testing.T, prev wire.BlockHeader, nonce uint32) wire.BlockHeader {
	t.Helper()
	return wire.BlockHeader{
		PreviousBlockHash: prev.Hash(),
		Timestamp:         prev.Timestamp + 1,
		DifficultyTarget:  prev.DifficultyTarget,
		Nonce:             nonce,
	}
}

func TestInsertRejectsUnconnectedHeader(t *testing.T) {
	tree := NewBlockTree(genesisHeader())

	orphanHeader := wire.BlockHeader{Timestamp: 1}
	_, _, err := tree.Insert(orphanHeader)
	require.ErrorIs(t, err, ErrUnconnectedHeader)
}

func TestAncestorOfAnyNodeAtHeightZeroIsGenesis(t *testing.T) {
	genesis := genesisHeader()
	tree := NewBlockTree(genesis)

	a1 := child(t, genesis, 1)
	_, _, err := tree.Insert(a1)
	require.NoError(t, err)

	anc, ok := tree.Ancestor(a1.Hash(), 0)
	require.True(t, ok)
	require.Equal(t, tree.GenesisHash(), anc.Hash)
}

func TestHeightIsParentHeightPlusOne(t *testing.T) {
	genesis := genesisHeader()
	tree := NewBlockTree(genesis)

	a1 := child(t, genesis, 1)
	node, _, err := tree.Insert(a1)
	require.NoError(t, err)
	require.Equal(t, int32(1), node.Height)
}

func TestLocatorAtGenesisIsJustGenesis(t *testing.T) {
	tree := NewBlockTree(genesisHeader())
	require.Equal(t, []chainhash.Hash{tree.GenesisHash()}, tree.Locator(tree.GenesisHash()))
}

// TestReorgOnHeavierFork implements scenario S3: active chain genesis→a1→a2,
// then a heavier fork b1,b2,b3 arrives and becomes active.
func TestReorgOnHeavierFork(t *testing.T) {
	genesis := genesisHeader()
	tree := NewBlockTree(genesis)

	a1 := child(t, genesis, 1)
	_, _, err := tree.Insert(a1)
	require.NoError(t, err)
	a2 := child(t, a1, 1)
	_, _, err = tree.Insert(a2)
	require.NoError(t, err)

	require.Equal(t, a2.Hash(), tree.ActiveChain().Tip().Hash)

	b1 := child(t, genesis, 2)
	_, _, err = tree.Insert(b1)
	require.NoError(t, err)
	b2 := child(t, b1, 2)
	_, _, err = tree.Insert(b2)
	require.NoError(t, err)
	b3 := child(t, b2, 2)
	node3, reorg, err := tree.Insert(b3)
	require.NoError(t, err)
	require.NotNil(t, reorg)

	require.Equal(t, tree.GenesisHash(), reorg.ForkHash)
	require.Len(t, reorg.Removed, 2)
	require.Len(t, reorg.Added, 3)
	require.Equal(t, node3.Hash, tree.ActiveChain().Tip().Hash)
	require.Equal(t, []chainhash.Hash{genesis.Hash(), b1.Hash(), b2.Hash(), b3.Hash()}, tree.ActiveChain().Hashes())
}

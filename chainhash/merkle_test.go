// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerkleRootSingleLeaf(t *testing.T) {
	id := HashH([]byte("coinbase"))
	got := MerkleRoot([]Hash{id})
	require.Equal(t, HashH(id[:]), got)
}

func TestMerkleRootOddLeafDuplication(t *testing.T) {
	a := HashH([]byte("tx-a"))
	b := HashH([]byte("tx-b"))
	c := HashH([]byte("tx-c"))

	odd := MerkleRoot([]Hash{a, b, c})
	padded := MerkleRoot([]Hash{a, b, c, c})
	require.Equal(t, padded, odd)
}

func TestMerkleRootOrderSensitive(t *testing.T) {
	a := HashH([]byte("tx-a"))
	b := HashH([]byte("tx-b"))

	require.NotEqual(t, MerkleRoot([]Hash{a, b}), MerkleRoot([]Hash{b, a}))
}

func TestMerkleRootPanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() {
		MerkleRoot(nil)
	})
}

// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/wire"
)

func TestNewTemplatePaysScheduleReward(t *testing.T) {
	genesisHeader := wire.BlockHeader{Timestamp: wire.GenesisTimestamp, DifficultyTarget: wire.InitialDifficulty}
	tree := blockchain.NewBlockTree(genesisHeader)

	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	tmpl, err := NewTemplate(tree.ActiveChain().Tip(), priv.PubKey())
	require.NoError(t, err)
	require.Equal(t, int32(1), tmpl.Height)
	require.Equal(t, blockchain.BlockReward(1), tmpl.Block.Transactions[0].Outputs[0].Value)
	require.NoError(t, tmpl.Block.Validate())
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/didanet/didanode/chainhash"
)

func roundTrip(t *testing.T, msg Message) Message {
	t.Helper()

	var framed bytes.Buffer
	require.NoError(t, EncodeMessage(&framed, msg))

	got, err := ReadMessage(&framed)
	require.NoError(t, err)
	return got
}

func TestRoundTripVersionAndVerAck(t *testing.T) {
	got := roundTrip(t, NewMsgVersion())
	require.Equal(t, NewMsgVersion(), got)

	got = roundTrip(t, NewMsgVerAck())
	require.Equal(t, NewMsgVerAck(), got)
}

func TestRoundTripGetHeaders(t *testing.T) {
	locator := []chainhash.Hash{chainhash.HashH([]byte("genesis"))}
	got := roundTrip(t, NewMsgGetHeaders(locator))
	require.Equal(t, locator, got.(*MsgGetHeaders).Locator)
}

func TestRoundTripHeaders(t *testing.T) {
	hdrs := NewMsgHeaders()
	for i := 0; i < 3; i++ {
		require.NoError(t, hdrs.AddBlockHeader(&BlockHeader{
			PreviousBlockHash: chainhash.HashH([]byte{byte(i)}),
			Timestamp:         uint32(i),
			DifficultyTarget:  8,
		}))
	}

	got := roundTrip(t, hdrs).(*MsgHeaders)
	require.Len(t, got.Headers, 3)
	for i, h := range got.Headers {
		require.Equal(t, *hdrs.Headers[i], *h)
	}
}

func TestRoundTripBlockHeaderHash(t *testing.T) {
	hdr := &BlockHeader{Timestamp: 42, DifficultyTarget: 8, Nonce: 7}

	var buf bytes.Buffer
	require.NoError(t, hdr.Encode(&buf))

	var decoded BlockHeader
	require.NoError(t, decoded.Decode(&buf))

	require.Equal(t, hdr.Hash(), decoded.Hash())
}

func TestTransactionCoinbaseArity(t *testing.T) {
	coinbaseIn := &TxIn{PreviousOutPoint: OutPoint{Index: CoinbaseOutputIndex}}

	_, err := NewTransaction([]*TxIn{coinbaseIn, coinbaseIn}, []*TxOut{{Value: 50}})
	require.ErrorIs(t, err, ErrInvalidTransactionFormat)

	tx, err := NewTransaction([]*TxIn{coinbaseIn}, []*TxOut{{Value: 50}})
	require.NoError(t, err)
	require.True(t, tx.IsCoinbase())
}

func TestMsgBlockRoundTrip(t *testing.T) {
	coinbaseIn := &TxIn{PreviousOutPoint: OutPoint{Index: CoinbaseOutputIndex}}
	coinbase, err := NewTransaction([]*TxIn{coinbaseIn}, []*TxOut{{Value: GenesisReward}})
	require.NoError(t, err)

	b, err := NewBlock(BlockHeader{Timestamp: GenesisTimestamp, DifficultyTarget: InitialDifficulty}, []*Transaction{coinbase})
	require.NoError(t, err)

	got := roundTrip(t, NewMsgBlockFromBlock(b)).(*MsgBlock)
	decoded, err := got.Block()
	require.NoError(t, err)
	require.Equal(t, b.ID(), decoded.ID())
}

func TestJSONRPCRoundTrip(t *testing.T) {
	req := &MsgJSONRPCRequest{ID: 7, Method: MethodSubmitBlock, Params: []byte("payload")}
	got := roundTrip(t, req).(*MsgJSONRPCRequest)
	require.Equal(t, req, got)

	resp := &MsgJSONRPCResponse{ID: 7, OK: false, Err: "boom"}
	gotResp := roundTrip(t, resp).(*MsgJSONRPCResponse)
	require.Equal(t, resp, gotResp)
}

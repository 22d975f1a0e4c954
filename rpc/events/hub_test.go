// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/chainhash"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHubPublishTipReachesSubscriber(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv)
	defer conn.Close()

	time.Sleep(10 * time.Millisecond) // allow registration goroutine to run

	tip := &blockchain.BlockIndexNode{Hash: chainhash.Hash{1}, Height: 7}
	hub.PublishTip(tip)

	_, body, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(body), `"type":"tip"`)
	require.Contains(t, string(body), `"height":7`)
}

func TestHubPublishReorgReachesSubscriber(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv)
	defer conn.Close()

	time.Sleep(10 * time.Millisecond)

	reorg := &blockchain.ReorgEvent{
		ForkHash: chainhash.Hash{2},
		Removed:  []*blockchain.BlockIndexNode{{Hash: chainhash.Hash{3}}},
		Added:    []*blockchain.BlockIndexNode{{Hash: chainhash.Hash{4}}},
	}
	hub.PublishReorg(reorg, chainhash.Hash{4})

	_, body, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(body), `"type":"reorg"`)
}

// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events publishes chain reorganisation and new-tip notifications
// over a websocket feed, for external collaborators such as a wallet or
// block explorer that want to react to chain changes without polling.
package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/chainhash"
)

// Notification is the JSON payload sent to every subscriber.
type Notification struct {
	Type     string            `json:"type"`
	Tip      chainhash.Hash    `json:"tip"`
	Height   int32             `json:"height,omitempty"`
	ForkHash *chainhash.Hash   `json:"fork_hash,omitempty"`
	Removed  []chainhash.Hash  `json:"removed,omitempty"`
	Added    []chainhash.Hash  `json:"added,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans chain events out to every currently-subscribed websocket
// client. It is safe for concurrent use: the HTTP server that accepts
// subscriptions runs on its own goroutines, independent of the node's
// single-threaded cooperative loop.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// ServeHTTP upgrades the connection and registers it as a subscriber
// until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go h.readUntilClosed(conn)
}

func (h *Hub) readUntilClosed(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// PublishTip sends a new-tip notification to every subscriber.
func (h *Hub) PublishTip(tip *blockchain.BlockIndexNode) {
	h.broadcast(Notification{Type: "tip", Tip: tip.Hash, Height: tip.Height})
}

// PublishReorg sends a reorg notification describing the splice that
// blockchain.BlockTree.Insert performed.
func (h *Hub) PublishReorg(reorg *blockchain.ReorgEvent, newTip chainhash.Hash) {
	removed := make([]chainhash.Hash, len(reorg.Removed))
	for i, n := range reorg.Removed {
		removed[i] = n.Hash
	}
	added := make([]chainhash.Hash, len(reorg.Added))
	for i, n := range reorg.Added {
		added[i] = n.Hash
	}

	forkHash := reorg.ForkHash
	h.broadcast(Notification{
		Type:     "reorg",
		Tip:      newTip,
		ForkHash: &forkHash,
		Removed:  removed,
		Added:    added,
	})
}

func (h *Hub) broadcast(n Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, body); err != nil {
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/peer"
	"github.com/didanet/didanode/wire"
)

// startHeadersSync selects addr as the sync peer and sends the first
// GetHeaders request from the active tip.
func (n *Node) startHeadersSync(addr string, c *peer.Connection) {
	n.syncPeer = addr
	c.IsSyncPeer = true
	n.requestHeaders(addr, c, n.tree.ActiveChain().Tip().Hash)
}

func (n *Node) requestHeaders(addr string, c *peer.Connection, from chainhash.Hash) {
	locator := n.tree.Locator(from)
	n.net.Send(addr, wire.NewMsgGetHeaders(locator))
	c.HeadersRequestSentAt = time.Now()
}

// handleHeaders inserts every new header in order, closes the peer on an
// unconnected header, and continues or completes the sync depending on
// whether anything new arrived.
func (n *Node) handleHeaders(addr string, c *peer.Connection, msg *wire.MsgHeaders) {
	// The outstanding GetHeaders request is answered.
	c.HeadersRequestSentAt = time.Time{}

	var lastNew chainhash.Hash
	newCount := 0

	for _, h := range msg.Headers {
		hash := h.Hash()
		if n.tree.Exists(hash) {
			continue
		}
		if !n.tree.Exists(h.PreviousBlockHash) {
			logger.Debugf("peer %s: headers do not connect", addr)
			n.net.MarkMisbehaving(addr)
			return
		}
		tip, reorg, err := n.tree.Insert(*h)
		if err != nil {
			logger.Debugf("peer %s: header insert failed: %v", addr, err)
			n.net.MarkMisbehaving(addr)
			return
		}
		n.publishChainUpdate(tip, reorg)
		lastNew = hash
		newCount++
	}

	c.LastKnownHash = n.tree.ActiveChain().Tip().Hash
	if newCount > 0 {
		c.LastKnownHash = lastNew
		n.requestHeaders(addr, c, lastNew)
		return
	}

	if c.IsSyncPeer {
		n.syncComplete = true
		logger.Infof("initial headers sync complete via %s at height %d",
			addr, n.tree.ActiveChain().Height())

		for otherAddr, other := range n.net.Conns() {
			if otherAddr == addr || other.State != peer.StateReady {
				continue
			}
			n.requestHeaders(otherAddr, other, c.LastKnownHash)
		}
	}
}

// handleGetHeaders answers a peer's GetHeaders request.
func (n *Node) handleGetHeaders(addr string, msg *wire.MsgGetHeaders) {
	active := n.tree.ActiveChain()

	var forkHeight int32 = -1
	for _, h := range msg.Locator {
		if height, ok := active.HeightOf(h); ok {
			forkHeight = height
			break
		}
	}
	if forkHeight < 0 {
		logger.Debugf("peer %s: getheaders locator missing genesis", addr)
		n.net.MarkMisbehaving(addr)
		return
	}

	reply := wire.NewMsgHeaders()
	for height := forkHeight + 1; height <= active.Height() && len(reply.Headers) < wire.MaxHeadersPerMsg; height++ {
		node, ok := active.NodeAtHeight(height)
		if !ok {
			break
		}
		header := node.Header
		if err := reply.AddBlockHeader(&header); err != nil {
			break
		}
	}
	n.net.Send(addr, reply)
}

// checkHeadersTimeout closes addr if its outstanding GetHeaders request
// has been unanswered for longer than HeadersTimeout.
func (n *Node) checkHeadersTimeout(addr string, c *peer.Connection) {
	if c.HeadersRequestSentAt.IsZero() {
		return
	}
	if time.Since(c.HeadersRequestSentAt) < HeadersTimeout {
		return
	}

	logger.Debugf("peer %s: headers request timed out", addr)
	if c.IsSyncPeer {
		n.syncPeer = ""
	}
	n.net.MarkMisbehaving(addr)
}

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

// inFlightRequest records one outstanding GetBlockData item.
type inFlightRequest struct {
	peer   string
	sentAt time.Time
}

// scheduleBlockDownloads runs the block download scheduler for a single
// Ready peer: while its in-flight count is below P, it walks the
// window between last_common_block and last_known_hash collecting hashes
// not yet in storage or in flight, and issues one batched GetBlockData.
func (n *Node) scheduleBlockDownloads(addr string, c *peer.Connection) {
	if c.State != peer.StateReady || c.LastKnownHash == (chainhash.Hash{}) {
		return
	}

	knownNode, ok := n.tree.Node(c.LastKnownHash)
	if !ok {
		return
	}

	commonNode, ok := n.tree.Node(c.LastCommonBlock)
	if !ok {
		commonNode, _ = n.tree.Node(n.tree.GenesisHash())
		c.LastCommonBlock = commonNode.Hash
	}

	// Advance last_common_block past any prefix already fully stored.
	for {
		next, ok := n.tree.Ancestor(c.LastKnownHash, commonNode.Height+1)
		if !ok || !n.storage.Has(next.Hash) {
			break
		}
		commonNode = next
		c.LastCommonBlock = commonNode.Hash
	}

	hMax := commonNode.Height + wire.BlockDownloadWindow
	if knownNode.Height < hMax {
		hMax = knownNode.Height
	}

	want := wire.MaxBlocksInTransit - c.NumBlocksInTransit
	if want <= 0 || hMax <= commonNode.Height {
		return
	}

	var batch []chainhash.Hash
	for h := hMax; h > commonNode.Height && len(batch) < want; h-- {
		node, ok := n.tree.Ancestor(c.LastKnownHash, h)
		if !ok {
			continue
		}
		if n.storage.Has(node.Hash) {
			continue
		}
		if _, inFlight := n.inFlight[node.Hash]; inFlight {
			continue
		}
		batch = append(batch, node.Hash)
	}
	if len(batch) == 0 {
		return
	}

	// Request in ascending height order, maximising the chance of a
	// parent-before-child arrival.
	for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
		batch[i], batch[j] = batch[j], batch[i]
	}

	for _, h := range batch {
		n.inFlight[h] = inFlightRequest{peer: addr, sentAt: time.Now()}
	}
	c.NumBlocksInTransit += len(batch)
	n.net.Send(addr, wire.NewMsgGetBlockData(batch))
}

// handleBlock releases the in-flight entry, stores the block, and either
// activates it or files it as an orphan depending on whether its parent
// is already in the tree.
func (n *Node) handleBlock(addr string, c *peer.Connection, msg *wire.MsgBlock) {
	b, err := msg.Block()
	if err != nil {
		logger.Debugf("peer %s: invalid block: %v", addr, err)
		n.net.MarkMisbehaving(addr)
		return
	}

	id := b.ID()
	if req, ok := n.inFlight[id]; ok {
		delete(n.inFlight, id)
		if rc, ok := n.net.Conns()[req.peer]; ok && rc.NumBlocksInTransit > 0 {
			rc.NumBlocksInTransit--
		}
	}

	n.storage.Insert(b)
	n.acceptBlock(b)
}

// acceptBlock activates b if its parent is known, first inserting its
// header into the tree when it is not already there; otherwise it files b
// in the orphan pool. Accepting a block that connects may in turn release
// orphans waiting on it.
func (n *Node) acceptBlock(b *wire.Block) {
	id := b.ID()

	if !n.tree.Exists(b.Header.PreviousBlockHash) && b.Header.PreviousBlockHash != n.tree.GenesisHash() {
		n.orphans.Insert(b)
		return
	}

	if !n.tree.Exists(id) {
		tip, reorg, err := n.tree.Insert(b.Header)
		if err != nil {
			logger.Debugf("block %s rejected: %v", id, err)
			return
		}
		n.publishChainUpdate(tip, reorg)
	}

	for _, orphan := range n.orphans.Remove(id) {
		n.storage.Insert(orphan)
		n.acceptBlock(orphan)
	}
}

// checkBlockTimeouts releases in-flight entries whose deadline has
// passed, so the scheduler can re-request them from another peer.
func (n *Node) checkBlockTimeouts() {
	for hash, req := range n.inFlight {
		if time.Since(req.sentAt) < BlockTimeout {
			continue
		}
		logger.Debugf("block %s from %s timed out", hash, req.peer)
		delete(n.inFlight, hash)
		if c, ok := n.net.Conns()[req.peer]; ok {
			if c.NumBlocksInTransit > 0 {
				c.NumBlocksInTransit--
			}
			n.net.MarkMisbehaving(req.peer)
		}
	}
}

// handleGetBlockData answers a peer's GetBlockData request.
func (n *Node) handleGetBlockData(addr string, msg *wire.MsgGetBlockData) {
	for _, h := range msg.Hashes {
		b, ok := n.storage.Get(h)
		if !ok {
			logger.Debugf("peer %s: requested unknown block %s", addr, h)
			n.net.MarkMisbehaving(addr)
			return
		}
		n.net.Send(addr, wire.NewMsgBlockFromBlock(b))
	}
}

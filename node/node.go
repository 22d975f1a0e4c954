// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"time"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/peer"
	"github.com/didanet/didanode/rpc"
	"github.com/didanet/didanode/rpc/events"
	"github.com/didanet/didanode/wire"
)

// tickSleep is the sleep at the end of every loop iteration.
const tickSleep = 1 * time.Millisecond

// Node owns the block tree, storage, orphan pool and every peer
// connection exclusively; it is driven by a single goroutine running
// Run, so none of its state needs synchronization.
type Node struct {
	cfg Config

	net     *peer.Network
	tree    *blockchain.BlockTree
	storage *blockchain.BlockStorage
	orphans *blockchain.OrphanPool
	events  *events.Hub

	syncPeer     string
	syncComplete bool

	inFlight map[chainhash.Hash]inFlightRequest

	// pendingDials carries addresses from RequestDial, which an external
	// goroutine (e.g. the --peers file watcher) may call at any time;
	// tick drains it so only the loop goroutine ever touches n.net.
	pendingDials chan string
}

// pendingDialBacklog bounds how many un-drained dial requests RequestDial
// will queue before silently dropping further ones.
const pendingDialBacklog = 64

// New constructs a Node bound to cfg's genesis header and binds the listen
// socket at cfg's listen address, but does not yet dial bootstrap peers;
// call Run to start the cooperative loop.
func New(cfg Config) (*Node, error) {
	net, err := peer.Listen(cfg.ListenAddr)
	if err != nil {
		return nil, err
	}

	return &Node{
		cfg:      cfg,
		net:      net,
		tree:     newTree(cfg.ChainParams),
		storage:  blockchain.NewBlockStorage(),
		orphans:  blockchain.NewOrphanPool(),
		events:       events.NewHub(),
		inFlight:     make(map[chainhash.Hash]inFlightRequest),
		pendingDials: make(chan string, pendingDialBacklog),
	}, nil
}

// RequestDial asks the node to dial addr as an additional outbound peer on
// its next tick. Safe to call from any goroutine; excess requests beyond
// pendingDialBacklog are dropped rather than blocking the caller.
func (n *Node) RequestDial(addr string) {
	select {
	case n.pendingDials <- addr:
	default:
		logger.Warnf("dial request for %s dropped, backlog full", addr)
	}
}

func (n *Node) dialPeer(addr string) {
	dialer := n.cfg.Dialer
	if dialer == nil {
		dialer = peer.DirectDialer()
	}
	if _, err := n.net.Dial(dialer, addr); err != nil {
		logger.Warnf("failed to dial peer %s: %v", addr, err)
		return
	}
	// Outbound connections send Version immediately.
	n.net.Send(addr, wire.NewMsgVersion())
}

// Events returns the websocket hub that publishes new-tip and reorg
// notifications, for a caller to mount on an HTTP mux.
func (n *Node) Events() *events.Hub {
	return n.events
}

// publishChainUpdate notifies subscribers of a reorg, or of a plain tip
// advance when inserted became the new active tip without one. inserted is
// BlockTree.Insert's returned node, which may be a side-branch block that
// never became active; in that case nothing is published.
func (n *Node) publishChainUpdate(inserted *blockchain.BlockIndexNode, reorg *blockchain.ReorgEvent) {
	tip := n.tree.ActiveChain().Tip()
	if reorg != nil {
		n.events.PublishReorg(reorg, tip.Hash)
		return
	}
	if inserted.Hash == tip.Hash {
		n.events.PublishTip(tip)
	}
}

// Tip returns the current active chain tip, for RPC and miner queries.
func (n *Node) Tip() *blockchain.BlockIndexNode {
	return n.tree.ActiveChain().Tip()
}

// Tree exposes the block tree for read-only RPC queries.
func (n *Node) Tree() *blockchain.BlockTree {
	return n.tree
}

// Storage exposes the block store for read-only RPC queries.
func (n *Node) Storage() *blockchain.BlockStorage {
	return n.storage
}

// SubmitBlock accepts a mined block from an external collaborator (the
// miner process, via RPC) exactly as if it had arrived from a peer.
func (n *Node) SubmitBlock(b *wire.Block) error {
	if err := b.Validate(); err != nil {
		return err
	}
	n.storage.Insert(b)
	n.acceptBlock(b)
	return nil
}

// Run dials the configured bootstrap peers once, then executes the
// cooperative loop until ctx is cancelled: accept, dispatch, per-peer
// tick, sweep, sleep.
func (n *Node) Run(ctx context.Context) error {
	for _, addr := range n.cfg.BootstrapPeers {
		n.dialPeer(addr)
	}

	ticker := time.NewTicker(tickSleep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n.tick()
		}
	}
}

func (n *Node) tick() {
	n.drainPendingDials()
	n.net.AcceptNewPeers()

	for addr, msgs := range n.net.ReceiveAll() {
		c, ok := n.net.Conns()[addr]
		if !ok {
			continue
		}
		for _, msg := range msgs {
			n.dispatch(addr, c, msg)
		}
	}

	for addr, c := range n.net.Conns() {
		n.checkHeadersTimeout(addr, c)
		n.scheduleBlockDownloads(addr, c)
	}
	n.checkBlockTimeouts()

	n.net.DropMisbehavingPeers()
}

func (n *Node) drainPendingDials() {
	for {
		select {
		case addr := <-n.pendingDials:
			n.dialPeer(addr)
		default:
			return
		}
	}
}

// dispatch routes a single decoded message to its handler based on the
// peer's current handshake state.
func (n *Node) dispatch(addr string, c *peer.Connection, msg wire.Message) {
	switch m := msg.(type) {
	case *wire.MsgVersion:
		n.handleVersion(addr, c, m)
	case *wire.MsgVerAck:
		n.handleVerAck(addr, c)
	default:
		if c.State != peer.StateReady {
			logger.Debugf("peer %s: unexpected message %s before handshake complete", addr, msg.Ordinal())
			n.net.MarkMisbehaving(addr)
			return
		}
		switch m := msg.(type) {
		case *wire.MsgGetHeaders:
			n.handleGetHeaders(addr, m)
		case *wire.MsgHeaders:
			n.handleHeaders(addr, c, m)
		case *wire.MsgGetBlockData:
			n.handleGetBlockData(addr, m)
		case *wire.MsgBlock:
			n.handleBlock(addr, c, m)
		case *wire.MsgJSONRPCRequest:
			resp := rpc.HandleRequest(n, m, n.cfg.MinerRewardKey)
			n.net.Send(addr, resp)
		case *wire.MsgJSONRPCResponse:
			// The node never issues RPC requests of its own; a peer
			// sending one is ignored rather than treated as misbehaviour.
		default:
			logger.Debugf("peer %s: unhandled message type", addr)
		}
	}
}

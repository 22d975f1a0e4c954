// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/didanet/didanode/peer"
	"github.com/didanet/didanode/wire"
)

// handleVersion advances a peer's handshake state on receipt of a Version
// message. A version announcing an incompatible protocol closes the peer;
// a redundant Version in Ready is logged and ignored.
func (n *Node) handleVersion(addr string, c *peer.Connection, msg *wire.MsgVersion) {
	switch c.State {
	case peer.StateExpectVersion:
		if msg.Version != wire.ProtocolVersion {
			logger.Debugf("peer %s: incompatible version %d", addr, msg.Version)
			n.net.MarkMisbehaving(addr)
			return
		}
		n.net.Send(addr, wire.NewMsgVerAck())
		c.State = peer.StateReady
		n.onPeerReady(addr, c)
	case peer.StateExpectVerack:
		logger.Debugf("peer %s: redundant version while awaiting verack", addr)
	case peer.StateReady:
		logger.Debugf("peer %s: redundant version", addr)
	}
}

// handleVerAck advances a peer's handshake state on receipt of a VerAck.
func (n *Node) handleVerAck(addr string, c *peer.Connection) {
	switch c.State {
	case peer.StateExpectVerack:
		c.State = peer.StateReady
		n.onPeerReady(addr, c)
	case peer.StateExpectVersion:
		logger.Debugf("peer %s: redundant verack while awaiting version", addr)
	case peer.StateReady:
		logger.Debugf("peer %s: redundant verack", addr)
	}
}

// onPeerReady runs once a peer first reaches Ready: it becomes the sync
// peer if none is active yet and initial sync is incomplete.
func (n *Node) onPeerReady(addr string, c *peer.Connection) {
	logger.Infof("peer %s ready", addr)
	if n.syncPeer == "" && !n.syncComplete {
		n.startHeadersSync(addr, c)
	}
}

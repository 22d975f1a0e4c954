// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"net"
	"time"

	"github.com/aead/siphash"
	"github.com/decred/dcrd/lru"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"

	"github.com/didanet/didanode/log"
)

var logger log.Logger = log.Disabled

// UseLogger wires a subsystem logger for the peer package.
func UseLogger(l log.Logger) { logger = l }

// banCooldownSize bounds how many recently-dropped addresses the network
// remembers to apply a brief re-accept cooldown to.
const banCooldownSize = 256

// banCooldown is how long a dropped address is refused re-acceptance.
const banCooldown = 30 * time.Second

// Network owns every live Connection, the accept socket, and the
// write-only misbehaving-peer accumulator. It is exclusively owned by
// the node's single cooperative loop.
type Network struct {
	listener *net.TCPListener

	conns       map[string]*Connection
	misbehaving map[string]struct{}

	recentlyDropped     *lru.Cache[string]
	recentlyDroppedTime map[string]time.Time

	inventorySeen *lru.Cache[uint64]
	siphashKey    [16]byte
}

// Listen binds addr and returns a Network ready to accept inbound peers.
func Listen(addr string) (*Network, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}
	ln, err := net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		return nil, err
	}
	if err := ln.SetDeadline(time.Time{}); err != nil {
		return nil, err
	}

	return &Network{
		listener:            ln,
		conns:               make(map[string]*Connection),
		misbehaving:         make(map[string]struct{}),
		recentlyDropped:     lru.NewCache[string](banCooldownSize),
		recentlyDroppedTime: make(map[string]time.Time),
		inventorySeen:       lru.NewCache[uint64](4096),
	}, nil
}

// AcceptNewPeers drains the non-blocking accept queue and returns the
// addresses of newly admitted inbound peers. Addresses in cooldown after
// a recent drop are refused.
func (n *Network) AcceptNewPeers() []string {
	var accepted []string
	for {
		_ = n.listener.SetDeadline(time.Now().Add(pollDeadline))
		conn, err := n.listener.AcceptTCP()
		if err != nil {
			break
		}

		addr := conn.RemoteAddr().String()
		if n.recentlyDropped.Contains(addr) {
			if droppedAt, ok := n.recentlyDroppedTime[addr]; ok && time.Since(droppedAt) < banCooldown {
				_ = conn.Close()
				continue
			}
		}

		n.conns[addr] = NewConnection(addr, conn, StateExpectVersion)
		accepted = append(accepted, addr)
		logger.Debugf("accepted inbound peer %s", addr)
	}
	return accepted
}

// Dial establishes an outbound connection to addr via d and registers it
// as a Connection expecting to send Version first.
func (n *Network) Dial(d Dialer, addr string) (*Connection, error) {
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c := NewConnection(addr, conn, StateExpectVerack)
	n.conns[addr] = c
	return c, nil
}

// Conns returns every currently connected peer, keyed by address.
func (n *Network) Conns() map[string]*Connection {
	return n.conns
}

// ReceiveAll drains decoded messages for every connected peer. A peer
// whose connection errors is marked misbehaving rather than the error
// propagating to the caller.
func (n *Network) ReceiveAll() map[string][]wire.Message {
	out := make(map[string][]wire.Message, len(n.conns))
	for addr, c := range n.conns {
		msgs, err := c.ReceiveAll()
		if len(msgs) > 0 {
			out[addr] = msgs
		}
		if err != nil {
			n.MarkMisbehaving(addr)
		}
	}
	return out
}

// Send writes msg to the peer at addr. A WouldBlock or I/O error marks
// the peer misbehaving rather than returning to the caller.
func (n *Network) Send(addr string, msg wire.Message) {
	c, ok := n.conns[addr]
	if !ok {
		return
	}
	if err := c.Send(msg); err != nil {
		logger.Debugf("send to %s failed: %v", addr, err)
		n.MarkMisbehaving(addr)
	}
}

// Broadcast sends msg to every connected peer.
func (n *Network) Broadcast(msg wire.Message) {
	for addr := range n.conns {
		n.Send(addr, msg)
	}
}

// MarkMisbehaving adds addr to the write-only misbehaving accumulator.
func (n *Network) MarkMisbehaving(addr string) {
	n.misbehaving[addr] = struct{}{}
}

// DropMisbehavingPeers closes and forgets every currently-marked peer in
// one pass, recording the address for a short re-accept cooldown, then
// empties the accumulator.
func (n *Network) DropMisbehavingPeers() []string {
	dropped := make([]string, 0, len(n.misbehaving))
	for addr := range n.misbehaving {
		n.ClosePeerConnection(addr)
		dropped = append(dropped, addr)
	}
	n.misbehaving = make(map[string]struct{})
	return dropped
}

// ClosePeerConnection immediately drops addr, independent of the
// misbehaving accumulator.
func (n *Network) ClosePeerConnection(addr string) {
	c, ok := n.conns[addr]
	if !ok {
		return
	}
	_ = c.Close()
	delete(n.conns, addr)
	n.recentlyDropped.Add(addr)
	n.recentlyDroppedTime[addr] = time.Now()
}

// SeenInventory reports whether id has already been relayed to peers,
// remembering it for future calls if not. It uses siphash over the raw
// block id bytes as a fast, non-cryptographic key so the dedup cache
// doesn't need to store full 32-byte hashes.
func (n *Network) SeenInventory(id chainhash.Hash) bool {
	h, _ := siphash.New64(n.siphashKey[:])
	h.Write(id[:])
	key := h.Sum64()

	if n.inventorySeen.Contains(key) {
		return true
	}
	n.inventorySeen.Add(key)
	return false
}

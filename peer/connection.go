// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"net"
	"time"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

// ErrWouldBlock is returned by Send when the underlying socket's send
// buffer is full. Node policy treats this as
// peer misbehaviour rather than queueing, matching the reference.
var ErrWouldBlock = errors.New("peer: send would block")

// HandshakeState tracks where a Connection sits in the version/verack
// exchange before it is admitted to Ready.
type HandshakeState int

const (
	StateExpectVersion HandshakeState = iota
	StateExpectVerack
	StateReady
)

// Connection is the per-peer transport and handshake/sync bookkeeping
// record. The node owns every Connection exclusively; nothing here is
// safe for concurrent use from more than one goroutine; the cooperative
// main loop is the only writer.
type Connection struct {
	Addr string
	conn net.Conn
	recv *FlipBuffer

	State HandshakeState

	LastKnownHash        chainhash.Hash
	LastCommonBlock      chainhash.Hash
	NumBlocksInTransit   int
	HeadersRequestSentAt time.Time
	IsSyncPeer           bool

	Misbehaving bool
}

// NewConnection wraps conn (already established, inbound or outbound) in
// a Connection with an empty receive buffer and the given initial
// handshake state.
func NewConnection(addr string, conn net.Conn, initial HandshakeState) *Connection {
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = markNonblocking(tc)
	}
	return &Connection{
		Addr:  addr,
		conn:  conn,
		recv:  NewFlipBuffer(64 * 1024),
		State: initial,
	}
}

// Close releases the underlying socket.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// ReceiveAll drains every fully-framed message currently buffered or
// newly readable off the socket, in arrival order. It never blocks
// beyond pollDeadline: a read that would otherwise block returns (nil,
// nil) for that attempt and the loop moves to the next peer.
func (c *Connection) ReceiveAll() ([]wire.Message, error) {
	c.recv.Flip()

	_ = c.conn.SetReadDeadline(time.Now().Add(pollDeadline))
	for {
		n, err := c.conn.Read(c.recv.Writable())
		if n > 0 {
			c.recv.ConsumeFreeSpace(n)
		}
		if err != nil {
			if isTimeout(err) {
				break
			}
			if n == 0 {
				return nil, errConnectionLost
			}
			break
		}
		if n == 0 {
			return nil, errConnectionLost
		}
		if len(c.recv.Writable()) == 0 {
			break
		}
	}

	var msgs []wire.Message
	for {
		msg, consumed, err := tryDecodeOne(c.recv.Readable())
		if err != nil {
			return msgs, err
		}
		if msg == nil {
			break
		}
		c.recv.ConsumeData(consumed)
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

var errConnectionLost = errors.New("peer: connection lost")

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	te, ok := err.(timeouter)
	return ok && te.Timeout()
}

// tryDecodeOne attempts to decode a single framed message from buf. It
// returns (nil, 0, nil) when buf does not yet hold a full frame.
func tryDecodeOne(buf []byte) (wire.Message, int, error) {
	const headerLen = 4
	if len(buf) < headerLen {
		return nil, 0, nil
	}
	payloadLen := binary.LittleEndian.Uint32(buf[:headerLen])
	if payloadLen > wire.MaxMessagePayload {
		return nil, 0, errors.New("peer: message payload exceeds maximum size")
	}
	total := headerLen + int(payloadLen)
	if len(buf) < total {
		return nil, 0, nil
	}

	msg, err := wire.DecodePayload(buf[headerLen:total])
	if err != nil {
		return nil, 0, err
	}
	return msg, total, nil
}

// Send serialises msg and writes it in one call. A partial write that
// would block returns ErrWouldBlock rather than buffering the remainder,
// matching the reference's flow-control-as-misbehaviour policy.
func (c *Connection) Send(msg wire.Message) error {
	var buf bytes.Buffer
	if err := wire.EncodeMessage(&buf, msg); err != nil {
		return err
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(pollDeadline))
	n, err := c.conn.Write(buf.Bytes())
	if err != nil {
		if isTimeout(err) {
			return ErrWouldBlock
		}
		return err
	}
	if n != buf.Len() {
		return ErrWouldBlock
	}
	return nil
}

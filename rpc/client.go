// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"errors"
	"net"
	"time"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

// Client is a simple blocking JSON-RPC-tagged client used by the CLI and
// miner: both are external collaborators that talk to the node only over
// the framed peer wire protocol, never sharing memory with it.
type Client struct {
	conn   net.Conn
	nextID uint64
}

// Dial connects to addr, completes the peer handshake, and returns a
// ready Client.
func Dial(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return nil, err
	}

	if err := wire.EncodeMessage(conn, wire.NewMsgVersion()); err != nil {
		_ = conn.Close()
		return nil, err
	}
	msg, err := wire.ReadMessage(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, ok := msg.(*wire.MsgVerAck); !ok {
		_ = conn.Close()
		return nil, errors.New("rpc: handshake failed, expected verack")
	}

	return &Client{conn: conn}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) call(method wire.RPCMethod, params []byte) (*wire.MsgJSONRPCResponse, error) {
	c.nextID++
	req := &wire.MsgJSONRPCRequest{ID: c.nextID, Method: method, Params: params}
	if err := wire.EncodeMessage(c.conn, req); err != nil {
		return nil, err
	}

	msg, err := wire.ReadMessage(c.conn)
	if err != nil {
		return nil, err
	}
	resp, ok := msg.(*wire.MsgJSONRPCResponse)
	if !ok {
		return nil, errors.New("rpc: unexpected reply type")
	}
	if resp.ID != req.ID {
		return nil, errors.New("rpc: mismatched response id")
	}
	if !resp.OK {
		return nil, errors.New("rpc: " + resp.Err)
	}
	return resp, nil
}

// GetBlockTemplate fetches a fresh candidate block to search.
func (c *Client) GetBlockTemplate() (*wire.Block, error) {
	resp, err := c.call(wire.MethodGetBlockTemplate, nil)
	if err != nil {
		return nil, err
	}
	return decodeBlock(resp.Result)
}

// SubmitBlock submits a mined block.
func (c *Client) SubmitBlock(b *wire.Block) error {
	body, err := encodeBlock(b)
	if err != nil {
		return err
	}
	_, err = c.call(wire.MethodSubmitBlock, body)
	return err
}

// GetTip returns the current active chain tip hash.
func (c *Client) GetTip() (chainhash.Hash, error) {
	resp, err := c.call(wire.MethodGetTip, nil)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return decodeHash(resp.Result)
}

// GetBlockCount returns the active chain's height.
func (c *Client) GetBlockCount() (uint32, error) {
	resp, err := c.call(wire.MethodGetBlockCount, nil)
	if err != nil {
		return 0, err
	}
	return decodeUint32(resp.Result)
}

// GetBlock fetches a full block by hash.
func (c *Client) GetBlock(hash chainhash.Hash) (*wire.Block, error) {
	resp, err := c.call(wire.MethodGetBlock, encodeHash(hash))
	if err != nil {
		return nil, err
	}
	return decodeBlock(resp.Result)
}

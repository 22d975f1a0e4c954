// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc implements the typed request/response wrappers carried
// over wire.MsgJSONRPCRequest/Response: the miner
// polls GetBlockTemplate and submits SubmitBlock, and a CLI client can
// query GetTip/GetBlockCount/GetBlock. Despite the "JSON" name inherited
// from the wire ordinal, params and results use didanode's own tagged
// binary encoding, matching the rest of the wire package (msgjsonrpc.go).
package rpc

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/wire"
)

func encodeHash(h chainhash.Hash) []byte {
	return append([]byte(nil), h[:]...)
}

func decodeHash(b []byte) (chainhash.Hash, error) {
	var h chainhash.Hash
	if len(b) != chainhash.HashSize {
		return h, errors.New("rpc: bad hash length")
	}
	copy(h[:], b)
	return h, nil
}

func encodeUint32(v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return buf[:]
}

func decodeUint32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, errors.New("rpc: bad uint32 length")
	}
	return binary.LittleEndian.Uint32(b), nil
}

func encodeBlock(b *wire.Block) ([]byte, error) {
	var buf bytes.Buffer
	msg := wire.NewMsgBlockFromBlock(b)
	if err := msg.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeBlock(b []byte) (*wire.Block, error) {
	msg := &wire.MsgBlock{}
	if err := msg.Decode(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return msg.Block()
}

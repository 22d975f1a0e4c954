// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/mining"
	"github.com/didanet/didanode/wire"
)

// Backend is the subset of *node.Node the RPC handler needs. It is
// satisfied structurally so this package never imports node, avoiding an
// import cycle with node's own peer dispatch.
type Backend interface {
	Tip() *blockchain.BlockIndexNode
	Tree() *blockchain.BlockTree
	Storage() *blockchain.BlockStorage
	SubmitBlock(b *wire.Block) error
}

// HandleRequest dispatches req against backend and returns the response
// to send back over the same peer connection. rewardKey names the
// address GetBlockTemplate's coinbase pays.
func HandleRequest(backend Backend, req *wire.MsgJSONRPCRequest, rewardKey *secp256k1.PublicKey) *wire.MsgJSONRPCResponse {
	resp := &wire.MsgJSONRPCResponse{ID: req.ID}

	switch req.Method {
	case wire.MethodGetBlockTemplate:
		tmpl, err := mining.NewTemplate(backend.Tip(), rewardKey)
		if err != nil {
			resp.Err = err.Error()
			return resp
		}
		body, err := encodeBlock(tmpl.Block)
		if err != nil {
			resp.Err = err.Error()
			return resp
		}
		resp.OK = true
		resp.Result = body

	case wire.MethodSubmitBlock:
		b, err := decodeBlock(req.Params)
		if err != nil {
			resp.Err = err.Error()
			return resp
		}
		if err := backend.SubmitBlock(b); err != nil {
			resp.Err = err.Error()
			return resp
		}
		resp.OK = true

	case wire.MethodGetTip:
		resp.OK = true
		resp.Result = encodeHash(backend.Tip().Hash)

	case wire.MethodGetBlockCount:
		resp.OK = true
		resp.Result = encodeUint32(uint32(backend.Tip().Height))

	case wire.MethodGetBlock:
		hash, err := decodeHash(req.Params)
		if err != nil {
			resp.Err = err.Error()
			return resp
		}
		b, ok := backend.Storage().Get(hash)
		if !ok {
			resp.Err = "unknown block"
			return resp
		}
		body, err := encodeBlock(b)
		if err != nil {
			resp.Err = err.Error()
			return resp
		}
		resp.OK = true
		resp.Result = body

	default:
		resp.Err = "unknown method"
	}

	return resp
}

// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// RPCMethod enumerates the methods a didanode JsonRpcRequest may name. Despite the name, these travel over the same
// framed TCP wire as every other message.
type RPCMethod byte

const (
	// MethodGetBlockTemplate is polled by the miner for a fresh
	// candidate block to search.
	MethodGetBlockTemplate RPCMethod = iota

	// MethodSubmitBlock is sent by the miner once ComputeNonce succeeds.
	MethodSubmitBlock

	// MethodGetTip returns the current active chain tip.
	MethodGetTip

	// MethodGetBlockCount returns the active chain's height.
	MethodGetBlockCount

	// MethodGetBlock fetches a full block by hash.
	MethodGetBlock
)

// MsgJSONRPCRequest carries an id plus a method tag. Params is an opaque,
// method-specific payload encoded by the rpc package (e.g. the candidate
// block for SubmitBlock, a hash for GetBlock).
type MsgJSONRPCRequest struct {
	ID     uint64
	Method RPCMethod
	Params []byte
}

func (msg *MsgJSONRPCRequest) Ordinal() MessageOrdinal { return OrdinalJSONRPCRequest }

func (msg *MsgJSONRPCRequest) Encode(w io.Writer) error {
	var buf [8]byte
	if err := writeUint64(w, buf[:], msg.ID); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(msg.Method)}); err != nil {
		return err
	}
	return writeBytes(w, buf[:4], msg.Params)
}

func (msg *MsgJSONRPCRequest) Decode(r io.Reader) error {
	var buf [8]byte
	id, err := readUint64(r, buf[:])
	if err != nil {
		return err
	}
	msg.ID = id

	var method [1]byte
	if _, err := io.ReadFull(r, method[:]); err != nil {
		return err
	}
	msg.Method = RPCMethod(method[0])

	params, err := readBytes(r, buf[:4])
	if err != nil {
		return err
	}
	msg.Params = params
	return nil
}

// MsgJSONRPCResponse carries an id plus a Result<…> union, represented
// here as a success flag, an opaque result payload, and an error string
// (mutually exclusive with Result).
type MsgJSONRPCResponse struct {
	ID     uint64
	OK     bool
	Result []byte
	Err    string
}

func (msg *MsgJSONRPCResponse) Ordinal() MessageOrdinal { return OrdinalJSONRPCResponse }

func (msg *MsgJSONRPCResponse) Encode(w io.Writer) error {
	var buf [8]byte
	if err := writeUint64(w, buf[:], msg.ID); err != nil {
		return err
	}

	okByte := byte(0)
	if msg.OK {
		okByte = 1
	}
	if _, err := w.Write([]byte{okByte}); err != nil {
		return err
	}

	if err := writeBytes(w, buf[:4], msg.Result); err != nil {
		return err
	}
	return writeBytes(w, buf[:4], []byte(msg.Err))
}

func (msg *MsgJSONRPCResponse) Decode(r io.Reader) error {
	var buf [8]byte
	id, err := readUint64(r, buf[:])
	if err != nil {
		return err
	}
	msg.ID = id

	var ok [1]byte
	if _, err := io.ReadFull(r, ok[:]); err != nil {
		return err
	}
	msg.OK = ok[0] != 0

	result, err := readBytes(r, buf[:4])
	if err != nil {
		return err
	}
	msg.Result = result

	errBytes, err := readBytes(r, buf[:4])
	if err != nil {
		return err
	}
	msg.Err = string(errBytes)
	return nil
}

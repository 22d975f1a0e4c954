// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/didanet/didanode/chainhash"
)

// MaxBlockDataPerMsg bounds a single GetBlockData request to the scheduler's
// own per-peer in-flight cap, since a batch never needs to exceed it.
const MaxBlockDataPerMsg = MaxBlocksInTransit

// MsgGetBlockData requests the full blocks identified by Hashes.
type MsgGetBlockData struct {
	Hashes []chainhash.Hash
}

func (msg *MsgGetBlockData) Ordinal() MessageOrdinal { return OrdinalGetBlockData }

func (msg *MsgGetBlockData) Encode(w io.Writer) error {
	if len(msg.Hashes) > MaxBlockDataPerMsg {
		return messageError("MsgGetBlockData.Encode",
			fmt.Sprintf("too many hashes [%d, max %d]", len(msg.Hashes), MaxBlockDataPerMsg))
	}
	var buf [4]byte
	return writeHashList(w, buf[:], msg.Hashes)
}

func (msg *MsgGetBlockData) Decode(r io.Reader) error {
	var buf [4]byte
	hashes, err := readHashList(r, buf[:])
	if err != nil {
		return err
	}
	if len(hashes) > MaxBlockDataPerMsg {
		return messageError("MsgGetBlockData.Decode",
			fmt.Sprintf("too many hashes [%d, max %d]", len(hashes), MaxBlockDataPerMsg))
	}
	msg.Hashes = hashes
	return nil
}

// NewMsgGetBlockData returns a getblockdata message for the given hashes.
func NewMsgGetBlockData(hashes []chainhash.Hash) *MsgGetBlockData {
	return &MsgGetBlockData{Hashes: hashes}
}

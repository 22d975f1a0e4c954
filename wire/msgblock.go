// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
)

// MaxTxPerBlock bounds the transaction count read off the wire for a single
// block, guarding against a hostile length prefix.
const MaxTxPerBlock = 1 << 20

// MsgBlock carries a full block: header plus transactions.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*Transaction
}

func (msg *MsgBlock) Ordinal() MessageOrdinal { return OrdinalBlock }

func (msg *MsgBlock) Encode(w io.Writer) error {
	if err := msg.Header.Encode(w); err != nil {
		return err
	}

	var buf [4]byte
	if err := writeUint32(w, buf[:], uint32(len(msg.Transactions))); err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		if err := tx.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (msg *MsgBlock) Decode(r io.Reader) error {
	if err := msg.Header.Decode(r); err != nil {
		return err
	}

	var buf [4]byte
	count, err := readUint32(r, buf[:])
	if err != nil {
		return err
	}
	if count > MaxTxPerBlock {
		return messageError("MsgBlock.Decode", fmt.Sprintf("too many transactions: %d", count))
	}

	msg.Transactions = make([]*Transaction, count)
	for i := range msg.Transactions {
		tx := &Transaction{}
		if err := tx.Decode(r); err != nil {
			return err
		}
		msg.Transactions[i] = tx
	}
	return nil
}

// Block converts the wire message into a *Block, validating the
// coinbase-placement and Merkle root invariants.
func (msg *MsgBlock) Block() (*Block, error) {
	b := &Block{Header: msg.Header, Transactions: msg.Transactions}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewMsgBlockFromBlock wraps a *Block for transmission.
func NewMsgBlockFromBlock(b *Block) *MsgBlock {
	return &MsgBlock{Header: b.Header, Transactions: b.Transactions}
}

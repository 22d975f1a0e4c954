// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"

	"github.com/didanet/didanode/chainhash"
)

// ErrMissingCoinbase is returned when a Block's first transaction is not a
// coinbase, or a later transaction is.
var ErrMissingCoinbase = errors.New("wire: block must have exactly one coinbase, as its first transaction")

// Block is a full block: a header plus its transactions.
type Block struct {
	Header       BlockHeader
	Transactions []*Transaction
}

// NewBlock builds a Block, validating the coinbase-placement invariant and
// setting the header's MerkleRoot to match the supplied transactions.
func NewBlock(header BlockHeader, txs []*Transaction) (*Block, error) {
	if err := validateCoinbasePlacement(txs); err != nil {
		return nil, err
	}
	header.MerkleRoot = merkleRootOf(txs)
	return &Block{Header: header, Transactions: txs}, nil
}

func validateCoinbasePlacement(txs []*Transaction) error {
	if len(txs) == 0 || !txs[0].IsCoinbase() {
		return ErrMissingCoinbase
	}
	for _, tx := range txs[1:] {
		if tx.IsCoinbase() {
			return ErrMissingCoinbase
		}
	}
	return nil
}

func merkleRootOf(txs []*Transaction) chainhash.Hash {
	ids := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		ids[i] = tx.TxID()
	}
	return chainhash.MerkleRoot(ids)
}

// ID returns the block identifier: block.ID() == block.Header.Hash().
func (b *Block) ID() chainhash.Hash {
	return b.Header.Hash()
}

// Validate re-checks the coinbase placement invariant and that the header's
// MerkleRoot still matches the transaction set — used after decoding a
// Block off the wire, where a malicious peer could have sent a header and
// body that disagree.
func (b *Block) Validate() error {
	if err := validateCoinbasePlacement(b.Transactions); err != nil {
		return err
	}
	if b.Header.MerkleRoot != merkleRootOf(b.Transactions) {
		return errors.New("wire: block merkle root does not match transactions")
	}
	return nil
}

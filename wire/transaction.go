// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"io"

	"github.com/didanet/didanode/chainhash"
)

// ErrInvalidTransactionFormat is returned when a Transaction's input list
// violates the coinbase shape invariant: a transaction containing any
// coinbase input must contain exactly one input and one output.
var ErrInvalidTransactionFormat = errors.New("wire: invalid transaction format")

// CoinbaseOutputIndex is the sentinel OutPoint.Index value that marks an
// input as a coinbase.
const CoinbaseOutputIndex = ^uint32(0)

// OutPoint identifies a single transaction output being spent.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// TxIn is a transaction input. LockingScript/UnlockingScript validation is
// stubbed deliberately; UnlockingScript carries only the placeholder shape
// defined by the script package.
type TxIn struct {
	PreviousOutPoint OutPoint
	UnlockingScript  []byte
	Sequence         uint32
}

// IsCoinbase reports whether in is the sentinel coinbase input.
func (in *TxIn) IsCoinbase() bool {
	return in.PreviousOutPoint.Hash == (chainhash.Hash{}) && in.PreviousOutPoint.Index == CoinbaseOutputIndex
}

// TxOut is a transaction output.
type TxOut struct {
	Value         int64
	LockingScript []byte
}

// Transaction is the ordered list of inputs and outputs. Construct one
// with NewTransaction, which enforces the coinbase arity invariant; the
// zero value is not guaranteed to be valid.
type Transaction struct {
	Inputs  []*TxIn
	Outputs []*TxOut
}

// NewTransaction builds a Transaction, validating the coinbase-arity
// invariant: a transaction with any coinbase input must have exactly one
// input and one output.
func NewTransaction(inputs []*TxIn, outputs []*TxOut) (*Transaction, error) {
	tx := &Transaction{Inputs: inputs, Outputs: outputs}
	if err := tx.validateShape(); err != nil {
		return nil, err
	}
	return tx, nil
}

func (tx *Transaction) validateShape() error {
	hasCoinbase := false
	for _, in := range tx.Inputs {
		if in.IsCoinbase() {
			hasCoinbase = true
			break
		}
	}
	if hasCoinbase && (len(tx.Inputs) != 1 || len(tx.Outputs) != 1) {
		return ErrInvalidTransactionFormat
	}
	return nil
}

// IsCoinbase reports whether tx is a coinbase transaction: its sole input
// (by construction, if any) is the coinbase sentinel.
func (tx *Transaction) IsCoinbase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].IsCoinbase()
}

// TxID computes the transaction identifier: double-SHA256 of the canonical
// encoding of inputs ‖ outputs.
func (tx *Transaction) TxID() chainhash.Hash {
	var buf bytes.Buffer
	_ = tx.Encode(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Encode writes the canonical encoding of tx to w.
func (tx *Transaction) Encode(w io.Writer) error {
	var u32 [8]byte
	if err := writeUint32(w, u32[:], uint32(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if err := writeHash(w, in.PreviousOutPoint.Hash); err != nil {
			return err
		}
		if err := writeUint32(w, u32[:], in.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := writeBytes(w, u32[:], in.UnlockingScript); err != nil {
			return err
		}
		if err := writeUint32(w, u32[:], in.Sequence); err != nil {
			return err
		}
	}

	if err := writeUint32(w, u32[:], uint32(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := writeUint64(w, u32[:], uint64(out.Value)); err != nil {
			return err
		}
		if err := writeBytes(w, u32[:], out.LockingScript); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a transaction from r in the layout Encode writes, then
// enforces the coinbase-arity invariant.
func (tx *Transaction) Decode(r io.Reader) error {
	var u32 [8]byte

	inCount, err := readUint32(r, u32[:])
	if err != nil {
		return err
	}
	if inCount > MaxListLen {
		return messageError("Transaction.Decode", "too many inputs")
	}
	tx.Inputs = make([]*TxIn, inCount)
	for i := range tx.Inputs {
		in := &TxIn{}
		if err := readHash(r, &in.PreviousOutPoint.Hash); err != nil {
			return err
		}
		if in.PreviousOutPoint.Index, err = readUint32(r, u32[:]); err != nil {
			return err
		}
		if in.UnlockingScript, err = readBytes(r, u32[:]); err != nil {
			return err
		}
		if in.Sequence, err = readUint32(r, u32[:]); err != nil {
			return err
		}
		tx.Inputs[i] = in
	}

	outCount, err := readUint32(r, u32[:])
	if err != nil {
		return err
	}
	if outCount > MaxListLen {
		return messageError("Transaction.Decode", "too many outputs")
	}
	tx.Outputs = make([]*TxOut, outCount)
	for i := range tx.Outputs {
		out := &TxOut{}
		v, err := readUint64(r, u32[:])
		if err != nil {
			return err
		}
		out.Value = int64(v)
		if out.LockingScript, err = readBytes(r, u32[:]); err != nil {
			return err
		}
		tx.Outputs[i] = out
	}

	return tx.validateShape()
}

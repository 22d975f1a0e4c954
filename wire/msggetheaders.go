// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/didanet/didanode/chainhash"
)

// MsgGetHeaders requests headers following the first locator hash the
// responder recognizes on its active chain.
type MsgGetHeaders struct {
	Locator []chainhash.Hash
}

func (msg *MsgGetHeaders) Ordinal() MessageOrdinal { return OrdinalGetHeaders }

func (msg *MsgGetHeaders) Encode(w io.Writer) error {
	var buf [4]byte
	return writeHashList(w, buf[:], msg.Locator)
}

func (msg *MsgGetHeaders) Decode(r io.Reader) error {
	var buf [4]byte
	locator, err := readHashList(r, buf[:])
	if err != nil {
		return err
	}
	msg.Locator = locator
	return nil
}

// NewMsgGetHeaders returns a getheaders message for the given locator.
func NewMsgGetHeaders(locator []chainhash.Hash) *MsgGetHeaders {
	return &MsgGetHeaders{Locator: locator}
}

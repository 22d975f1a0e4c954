// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
)

// MsgHeaders carries up to MaxHeadersPerMsg block headers in reply to a
// MsgGetHeaders.
type MsgHeaders struct {
	Headers []*BlockHeader
}

func (msg *MsgHeaders) Ordinal() MessageOrdinal { return OrdinalHeaders }

// AddBlockHeader appends a header to the message, enforcing MaxHeadersPerMsg.
func (msg *MsgHeaders) AddBlockHeader(bh *BlockHeader) error {
	if len(msg.Headers)+1 > MaxHeadersPerMsg {
		return messageError("MsgHeaders.AddBlockHeader",
			fmt.Sprintf("too many headers [max %d]", MaxHeadersPerMsg))
	}
	msg.Headers = append(msg.Headers, bh)
	return nil
}

func (msg *MsgHeaders) Encode(w io.Writer) error {
	if len(msg.Headers) > MaxHeadersPerMsg {
		return messageError("MsgHeaders.Encode",
			fmt.Sprintf("too many headers [%d, max %d]", len(msg.Headers), MaxHeadersPerMsg))
	}

	var buf [4]byte
	if err := writeUint32(w, buf[:], uint32(len(msg.Headers))); err != nil {
		return err
	}
	for _, bh := range msg.Headers {
		if err := bh.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (msg *MsgHeaders) Decode(r io.Reader) error {
	var buf [4]byte
	count, err := readUint32(r, buf[:])
	if err != nil {
		return err
	}
	if count > MaxHeadersPerMsg {
		return messageError("MsgHeaders.Decode",
			fmt.Sprintf("too many headers [%d, max %d]", count, MaxHeadersPerMsg))
	}

	headers := make([]BlockHeader, count)
	msg.Headers = make([]*BlockHeader, count)
	for i := range headers {
		if err := headers[i].Decode(r); err != nil {
			return err
		}
		msg.Headers[i] = &headers[i]
	}
	return nil
}

// NewMsgHeaders returns an empty headers message ready for AddBlockHeader.
func NewMsgHeaders() *MsgHeaders {
	return &MsgHeaders{Headers: make([]*BlockHeader, 0, 16)}
}

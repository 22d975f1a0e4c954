// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgVerAck acknowledges a MsgVersion. It carries no payload.
type MsgVerAck struct{}

func (msg *MsgVerAck) Ordinal() MessageOrdinal { return OrdinalVerAck }

func (msg *MsgVerAck) Encode(w io.Writer) error { return nil }

func (msg *MsgVerAck) Decode(r io.Reader) error { return nil }

// NewMsgVerAck returns a new verack message.
func NewMsgVerAck() *MsgVerAck { return &MsgVerAck{} }

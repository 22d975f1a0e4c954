// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgVersion is sent by the dialing side of a fresh connection. Unlike btcd-lineage
// handshakes, didanode's compatibility check is a plain equality test
// against the local version.
type MsgVersion struct {
	Version uint32
}

func (msg *MsgVersion) Ordinal() MessageOrdinal { return OrdinalVersion }

func (msg *MsgVersion) Encode(w io.Writer) error {
	var buf [4]byte
	return writeUint32(w, buf[:], msg.Version)
}

func (msg *MsgVersion) Decode(r io.Reader) error {
	var buf [4]byte
	v, err := readUint32(r, buf[:])
	if err != nil {
		return err
	}
	msg.Version = v
	return nil
}

// NewMsgVersion returns a version message announcing the local protocol
// version.
func NewMsgVersion() *MsgVersion {
	return &MsgVersion{Version: ProtocolVersion}
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/didanet/didanode/chainhash"
)

var littleEndian = binary.LittleEndian

// MaxListLen bounds the count prefix read for any wire list so a corrupt or
// hostile peer can't make a peer allocate an unbounded slice from a 4-byte
// count field. It is well above MaxHeadersPerMsg / MaxBlocksInTransit, the
// protocol's own caps, which are enforced per-message on top of this.
const MaxListLen = 1 << 20

func writeUint32(w io.Writer, buf []byte, v uint32) error {
	littleEndian.PutUint32(buf[:4], v)
	_, err := w.Write(buf[:4])
	return err
}

func readUint32(r io.Reader, buf []byte) (uint32, error) {
	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return 0, err
	}
	return littleEndian.Uint32(buf[:4]), nil
}

func writeUint64(w io.Writer, buf []byte, v uint64) error {
	littleEndian.PutUint64(buf[:8], v)
	_, err := w.Write(buf[:8])
	return err
}

func readUint64(r io.Reader, buf []byte) (uint64, error) {
	if _, err := io.ReadFull(r, buf[:8]); err != nil {
		return 0, err
	}
	return littleEndian.Uint64(buf[:8]), nil
}

func writeHash(w io.Writer, h chainhash.Hash) error {
	_, err := w.Write(h[:])
	return err
}

func readHash(r io.Reader, h *chainhash.Hash) error {
	_, err := io.ReadFull(r, h[:])
	return err
}

// writeHashList writes a u32 count prefix followed by count raw 32-byte
// hashes: lists are always length-prefixed by u32 on the wire.
func writeHashList(w io.Writer, buf []byte, hashes []chainhash.Hash) error {
	if err := writeUint32(w, buf, uint32(len(hashes))); err != nil {
		return err
	}
	for _, h := range hashes {
		if err := writeHash(w, h); err != nil {
			return err
		}
	}
	return nil
}

func readHashList(r io.Reader, buf []byte) ([]chainhash.Hash, error) {
	count, err := readUint32(r, buf)
	if err != nil {
		return nil, err
	}
	if count > MaxListLen {
		return nil, messageError("readHashList", fmt.Sprintf("list too long: %d", count))
	}

	hashes := make([]chainhash.Hash, count)
	for i := range hashes {
		if err := readHash(r, &hashes[i]); err != nil {
			return nil, err
		}
	}
	return hashes, nil
}

// writeBytes writes a u32 length prefix followed by the raw bytes.
func writeBytes(w io.Writer, buf []byte, b []byte) error {
	if err := writeUint32(w, buf, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readBytes(r io.Reader, buf []byte) ([]byte, error) {
	n, err := readUint32(r, buf)
	if err != nil {
		return nil, err
	}
	if n > MaxListLen {
		return nil, messageError("readBytes", fmt.Sprintf("payload too long: %d", n))
	}
	if n == 0 {
		// writeBytes encodes a nil slice with a zero length prefix; decode
		// it back to nil so the round trip preserves the value.
		return nil, nil
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

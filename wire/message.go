// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
)

// MaxMessagePayload is the maximum payload size didanode will allocate for
// a single decoded message, guarding against a hostile peer's length
// prefix describing an unreasonably large frame.
const MaxMessagePayload = 32 * 1024 * 1024

// Message is the tagged-union wire payload: a single Command/ordinal and
// a matching Encode/Decode pair. Every concrete message type (MsgVersion,
// MsgHeaders, ...) implements it, and EncodeMessage/DecodePayload dispatch
// on the ordinal through a single routine rather than per-variant
// decoders.
type Message interface {
	Ordinal() MessageOrdinal
	Encode(w io.Writer) error
	Decode(r io.Reader) error
}

// makeEmptyMessage returns a zero-valued message for the given ordinal, or
// an error if the ordinal is not one of the known message types.
func makeEmptyMessage(ord MessageOrdinal) (Message, error) {
	switch ord {
	case OrdinalVersion:
		return &MsgVersion{}, nil
	case OrdinalVerAck:
		return &MsgVerAck{}, nil
	case OrdinalGetHeaders:
		return &MsgGetHeaders{}, nil
	case OrdinalHeaders:
		return &MsgHeaders{}, nil
	case OrdinalGetBlockData:
		return &MsgGetBlockData{}, nil
	case OrdinalBlock:
		return &MsgBlock{}, nil
	case OrdinalJSONRPCRequest:
		return &MsgJSONRPCRequest{}, nil
	case OrdinalJSONRPCResponse:
		return &MsgJSONRPCResponse{}, nil
	default:
		return nil, messageError("makeEmptyMessage", fmt.Sprintf("unknown ordinal %d", ord))
	}
}

// EncodeMessage serializes a full wire frame for msg: a u32 little-endian
// payload length followed by [ordinal byte][message body].
func EncodeMessage(w io.Writer, msg Message) error {
	var body bytes.Buffer
	body.WriteByte(byte(msg.Ordinal()))
	if err := msg.Encode(&body); err != nil {
		return err
	}

	var lenBuf [4]byte
	littleEndian.PutUint32(lenBuf[:], uint32(body.Len()))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

// DecodePayload reads a single ordinal-tagged payload (without the
// length-prefix header, which the transport layer has already consumed
// into a framed byte slice) and returns the decoded Message.
func DecodePayload(payload []byte) (Message, error) {
	if len(payload) < 1 {
		return nil, messageError("DecodePayload", "empty payload")
	}

	ord := MessageOrdinal(payload[0])
	msg, err := makeEmptyMessage(ord)
	if err != nil {
		return nil, err
	}
	if err := msg.Decode(bytes.NewReader(payload[1:])); err != nil {
		return nil, err
	}
	return msg, nil
}

// ReadMessage reads one full frame from r (a header-length-prefixed payload)
// and decodes it. It is provided for callers operating over a blocking
// io.Reader (e.g. tests); the node's non-blocking receive loop uses
// peer.FlipBuffer and DecodePayload directly instead.
func ReadMessage(r io.Reader) (Message, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := littleEndian.Uint32(lenBuf[:])
	if n > MaxMessagePayload {
		return nil, messageError("ReadMessage", fmt.Sprintf("payload too large: %d", n))
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return DecodePayload(payload)
}

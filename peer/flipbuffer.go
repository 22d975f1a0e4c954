// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer implements the per-connection transport and protocol
// state for the node's cooperative, non-blocking I/O loop.
package peer

// FlipBuffer is a single contiguous byte buffer holding unconsumed
// received data. It exposes a writable tail (free space) and a readable
// head (unconsumed data), and periodically shifts unconsumed bytes back
// to offset zero so the tail never runs out of room while the buffer
// still has spare capacity overall.
//
// Invariant: 0 <= readCursor <= writeCursor <= len(buf).
type FlipBuffer struct {
	buf         []byte
	readCursor  int
	writeCursor int
}

// NewFlipBuffer returns a FlipBuffer with the given fixed capacity.
func NewFlipBuffer(capacity int) *FlipBuffer {
	return &FlipBuffer{buf: make([]byte, capacity)}
}

// Readable returns the unconsumed data currently held.
func (f *FlipBuffer) Readable() []byte {
	return f.buf[f.readCursor:f.writeCursor]
}

// Writable returns the free space available to receive into.
func (f *FlipBuffer) Writable() []byte {
	return f.buf[f.writeCursor:]
}

// ConsumeData advances the read cursor by n bytes, marking them handled.
func (f *FlipBuffer) ConsumeData(n int) {
	f.readCursor += n
	if f.readCursor > f.writeCursor {
		panic("peer: FlipBuffer.ConsumeData advanced past write cursor")
	}
}

// ConsumeFreeSpace advances the write cursor by n bytes after a
// successful read into Writable().
func (f *FlipBuffer) ConsumeFreeSpace(n int) {
	f.writeCursor += n
	if f.writeCursor > len(f.buf) {
		panic("peer: FlipBuffer.ConsumeFreeSpace advanced past capacity")
	}
}

// Flip shifts any unconsumed bytes down to offset zero, maximising the
// writable tail. Call before every non-blocking read attempt.
func (f *FlipBuffer) Flip() {
	if f.readCursor == 0 {
		return
	}
	n := copy(f.buf, f.buf[f.readCursor:f.writeCursor])
	f.readCursor = 0
	f.writeCursor = n
}

// Len returns the number of unconsumed bytes.
func (f *FlipBuffer) Len() int {
	return f.writeCursor - f.readCursor
}

// Cap returns the buffer's total capacity.
func (f *FlipBuffer) Cap() int {
	return len(f.buf)
}

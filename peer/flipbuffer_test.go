// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlipBufferConsumeAndFlip(t *testing.T) {
	fb := NewFlipBuffer(8)

	n := copy(fb.Writable(), []byte("abcd"))
	fb.ConsumeFreeSpace(n)
	require.Equal(t, []byte("abcd"), fb.Readable())

	fb.ConsumeData(2)
	require.Equal(t, []byte("cd"), fb.Readable())

	fb.Flip()
	require.Equal(t, []byte("cd"), fb.Readable())
	require.Equal(t, 6, len(fb.Writable()))
}

func TestFlipBufferConsumeDataPastWriteCursorPanics(t *testing.T) {
	fb := NewFlipBuffer(4)
	require.Panics(t, func() { fb.ConsumeData(1) })
}

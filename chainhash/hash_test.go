// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashRoundTrip(t *testing.T) {
	var h Hash
	h[0] = 0xde
	h[HashSize-1] = 0xad

	got, err := NewHashFromStr(h.String())
	require.NoError(t, err)
	require.True(t, h.IsEqual(got))
}

func TestHashCompareTotalOrder(t *testing.T) {
	var a, b Hash
	a[0] = 0x01
	b[0] = 0x02

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestDoubleHashDeterministic(t *testing.T) {
	data := []byte("didanode genesis")
	require.Equal(t, DoubleHashH(data), DoubleHashH(data))
	require.NotEqual(t, HashH(data), DoubleHashH(data))
}

func TestNewHashFromStrRejectsOversize(t *testing.T) {
	oversize := make([]byte, MaxHashStringSize+2)
	for i := range oversize {
		oversize[i] = 'a'
	}
	_, err := NewHashFromStr(string(oversize))
	require.ErrorIs(t, err, ErrHashStrSize)
}

// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func TestLockUnlockRoundTrip(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()

	lock := NewLockingScript(pub)
	encodedLock := lock.Encode()
	decodedLock, ok := DecodeLockingScript(encodedLock)
	require.True(t, ok)
	require.Equal(t, lock, decodedLock)

	unlock := UnlockingScript{Signature: []byte("sig"), PubKey: pub}
	encodedUnlock := unlock.Encode()
	decodedUnlock, ok := DecodeUnlockingScript(encodedUnlock)
	require.True(t, ok)
	require.True(t, Verify(decodedLock, decodedUnlock))
}

func TestVerifyRejectsMismatchedKey(t *testing.T) {
	priv1, _ := secp256k1.GeneratePrivateKey()
	priv2, _ := secp256k1.GeneratePrivateKey()

	lock := NewLockingScript(priv1.PubKey())
	unlock := UnlockingScript{Signature: []byte("sig"), PubKey: priv2.PubKey()}
	require.False(t, Verify(lock, unlock))
}

func TestDecodeLockingScriptRejectsBadLength(t *testing.T) {
	_, ok := DecodeLockingScript([]byte{1, 2, 3})
	require.False(t, ok)
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script holds the typed placeholder shapes referenced by
// wire.TxIn.UnlockingScript and wire.TxOut.LockingScript. It deliberately
// does not implement a scripting language or signature verification
//;
// instead it gives the placeholder a type so a future implementation has
// a seam to fill rather than a bare []byte.
package script

import (
	"crypto/sha256"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

func sha256Sum(b []byte) [sha256.Size]byte {
	return sha256.Sum256(b)
}

// PubKeyHashSize is the length of a hashed public key, following the
// standard ripemd160(sha256(pubkey)) address-hashing pattern.
const PubKeyHashSize = ripemd160.Size

// PubKeyHash hashes a serialized compressed public key the way a P2PKH
// locking script would address it.
func PubKeyHash(pub *secp256k1.PublicKey) [PubKeyHashSize]byte {
	sha := sha256Sum(pub.SerializeCompressed())
	r := ripemd160.New()
	r.Write(sha[:])

	var out [PubKeyHashSize]byte
	copy(out[:], r.Sum(nil))
	return out
}

// LockingScript is the placeholder "pay to this pubkey hash" condition
// attached to a transaction output.
type LockingScript struct {
	PubKeyHash [PubKeyHashSize]byte
}

// NewLockingScript builds a locking script for the given public key.
func NewLockingScript(pub *secp256k1.PublicKey) LockingScript {
	return LockingScript{PubKeyHash: PubKeyHash(pub)}
}

// Encode serializes the locking script for storage in wire.TxOut.
func (s LockingScript) Encode() []byte {
	out := make([]byte, PubKeyHashSize)
	copy(out, s.PubKeyHash[:])
	return out
}

// DecodeLockingScript parses bytes previously produced by Encode.
func DecodeLockingScript(b []byte) (LockingScript, bool) {
	if len(b) != PubKeyHashSize {
		return LockingScript{}, false
	}
	var s LockingScript
	copy(s.PubKeyHash[:], b)
	return s, true
}

// UnlockingScript is the placeholder signature + public key pair offered
// to satisfy a LockingScript.
type UnlockingScript struct {
	Signature []byte
	PubKey    *secp256k1.PublicKey
}

// Encode serializes the unlocking script for storage in wire.TxIn.
func (s UnlockingScript) Encode() []byte {
	if s.PubKey == nil {
		return append([]byte(nil), s.Signature...)
	}
	pub := s.PubKey.SerializeCompressed()
	out := make([]byte, 0, 1+len(pub)+len(s.Signature))
	out = append(out, byte(len(pub)))
	out = append(out, pub...)
	out = append(out, s.Signature...)
	return out
}

// DecodeUnlockingScript parses bytes previously produced by Encode.
func DecodeUnlockingScript(b []byte) (UnlockingScript, bool) {
	if len(b) == 0 {
		return UnlockingScript{}, false
	}
	n := int(b[0])
	if len(b) < 1+n {
		return UnlockingScript{}, false
	}
	pub, err := secp256k1.ParsePubKey(b[1 : 1+n])
	if err != nil {
		return UnlockingScript{}, false
	}
	return UnlockingScript{
		Signature: append([]byte(nil), b[1+n:]...),
		PubKey:    pub,
	}, true
}

// Verify reports whether unlock satisfies lock. Signature checking is out
// of scope for this node: any unlocking script whose
// embedded key hashes to the locking script's pubkey hash is accepted.
func Verify(lock LockingScript, unlock UnlockingScript) bool {
	if unlock.PubKey == nil {
		return false
	}
	return PubKeyHash(unlock.PubKey) == lock.PubKeyHash
}

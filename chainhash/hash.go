// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the 32-byte identifier used throughout didanode
// to name blocks and transactions, along with the double-SHA256 primitive
// and the Merkle tree construction built on top of it.
package chainhash

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSize is the number of bytes in a hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that does not have the right number of characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a fixed 32-byte value used to uniquely identify block headers and
// transactions.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string, reversed the way
// didanode's ancestry (btcd) conventionally prints it: most-significant byte
// last in the in-memory array, first in the printed string.
func (h Hash) String() string {
	hexBytes := make([]byte, HashSize)
	for i := 0; i < HashSize/2; i++ {
		hexBytes[i], hexBytes[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(hexBytes)
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// Compare returns -1, 0 or 1 depending on whether h sorts before, equal to,
// or after target in plain lexicographic byte order. Hashes are totally
// ordered this way; the same comparison is used for PoW target checks.
func (h Hash) Compare(target Hash) int {
	return bytes.Compare(h[:], target[:])
}

// Less reports whether h sorts strictly before target.
func (h Hash) Less(target Hash) bool {
	return h.Compare(target) < 0
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// NewHash returns a new Hash from a byte slice.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewHashFromStr creates a Hash from a hash string, reversing the display
// order back into the in-memory array the same way String encodes it.
func NewHashFromStr(hash string) (*Hash, error) {
	var ret Hash
	err := decode(&ret, hash)
	return &ret, err
}

func decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	for i, b := range reversedHash[:HashSize/2] {
		reversedHash[i], reversedHash[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	*dst = reversedHash
	return nil
}

// HashB calculates the SHA256 hash of the given data and returns it as a
// byte slice.
func HashB(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// HashH calculates the SHA256 hash of the given data and returns it as a
// Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates SHA256(SHA256(b)) and returns it as a byte slice.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates SHA256(SHA256(b)) and returns it as a Hash, the
// same double-hash convention didanode's ancestry uses throughout.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

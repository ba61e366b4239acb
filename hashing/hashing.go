// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing provides the SHA-256 capability the codec and
// signing pipeline treat as abstract per spec §1/§4.4: the digest that
// gets signed, and the double-SHA256 checksum used by the base-58
// string form.
package hashing

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

// ChecksumLen is the number of checksum bytes appended before base-58
// encoding a SignedTx/UnsignedTx.
const ChecksumLen = 4

// Hash256 returns the SHA-256 digest of b.
func Hash256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// Checksum returns the first ChecksumLen bytes of SHA-256(SHA-256(b)),
// the checksum appended before base-58 encoding.
func Checksum(b []byte) [ChecksumLen]byte {
	first := Hash256(b)
	second := Hash256(first[:])
	var out [ChecksumLen]byte
	copy(out[:], second[:ChecksumLen])
	return out
}

// PubkeyBytesToAddress hashes an uncompressed or compressed secp256k1
// public key down to a 20-byte short address: ripemd160(sha256(pubkey)).
func PubkeyBytesToAddress(pubKey []byte) ([20]byte, error) {
	h := Hash256(pubKey)
	ripe := ripemd160.New()
	if _, err := ripe.Write(h[:]); err != nil {
		return [20]byte{}, err
	}
	var out [20]byte
	copy(out[:], ripe.Sum(nil))
	return out, nil
}

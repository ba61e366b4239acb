// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keychain implements the abstract signer capability and
// keychain lookup spec §4.4/§9 describe: the codec never touches curve
// math directly, it calls Signer.SignHash and looks signers up by
// short address through a Keychain.
package keychain

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/hashing"
)

// Signer is the abstract signing capability: sign(digest) -> 65 bytes,
// public_key() -> address.
type Signer interface {
	// Address returns the short address this signer signs on behalf of.
	Address() ids.ShortID
	// SignHash produces a 65-byte recoverable ECDSA signature over a
	// pre-computed digest (never the raw message).
	SignHash(digest [32]byte) ([65]byte, error)
}

// MissingKeyError is returned by the signing pipeline when
// Keychain.Get finds no signer registered for the requested address.
type MissingKeyError struct {
	Address ids.ShortID
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key for address %s", e.Address)
}

// SignerFailureError wraps an error returned by the abstract signer.
type SignerFailureError struct {
	Inner error
}

func (e *SignerFailureError) Error() string {
	return fmt.Sprintf("signer failure: %v", e.Inner)
}

func (e *SignerFailureError) Unwrap() error {
	return e.Inner
}

// secp256k1Signer is the concrete Signer built on a raw secp256k1
// private key, producing compact (header||R||S) recoverable signatures
// the way btcsuite/decred-lineage wallets do.
type secp256k1Signer struct {
	priv *secp256k1.PrivateKey
	addr ids.ShortID
}

// NewSecp256k1Signer builds a Signer from a raw 32-byte secp256k1
// private key.
func NewSecp256k1Signer(skBytes []byte) (Signer, error) {
	if len(skBytes) != 32 {
		return nil, errors.New("secp256k1 private key must be 32 bytes")
	}
	priv := secp256k1.PrivKeyFromBytes(skBytes)
	pubBytes := priv.PubKey().SerializeUncompressed()
	addr, err := hashing.PubkeyBytesToAddress(pubBytes)
	if err != nil {
		return nil, err
	}
	return &secp256k1Signer{priv: priv, addr: addr}, nil
}

func (s *secp256k1Signer) Address() ids.ShortID {
	return s.addr
}

func (s *secp256k1Signer) SignHash(digest [32]byte) ([65]byte, error) {
	var out [65]byte
	sig := ecdsa.SignCompact(s.priv, digest[:], false)
	if len(sig) != 65 {
		return out, &SignerFailureError{Inner: fmt.Errorf("unexpected compact signature length %d", len(sig))}
	}
	copy(out[:], sig)
	return out, nil
}

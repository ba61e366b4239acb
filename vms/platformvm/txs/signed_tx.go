// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/address"
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/hashing"
	"github.com/luxfi/txsdk/keychain"
	"github.com/luxfi/txsdk/primitives"
)

// SignedTx is the platform chain's envelope: UnsignedTx followed by a
// single 65-byte Signature, not a credentials array (spec §4.3).
type SignedTx struct {
	Unsigned  UnsignedTx
	Signature [primitives.SigLen]byte

	bytes []byte
}

// Sign implements spec §9 open question 3's resolved contract: the
// payer's key signs sha256(encode(unsigned)) directly, with no
// per-input SigIdx walk (the platform chain is account/nonce, not
// UTXO).
func Sign(u UnsignedTx, signer keychain.Signer) (*SignedTx, error) {
	unsignedBytes := lux.CanonicalBytes(u)
	digest := hashing.Hash256(unsignedBytes)

	sig, err := signer.SignHash(digest)
	if err != nil {
		return nil, err
	}

	signed := &SignedTx{Unsigned: u, Signature: sig}
	signed.bytes = signed.marshalBytes(unsignedBytes)
	return signed, nil
}

func (s *SignedTx) marshalBytes(unsignedBytes []byte) []byte {
	w := primitives.NewWriter(len(unsignedBytes) + primitives.SigLen)
	w.WriteFixed(unsignedBytes)
	w.WriteSignature(s.Signature)
	return w.Bytes()
}

// Bytes returns the full encoded SignedTx, computing it on first use.
func (s *SignedTx) Bytes() []byte {
	if s.bytes == nil {
		s.bytes = s.marshalBytes(lux.CanonicalBytes(s.Unsigned))
	}
	return s.bytes
}

// ID returns sha256(Bytes()) as an ids.ID.
func (s *SignedTx) ID() ids.ID {
	digest := hashing.Hash256(s.Bytes())
	var id ids.ID
	copy(id[:], digest[:])
	return id
}

// String returns the base-58-with-checksum string form (spec §6).
func (s *SignedTx) String() string {
	return address.EncodeChecksum(s.Bytes())
}

// UnmarshalSignedTx decodes a full platform-chain SignedTx envelope.
func UnmarshalSignedTx(r *primitives.Reader) (*SignedTx, error) {
	unsigned, err := UnmarshalUnsignedTx(r)
	if err != nil {
		return nil, err
	}
	sig, err := r.ReadSignature()
	if err != nil {
		return nil, err
	}
	return &SignedTx{Unsigned: unsigned, Signature: sig}, nil
}

// SignedTxFromString decodes the base-58-with-checksum string form.
func SignedTxFromString(s string) (*SignedTx, error) {
	payload, err := address.DecodeChecksum(s)
	if err != nil {
		return nil, err
	}
	r := primitives.NewReader(payload)
	tx, err := UnmarshalSignedTx(r)
	if err != nil {
		return nil, err
	}
	if err := r.Done(); err != nil {
		return nil, err
	}
	return tx, nil
}

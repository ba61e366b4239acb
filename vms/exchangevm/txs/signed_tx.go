// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/txsdk/address"
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/hashing"
	"github.com/luxfi/txsdk/keychain"
	"github.com/luxfi/txsdk/primitives"
)

// logger is the package-level structured logger the signing pipeline
// writes to. The pure encode/hash functions stay log-free (spec §5:
// no I/O in the codec itself); only this orchestration layer logs,
// the way vms/exchangevm/wallet_service.go logs issuance. Callers
// embedding this SDK can replace it with SetLogger.
var logger log.Logger = log.NoLog{}

// SetLogger installs the logger the signing pipeline writes to.
func SetLogger(l log.Logger) {
	logger = l
}

// SignedTx is an UnsignedTx plus one Credential per signable element,
// in positional correspondence (spec §3, §4.4, §8 property 5).
type SignedTx struct {
	Unsigned    UnsignedTx
	Credentials []lux.Credential

	bytes []byte
}

// Sign implements the signing pipeline of spec §4.4:
//
//	1. bytes  = u.encode()
//	2. digest = sha256(bytes)
//	3. for each signable element, in canonical order: sign(digest) per
//	   SigIdx, assemble a Credential
//	4. return SignedTx{u, credentials}
//
// No partial results: any MissingKey/SignerFailure aborts before a
// SignedTx is returned.
func Sign(u UnsignedTx, kc keychain.Keychain) (*SignedTx, error) {
	unsignedBytes := lux.CanonicalBytes(u)
	digest := hashing.Hash256(unsignedBytes)

	elements := u.SignableElements()
	logger.Info("signing transaction", log.Int("signableElements", len(elements)))

	creds := make([]lux.Credential, len(elements))
	for i, e := range elements {
		sigIndices := e.SigIndices()
		sigs := make([][65]byte, len(sigIndices))
		for j, idx := range sigIndices {
			signer, ok := kc.Get(idx.Source)
			if !ok {
				logger.Warn("missing key for signer", log.Stringer("address", idx.Source))
				return nil, &keychain.MissingKeyError{Address: idx.Source}
			}
			sig, err := signer.SignHash(digest)
			if err != nil {
				logger.Warn("signer rejected digest", log.Stringer("address", idx.Source))
				return nil, err
			}
			sigs[j] = sig
		}
		creds[i] = e.NewCredential(sigs)
	}

	signed := &SignedTx{Unsigned: u, Credentials: creds}
	signed.bytes = signed.marshalBytes(unsignedBytes)
	logger.Info("transaction signed", log.Stringer("txID", signed.ID()))
	return signed, nil
}

func (s *SignedTx) marshalBytes(unsignedBytes []byte) []byte {
	w := primitives.NewWriter(len(unsignedBytes) + 4 + 32*len(s.Credentials))
	w.WriteFixed(unsignedBytes)
	w.WriteU32(uint32(len(s.Credentials)))
	for _, cred := range s.Credentials {
		w.WriteU32(cred.TypeID())
		cred.Marshal(w)
	}
	return w.Bytes()
}

// Marshal writes the full SignedTx envelope: UnsignedTx || u32
// num_creds || (u32 cred_id || Credential)×num_creds.
func (s *SignedTx) Marshal(w *primitives.Writer) {
	w.WriteFixed(s.Bytes())
}

// Bytes returns the full encoded SignedTx, computing it on first use.
func (s *SignedTx) Bytes() []byte {
	if s.bytes == nil {
		s.bytes = s.marshalBytes(lux.CanonicalBytes(s.Unsigned))
	}
	return s.bytes
}

// ID returns sha256(Bytes()) as an ids.ID, the transaction's identity
// (a supplemented feature: not in spec.md's explicit operation list,
// but required by any caller that needs to name a just-signed tx).
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

// UnmarshalSignedTx decodes a full SignedTx envelope.
func UnmarshalSignedTx(r *primitives.Reader) (*SignedTx, error) {
	unsigned, err := UnmarshalUnsignedTx(r)
	if err != nil {
		return nil, err
	}
	numCreds, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	creds := make([]lux.Credential, numCreds)
	for i := range creds {
		cred, err := lux.CredentialRegistry.DecodeTagged(r)
		if err != nil {
			return nil, err
		}
		creds[i] = cred
	}
	return &SignedTx{Unsigned: unsigned, Credentials: creds}, nil
}

// SignedTxFromString decodes the base-58-with-checksum string form,
// verifying the checksum before parsing (spec §6).
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

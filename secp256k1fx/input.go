// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

var ErrInputIndicesNotSortedUnique = errors.New("input signature indices not sorted and unique")

// Input is the signer-pointer list every secp256k1fx input/operation
// carries: which positions in the referenced output's address list
// must sign, in increasing order. Only SigIdx.AddressIndex is
// serialized; SigIdx.Source is filled in by the caller constructing
// the transaction (spec §3, §9) and never hits the wire.
type Input struct {
	SigIndices []lux.SigIdx
}

// Marshal writes the index count then each AddressIndex.
func (in *Input) Marshal(w *primitives.Writer) {
	w.WriteU32(uint32(len(in.SigIndices)))
	for _, idx := range in.SigIndices {
		idx.Marshal(w)
	}
}

// UnmarshalInput decodes an Input payload.
func UnmarshalInput(r *primitives.Reader) (*Input, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	idxs := make([]lux.SigIdx, n)
	for i := range idxs {
		idx, err := lux.UnmarshalSigIdx(r)
		if err != nil {
			return nil, err
		}
		idxs[i] = idx
	}
	return &Input{SigIndices: idxs}, nil
}

// Verify checks SigIndices is strictly increasing, the wire invariant
// that keeps the signer list deterministic.
func (in *Input) Verify() error {
	for i := 1; i < len(in.SigIndices); i++ {
		if in.SigIndices[i-1].AddressIndex >= in.SigIndices[i].AddressIndex {
			return ErrInputIndicesNotSortedUnique
		}
	}
	return nil
}

// SigIndicesOf returns the SigIdx list, the shared implementation
// TransferInput and MintOperation forward to.
func (in *Input) SigIndicesOf() []lux.SigIdx {
	return in.SigIndices
}

// TransferInput spends a TransferOutput of the given amount.
type TransferInput struct {
	Amt uint64
	Input
}

func (*TransferInput) TypeID() uint32 { return TransferInputTypeID }

func (in *TransferInput) Marshal(w *primitives.Writer) {
	w.WriteU64(in.Amt)
	in.Input.Marshal(w)
}

func (in *TransferInput) Verify() error {
	if in.Amt == 0 {
		return errors.New("input has no value")
	}
	return in.Input.Verify()
}

func (in *TransferInput) SigIndices() []lux.SigIdx {
	return in.SigIndicesOf()
}

// NewCredential builds the secp256k1fx Credential this input expects.
func (in *TransferInput) NewCredential(sigs [][65]byte) lux.Credential {
	return &Credential{Signatures: sigs}
}

// UnmarshalTransferInput decodes a TransferInput payload.
func UnmarshalTransferInput(r *primitives.Reader) (*TransferInput, error) {
	amt, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	in, err := UnmarshalInput(r)
	if err != nil {
		return nil, err
	}
	return &TransferInput{Amt: amt, Input: *in}, nil
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"

	"github.com/luxfi/txsdk/primitives"
)

// Type tags for this package's Output/Input/Operation/Credential
// elements. Values follow the reference node's enumeration; spec §6
// requires only internal consistency, not these specific literals.
const (
	TransferOutputTypeID uint32 = 0x00000007
	MintOutputTypeID     uint32 = 0x00000006
	TransferInputTypeID  uint32 = 0x00000005
	MintOperationTypeID  uint32 = 0x00000008
	CredentialTypeID     uint32 = 0x00000009
)

// TransferOutput is a plain value-transfer UTXO: an amount gated by
// OutputOwners.
type TransferOutput struct {
	Amt uint64
	OutputOwners
}

func (*TransferOutput) TypeID() uint32 { return TransferOutputTypeID }

func (out *TransferOutput) Marshal(w *primitives.Writer) {
	w.WriteU64(out.Amt)
	out.OutputOwners.Marshal(w)
}

func (out *TransferOutput) Verify() error {
	if out.Amt == 0 {
		return errors.New("output has no value")
	}
	return out.OutputOwners.Verify()
}

// UnmarshalTransferOutput decodes a TransferOutput payload (the type
// tag has already been consumed by the registry dispatcher).
func UnmarshalTransferOutput(r *primitives.Reader) (*TransferOutput, error) {
	amt, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	owners, err := UnmarshalOutputOwners(r)
	if err != nil {
		return nil, err
	}
	return &TransferOutput{Amt: amt, OutputOwners: *owners}, nil
}

// MintOutput grants the right to mint further units of an asset to
// whoever satisfies OutputOwners; consuming it as an input produces a
// MintOperation.
type MintOutput struct {
	OutputOwners
}

func (*MintOutput) TypeID() uint32 { return MintOutputTypeID }

func (out *MintOutput) Marshal(w *primitives.Writer) {
	out.OutputOwners.Marshal(w)
}

func (out *MintOutput) Verify() error {
	return out.OutputOwners.Verify()
}

// UnmarshalMintOutput decodes a MintOutput payload.
func UnmarshalMintOutput(r *primitives.Reader) (*MintOutput, error) {
	owners, err := UnmarshalOutputOwners(r)
	if err != nil {
		return nil, err
	}
	return &MintOutput{OutputOwners: *owners}, nil
}

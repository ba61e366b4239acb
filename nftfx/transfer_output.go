// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nftfx implements the NFT "feature extension": the operation
// and credential kinds spec §6 names at minimum (NFT_TRANSFER_OP,
// NFT_CREDENTIAL), plus the output kind that operation moves between
// owners.
package nftfx

import (
	"errors"

	"github.com/luxfi/constants"

	"github.com/luxfi/txsdk/primitives"
	"github.com/luxfi/txsdk/secp256k1fx"
)

// MaxPayloadSize bounds a TransferOutput's opaque payload.
const MaxPayloadSize = constants.KiB

var (
	ErrNilTransferOutput = errors.New("nil transfer output")
	ErrPayloadTooLarge   = errors.New("payload too large")
)

// TransferOutput is an NFT instance: a group id, an opaque payload
// (metadata/content reference), and the owners who may move it.
type TransferOutput struct {
	GroupID uint32
	Payload []byte
	secp256k1fx.OutputOwners
}

func (*TransferOutput) TypeID() uint32 { return TransferOutputTypeID }

func (out *TransferOutput) Marshal(w *primitives.Writer) {
	w.WriteU32(out.GroupID)
	w.WriteBytes(out.Payload)
	out.OutputOwners.Marshal(w)
}

func (out *TransferOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilTransferOutput
	case len(out.Payload) > MaxPayloadSize:
		return ErrPayloadTooLarge
	default:
		return out.OutputOwners.Verify()
	}
}

// UnmarshalTransferOutput decodes a TransferOutput payload.
func UnmarshalTransferOutput(r *primitives.Reader) (*TransferOutput, error) {
	groupID, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	payload, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	owners, err := secp256k1fx.UnmarshalOutputOwners(r)
	if err != nil {
		return nil, err
	}
	return &TransferOutput{GroupID: groupID, Payload: payload, OutputOwners: *owners}, nil
}

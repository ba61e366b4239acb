// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/primitives"
	"github.com/luxfi/txsdk/secp256k1fx"
)

func testShortID(b byte) ids.ShortID {
	var id ids.ShortID
	id[0] = b
	return id
}

func TestTransferOutputMarshalUnmarshalRoundTrip(t *testing.T) {
	out := &TransferOutput{
		GroupID: 3,
		Payload: []byte("metadata"),
		OutputOwners: secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{testShortID(1)},
		},
	}

	w := primitives.NewWriter(0)
	out.Marshal(w)

	r := primitives.NewReader(w.Bytes())
	got, err := UnmarshalTransferOutput(r)
	require.NoError(t, err)
	require.NoError(t, r.Done())
	require.Equal(t, out.GroupID, got.GroupID)
	require.Equal(t, out.Payload, got.Payload)
}

func TestTransferOutputVerifyRejectsOversizedPayload(t *testing.T) {
	out := &TransferOutput{
		Payload:      make([]byte, MaxPayloadSize+1),
		OutputOwners: secp256k1fx.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{testShortID(1)}},
	}
	require.ErrorIs(t, out.Verify(), ErrPayloadTooLarge)
}

func TestTransferOutputVerifyAcceptsWithinBound(t *testing.T) {
	out := &TransferOutput{
		Payload:      make([]byte, MaxPayloadSize),
		OutputOwners: secp256k1fx.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{testShortID(1)}},
	}
	require.NoError(t, out.Verify())
}

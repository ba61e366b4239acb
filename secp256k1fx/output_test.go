// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/primitives"
)

func TestTransferOutputMarshalUnmarshalRoundTrip(t *testing.T) {
	out := &TransferOutput{
		Amt: 500,
		OutputOwners: OutputOwners{
			Locktime:  0,
			Threshold: 1,
			Addrs:     []ids.ShortID{shortID(1)},
		},
	}

	w := primitives.NewWriter(0)
	out.Marshal(w)

	r := primitives.NewReader(w.Bytes())
	got, err := UnmarshalTransferOutput(r)
	require.NoError(t, err)
	require.NoError(t, r.Done())
	require.Equal(t, out.Amt, got.Amt)
	require.True(t, out.OutputOwners.Equals(&got.OutputOwners))
}

func TestTransferOutputVerifyRejectsZeroAmount(t *testing.T) {
	out := &TransferOutput{
		Amt:          0,
		OutputOwners: OutputOwners{Threshold: 1, Addrs: []ids.ShortID{shortID(1)}},
	}
	require.Error(t, out.Verify())
}

func TestMintOutputMarshalUnmarshalRoundTrip(t *testing.T) {
	out := &MintOutput{
		OutputOwners: OutputOwners{Threshold: 1, Addrs: []ids.ShortID{shortID(1)}},
	}

	w := primitives.NewWriter(0)
	out.Marshal(w)

	r := primitives.NewReader(w.Bytes())
	got, err := UnmarshalMintOutput(r)
	require.NoError(t, err)
	require.NoError(t, r.Done())
	require.True(t, out.OutputOwners.Equals(&got.OutputOwners))
}

func TestOutputTypeIDsAreDistinct(t *testing.T) {
	require.NotEqual(t, (&TransferOutput{}).TypeID(), (&MintOutput{}).TypeID())
}

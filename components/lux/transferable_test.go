// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/txsdk/primitives"
)

func TestTransferableOutputVerifyRejectsNilOut(t *testing.T) {
	o := &TransferableOutput{AssetID: assetID(1)}
	err := o.Verify()
	require.Error(t, err)
	var invariant *primitives.InvariantViolationError
	require.ErrorAs(t, err, &invariant)
}

func TestTransferableInputSigIndicesForwards(t *testing.T) {
	sigs := []SigIdx{{AddressIndex: 0}, {AddressIndex: 1}}
	in := &TransferableInput{
		UTXOID:  UTXOID{TxID: assetID(1)},
		AssetID: assetID(1),
		In:      &testInput{tag: 1, sigs: sigs},
	}
	require.Equal(t, sigs, in.SigIndices())
}

// TestTransferableOperationPreservesUTXOIDOrder is spec §3: a
// TransferableOperation's UtxoId list order is preserved as authored,
// never sorted, unlike a BaseTx's outputs/inputs.
func TestTransferableOperationPreservesUTXOIDOrder(t *testing.T) {
	utxoIDs := []UTXOID{
		{TxID: assetID(2), OutputIndex: 0},
		{TxID: assetID(1), OutputIndex: 0},
	}
	op := &TransferableOperation{
		AssetID: assetID(1),
		UTXOIDs: utxoIDs,
		Op:      &testInput{tag: 1},
	}

	w := primitives.NewWriter(0)
	op.Marshal(w)

	// Decode the AssetId and UtxoId list by hand, bypassing the
	// OperationRegistry dispatch this package's init() never populates
	// (that only happens once secp256k1fx/nftfx are imported).
	r := primitives.NewReader(w.Bytes())
	_, err := r.ReadID()
	require.NoError(t, err)
	n, err := r.ReadU32()
	require.NoError(t, err)
	got := make([]UTXOID, n)
	for i := range got {
		u, err := UnmarshalUTXOID(r)
		require.NoError(t, err)
		got[i] = u
	}
	require.Equal(t, utxoIDs, got)
}

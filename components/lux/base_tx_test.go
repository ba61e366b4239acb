// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/txsdk/primitives"
)

// testInput is a minimal Input used only to exercise BaseTxHeader
// without depending on secp256k1fx (which imports this package).
type testInput struct {
	tag  uint32
	val  byte
	sigs []SigIdx
}

func (i *testInput) TypeID() uint32         { return i.tag }
func (i *testInput) Marshal(w *primitives.Writer) { w.WriteU8(i.val) }
func (i *testInput) Verify() error          { return nil }
func (i *testInput) SigIndices() []SigIdx   { return i.sigs }
func (i *testInput) NewCredential(sigs [][65]byte) Credential {
	return nil
}

func newTestInput(txID byte, idx uint32, val byte) *TransferableInput {
	return &TransferableInput{
		UTXOID:  UTXOID{TxID: assetID(txID), OutputIndex: idx},
		AssetID: assetID(1),
		In:      &testInput{tag: 1, val: val},
	}
}

func TestBaseTxHeaderMarshalUnmarshalRoundTrip(t *testing.T) {
	h := &BaseTxHeader{
		NetworkID:    1,
		BlockchainID: assetID(9),
		Outs: []*TransferableOutput{
			{AssetID: assetID(1), Out: &testOutput{tag: 1, val: 1}},
			{AssetID: assetID(1), Out: &testOutput{tag: 1, val: 2}},
		},
		Ins: []*TransferableInput{
			newTestInput(1, 0, 5),
		},
	}

	w := primitives.NewWriter(0)
	h.Marshal(w)

	r := primitives.NewReader(w.Bytes())
	got, err := UnmarshalBaseTxHeader(r)
	require.NoError(t, err)
	require.NoError(t, r.Done())

	require.Equal(t, h.NetworkID, got.NetworkID)
	require.Equal(t, h.BlockchainID, got.BlockchainID)
	require.Len(t, got.Outs, 2)
	require.Len(t, got.Ins, 1)
}

func TestBaseTxHeaderVerifyRejectsDuplicateUTXO(t *testing.T) {
	dup := newTestInput(1, 0, 1)
	h := &BaseTxHeader{
		NetworkID:    1,
		BlockchainID: assetID(9),
		Ins: []*TransferableInput{
			dup,
			newTestInput(1, 0, 2),
		},
	}

	err := h.Verify()
	require.Error(t, err)
	var invariant *primitives.InvariantViolationError
	require.ErrorAs(t, err, &invariant)
}

func TestBaseTxHeaderVerifyAcceptsDistinctUTXOs(t *testing.T) {
	h := &BaseTxHeader{
		NetworkID:    1,
		BlockchainID: assetID(9),
		Ins: []*TransferableInput{
			newTestInput(1, 0, 1),
			newTestInput(1, 1, 2),
		},
	}
	require.NoError(t, h.Verify())
}

func TestBaseTxHeaderInputIDsCountsDistinctUTXOs(t *testing.T) {
	h := &BaseTxHeader{
		Ins: []*TransferableInput{
			newTestInput(1, 0, 1),
			newTestInput(1, 1, 2),
		},
	}
	require.Equal(t, 2, h.InputIDs().Len())
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/primitives"
)

// testOutput is a minimal Output used only to exercise the canonical
// comparator without depending on secp256k1fx.
type testOutput struct {
	tag uint32
	val byte
}

func (o *testOutput) TypeID() uint32 { return o.tag }
func (o *testOutput) Marshal(w *primitives.Writer) {
	w.WriteU8(o.val)
}
func (o *testOutput) Verify() error { return nil }

func assetID(b byte) ids.ID {
	var id ids.ID
	id[0] = b
	return id
}

// TestSortTransferableOutputsOrdersByCanonicalBytes is spec §8 property
// 2 / fixture S2: two orderings of the same outputs must encode to the
// byte-identical canonical form once sorted.
func TestSortTransferableOutputsOrdersByCanonicalBytes(t *testing.T) {
	a := &TransferableOutput{AssetID: assetID(1), Out: &testOutput{tag: 1, val: 10}}
	b := &TransferableOutput{AssetID: assetID(1), Out: &testOutput{tag: 1, val: 20}}

	outs1 := []*TransferableOutput{a, b}
	outs2 := []*TransferableOutput{b, a}

	SortTransferableOutputs(outs1)
	SortTransferableOutputs(outs2)

	require.True(t, IsSortedTransferableOutputs(outs1))
	require.True(t, IsSortedTransferableOutputs(outs2))

	for i := range outs1 {
		require.True(t, bytes.Equal(outs1[i].Bytes(), outs2[i].Bytes()))
	}
}

func TestIsSortedTransferableOutputsDetectsDisorder(t *testing.T) {
	a := &TransferableOutput{AssetID: assetID(1), Out: &testOutput{tag: 1, val: 10}}
	b := &TransferableOutput{AssetID: assetID(1), Out: &testOutput{tag: 1, val: 20}}

	outs := []*TransferableOutput{b, a}
	require.False(t, IsSortedTransferableOutputs(outs))
}

func TestCanonicalBytesOrdersByTypeIDFirst(t *testing.T) {
	lowTag := &testOutput{tag: 1, val: 255}
	highTag := &testOutput{tag: 2, val: 0}

	require.True(t, bytes.Compare(CanonicalBytes(lowTag), CanonicalBytes(highTag)) < 0)
}

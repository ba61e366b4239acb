// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/primitives"
)

func testNodeID(b byte) ids.NodeID {
	var id ids.NodeID
	id[0] = b
	return id
}

func testShortID(b byte) ids.ShortID {
	var id ids.ShortID
	id[0] = b
	return id
}

func TestAddDefaultSubnetDelegatorTxMarshalUnmarshalRoundTrip(t *testing.T) {
	tx := &AddDefaultSubnetDelegatorTx{
		NodeID:      testNodeID(1),
		Weight:      100,
		StartTime:   1000,
		EndTime:     2000,
		NetworkID:   5,
		Nonce:       1,
		Destination: testShortID(2),
	}

	w := primitives.NewWriter(0)
	tx.Marshal(w)

	r := primitives.NewReader(w.Bytes())
	got, err := UnmarshalAddDefaultSubnetDelegatorTx(r)
	require.NoError(t, err)
	require.NoError(t, r.Done())
	require.Equal(t, tx, got)
}

func TestAddDefaultSubnetDelegatorTxVerifyRejectsBackwardsWindow(t *testing.T) {
	tx := &AddDefaultSubnetDelegatorTx{Weight: 1, StartTime: 2000, EndTime: 1000}
	require.Error(t, tx.Verify())
}

func TestAddDefaultSubnetDelegatorTxVerifyRejectsZeroWeight(t *testing.T) {
	tx := &AddDefaultSubnetDelegatorTx{Weight: 0, StartTime: 1000, EndTime: 2000}
	require.Error(t, tx.Verify())
}

func TestAddDefaultSubnetDelegatorTxVerifyAcceptsWellFormed(t *testing.T) {
	tx := &AddDefaultSubnetDelegatorTx{Weight: 1, StartTime: 1000, EndTime: 2000}
	require.NoError(t, tx.Verify())
}

func TestUnmarshalUnsignedTxUnknownTagFailsClosed(t *testing.T) {
	w := primitives.NewWriter(0)
	w.WriteU32(0xFFFFFFFF)

	r := primitives.NewReader(w.Bytes())
	_, err := UnmarshalUnsignedTx(r)
	require.Error(t, err)
	var unknown *primitives.UnknownTypeIDError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "tx-platform", unknown.Domain)
}

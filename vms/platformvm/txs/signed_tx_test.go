// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/txsdk/keychain"
)

func testPrivateKey() []byte {
	sk := make([]byte, 32)
	for i := range sk {
		sk[i] = byte(i + 1)
	}
	return sk
}

func TestSignProducesSingleSignatureEnvelope(t *testing.T) {
	signer, err := keychain.NewSecp256k1Signer(testPrivateKey())
	require.NoError(t, err)

	tx := &AddDefaultSubnetDelegatorTx{
		NodeID: testNodeID(1), Weight: 1, StartTime: 1000, EndTime: 2000,
		NetworkID: 1, Nonce: 0, Destination: testShortID(2),
	}

	signed, err := Sign(tx, signer)
	require.NoError(t, err)
	require.NotEqual(t, [65]byte{}, signed.Signature)
}

func TestSignedTxStringRoundTrip(t *testing.T) {
	signer, err := keychain.NewSecp256k1Signer(testPrivateKey())
	require.NoError(t, err)

	tx := &AddDefaultSubnetDelegatorTx{
		NodeID: testNodeID(1), Weight: 1, StartTime: 1000, EndTime: 2000,
		NetworkID: 1, Nonce: 0, Destination: testShortID(2),
	}

	signed, err := Sign(tx, signer)
	require.NoError(t, err)

	s := signed.String()
	got, err := SignedTxFromString(s)
	require.NoError(t, err)
	require.Equal(t, signed.Bytes(), got.Bytes())
	require.Equal(t, signed.Signature, got.Signature)
}

func TestSignIsDeterministic(t *testing.T) {
	signer, err := keychain.NewSecp256k1Signer(testPrivateKey())
	require.NoError(t, err)

	tx := &AddDefaultSubnetDelegatorTx{
		NodeID: testNodeID(1), Weight: 1, StartTime: 1000, EndTime: 2000,
		NetworkID: 1, Nonce: 0, Destination: testShortID(2),
	}

	signed1, err := Sign(tx, signer)
	require.NoError(t, err)
	signed2, err := Sign(tx, signer)
	require.NoError(t, err)
	require.Equal(t, signed1.Bytes(), signed2.Bytes())
}

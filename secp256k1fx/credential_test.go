// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/txsdk/primitives"
)

func TestCredentialMarshalUnmarshalRoundTrip(t *testing.T) {
	var sig [primitives.SigLen]byte
	for i := range sig {
		sig[i] = byte(i)
	}
	cred := &Credential{Signatures: [][primitives.SigLen]byte{sig}}

	w := primitives.NewWriter(0)
	cred.Marshal(w)

	r := primitives.NewReader(w.Bytes())
	got, err := UnmarshalCredential(r)
	require.NoError(t, err)
	require.NoError(t, r.Done())
	require.Equal(t, cred.Signatures, got.Signatures)
	require.Equal(t, cred.Sigs(), got.Sigs())
}

func TestCredentialTypeID(t *testing.T) {
	require.Equal(t, CredentialTypeID, (&Credential{}).TypeID())
}

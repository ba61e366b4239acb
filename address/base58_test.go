// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeChecksumRoundTrip(t *testing.T) {
	payload := []byte("a test payload for base-58-check")
	encoded := EncodeChecksum(payload)

	decoded, err := DecodeChecksum(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

// TestCorruptedChecksum is spec fixture S6: flipping any bit in the
// encoded string must fail decoding with ErrChecksumMismatch.
func TestCorruptedChecksum(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	encoded := EncodeChecksum(payload)

	corrupted := []byte(encoded)
	// Flip the last character, which falls within the checksum's
	// base-58 representation for any payload of this length.
	last := len(corrupted) - 1
	if corrupted[last] == 'a' {
		corrupted[last] = 'b'
	} else {
		corrupted[last] = 'a'
	}

	_, err := DecodeChecksum(string(corrupted))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeChecksumTooShort(t *testing.T) {
	_, err := DecodeChecksum("")
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

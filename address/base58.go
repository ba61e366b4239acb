// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address implements the base-58-with-checksum string codec
// spec §4.1/§6 treats as the wire-adjacent string form of a
// SignedTx/UnsignedTx: base58(payload || checksum(payload)).
package address

import (
	"errors"
	"fmt"

	"github.com/luxfi/txsdk/hashing"
	"github.com/mr-tron/base58"
)

// ErrChecksumMismatch is returned by DecodeChecksum when the string is
// not valid base-58, decodes to fewer bytes than a checksum, or its
// trailing four bytes do not match the checksum of the preceding
// payload.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// EncodeChecksum base-58 encodes payload with a 4-byte double-SHA256
// checksum appended.
func EncodeChecksum(payload []byte) string {
	checksum := hashing.Checksum(payload)
	buf := make([]byte, len(payload)+hashing.ChecksumLen)
	copy(buf, payload)
	copy(buf[len(payload):], checksum[:])
	return base58.Encode(buf)
}

// DecodeChecksum base-58 decodes s and verifies its trailing checksum,
// returning the payload with the checksum stripped.
func DecodeChecksum(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChecksumMismatch, err)
	}
	if len(raw) < hashing.ChecksumLen {
		return nil, ErrChecksumMismatch
	}
	split := len(raw) - hashing.ChecksumLen
	payload, wantChecksum := raw[:split], raw[split:]
	gotChecksum := hashing.Checksum(payload)
	for i := 0; i < hashing.ChecksumLen; i++ {
		if gotChecksum[i] != wantChecksum[i] {
			return nil, ErrChecksumMismatch
		}
	}
	return payload, nil
}

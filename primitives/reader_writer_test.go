// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteU8(0xAB)
	w.WriteU16(0x1234)
	w.WriteU32(0xDEADBEEF)
	w.WriteU64(0x0102030405060708)

	r := NewReader(w.Bytes())
	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	require.NoError(t, r.Done())
}

func TestBytesAndStringRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteBytes([]byte{1, 2, 3, 4, 5})
	w.WriteString("hello, lux")

	r := NewReader(w.Bytes())
	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, b)

	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hello, lux", s)
	require.NoError(t, r.Done())
}

func TestTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.ReadU32()
	require.Error(t, err)
	var truncated *TruncatedError
	require.ErrorAs(t, err, &truncated)
	require.Equal(t, 4, truncated.Expected)
	require.Equal(t, 2, truncated.Available)
}

func TestTrailingBytes(t *testing.T) {
	w := NewWriter(0)
	w.WriteU32(1)
	w.WriteU8(0)

	r := NewReader(w.Bytes())
	_, err := r.ReadU32()
	require.NoError(t, err)
	err = r.Done()
	require.Error(t, err)
	var trailing *TrailingBytesError
	require.ErrorAs(t, err, &trailing)
	require.Equal(t, 1, trailing.Remaining)
}

func TestInvalidUTF8(t *testing.T) {
	w := NewWriter(0)
	invalid := []byte{0xff, 0xfe}
	w.WriteU16(uint16(len(invalid)))
	w.WriteFixed(invalid)

	r := NewReader(w.Bytes())
	_, err := r.ReadString()
	require.Error(t, err)
	var invalidUTF8 *InvalidUTF8Error
	require.ErrorAs(t, err, &invalidUTF8)
}

func TestFixedIDRoundTrip(t *testing.T) {
	w := NewWriter(0)
	var id [IDLen]byte
	for i := range id {
		id[i] = byte(i)
	}
	w.WriteID(id)

	var short [ShortIDLen]byte
	for i := range short {
		short[i] = byte(i + 1)
	}
	w.WriteShortID(short)

	var sig [SigLen]byte
	for i := range sig {
		sig[i] = byte(i + 2)
	}
	w.WriteSignature(sig)

	r := NewReader(w.Bytes())
	gotID, err := r.ReadID()
	require.NoError(t, err)
	require.Equal(t, id, [IDLen]byte(gotID))

	gotShort, err := r.ReadShortID()
	require.NoError(t, err)
	require.Equal(t, short, [ShortIDLen]byte(gotShort))

	gotSig, err := r.ReadSignature()
	require.NoError(t, err)
	require.Equal(t, sig, gotSig)

	require.NoError(t, r.Done())
}

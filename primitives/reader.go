// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primitives

import (
	"encoding/binary"
	"unicode/utf8"
)

// Reader walks a byte slice left to right, never reading past its end.
// It is the decode half of the primitive codec described in spec §4.1.
type Reader struct {
	bytes  []byte
	offset int
}

// NewReader wraps b for sequential decoding. b is not copied.
func NewReader(b []byte) *Reader {
	return &Reader{bytes: b}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.bytes) - r.offset
}

// Done fails with TrailingBytesError if any bytes remain unread.
func (r *Reader) Done() error {
	if rem := r.Remaining(); rem != 0 {
		return &TrailingBytesError{Remaining: rem}
	}
	return nil
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return &TruncatedError{Expected: n, Available: r.Remaining()}
	}
	return nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.bytes[r.offset]
	r.offset++
	return v, nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.bytes[r.offset:])
	r.offset += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.bytes[r.offset:])
	r.offset += 4
	return v, nil
}

// ReadU64 reads a big-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.bytes[r.offset:])
	r.offset += 8
	return v, nil
}

// ReadFixed reads exactly n bytes and returns a fresh copy.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.bytes[r.offset:r.offset+n])
	r.offset += n
	return out, nil
}

// ReadBytes reads a u32 length prefix followed by that many bytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return r.ReadFixed(int(n))
}

// ReadString reads a u16 length prefix followed by that many UTF-8
// bytes, failing with InvalidUTF8Error on a malformed decode.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	raw, err := r.ReadFixed(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &InvalidUTF8Error{}
	}
	return string(raw), nil
}

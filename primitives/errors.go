// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package primitives implements the fixed-width, big-endian wire codec
// that every element and transaction type in this module builds on:
// integers, length-prefixed byte arrays and strings, and fixed-length
// identifiers.
package primitives

import "fmt"

// TruncatedError is returned when a decode operation runs off the end
// of the input buffer.
type TruncatedError struct {
	Expected  int
	Available int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated: expected %d bytes, %d available", e.Expected, e.Available)
}

// TrailingBytesError is returned when a parse consumed fewer bytes than
// the framed input provided.
type TrailingBytesError struct {
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("trailing bytes: %d unread", e.Remaining)
}

// UnknownTypeIDError is returned when a type tag has no entry in the
// relevant registry.
type UnknownTypeIDError struct {
	Domain string
	ID     uint32
}

func (e *UnknownTypeIDError) Error() string {
	return fmt.Sprintf("unknown %s type id: %d", e.Domain, e.ID)
}

// InvalidUTF8Error is returned when a length-prefixed string is not
// valid UTF-8.
type InvalidUTF8Error struct{}

func (e *InvalidUTF8Error) Error() string {
	return "invalid utf-8"
}

// InvariantViolationError indicates an internal consistency failure
// that should be unreachable.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Detail)
}

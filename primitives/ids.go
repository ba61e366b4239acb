// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primitives

import "github.com/luxfi/ids"

// IDLen and ShortIDLen are the fixed wire widths of the two identifier
// kinds used throughout the codec: 32-byte asset/blockchain/tx ids and
// 20-byte short (address) ids.
const (
	IDLen      = 32
	ShortIDLen = 20
	SigLen     = 65
)

// ReadID reads a 32-byte identifier.
func (r *Reader) ReadID() (ids.ID, error) {
	raw, err := r.ReadFixed(IDLen)
	if err != nil {
		return ids.ID{}, err
	}
	var id ids.ID
	copy(id[:], raw)
	return id, nil
}

// WriteID appends a 32-byte identifier verbatim.
func (w *Writer) WriteID(id ids.ID) {
	w.WriteFixed(id[:])
}

// ReadShortID reads a 20-byte short identifier.
func (r *Reader) ReadShortID() (ids.ShortID, error) {
	raw, err := r.ReadFixed(ShortIDLen)
	if err != nil {
		return ids.ShortID{}, err
	}
	var id ids.ShortID
	copy(id[:], raw)
	return id, nil
}

// WriteShortID appends a 20-byte short identifier verbatim.
func (w *Writer) WriteShortID(id ids.ShortID) {
	w.WriteFixed(id[:])
}

// ReadNodeID reads a 20-byte validator node identifier.
func (r *Reader) ReadNodeID() (ids.NodeID, error) {
	raw, err := r.ReadFixed(ShortIDLen)
	if err != nil {
		return ids.NodeID{}, err
	}
	var id ids.NodeID
	copy(id[:], raw)
	return id, nil
}

// WriteNodeID appends a 20-byte validator node identifier verbatim.
func (w *Writer) WriteNodeID(id ids.NodeID) {
	w.WriteFixed(id[:])
}

// ReadSignature reads a 65-byte recoverable ECDSA signature.
func (r *Reader) ReadSignature() ([SigLen]byte, error) {
	var sig [SigLen]byte
	raw, err := r.ReadFixed(SigLen)
	if err != nil {
		return sig, err
	}
	copy(sig[:], raw)
	return sig, nil
}

// WriteSignature appends a 65-byte recoverable ECDSA signature.
func (w *Writer) WriteSignature(sig [SigLen]byte) {
	w.WriteFixed(sig[:])
}

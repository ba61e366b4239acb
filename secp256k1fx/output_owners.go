// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package secp256k1fx implements the secp256k1 "feature extension":
// the output/input/operation/credential kinds that gate spending on a
// threshold of ECDSA signatures, the minimum element set a BaseTx
// needs.
package secp256k1fx

import (
	"bytes"
	"errors"
	"sort"

	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/components/verify"
	"github.com/luxfi/txsdk/primitives"
)

var (
	ErrNilOutput            = errors.New("nil output")
	ErrOutputUnspendable    = errors.New("output is unspendable")
	ErrOutputUnoptimized    = errors.New("output representation should be optimized")
	ErrAddrsNotSortedUnique = errors.New("addresses not sorted and unique")
)

// OutputOwners is the spending condition every secp256k1fx output
// embeds: a locktime, a signature threshold, and the address set the
// signatures must come from. It is not itself an Element — it has no
// type tag of its own, it is inlined into TransferOutput/MintOutput.
type OutputOwners struct {
	verify.IsNotState

	Locktime  uint64
	Threshold uint32
	Addrs     []ids.ShortID
}

// Marshal writes Locktime, Threshold, then the address count and list.
func (out *OutputOwners) Marshal(w *primitives.Writer) {
	w.WriteU64(out.Locktime)
	w.WriteU32(out.Threshold)
	w.WriteU32(uint32(len(out.Addrs)))
	for _, addr := range out.Addrs {
		w.WriteShortID(addr)
	}
}

// UnmarshalOutputOwners reads an OutputOwners.
func UnmarshalOutputOwners(r *primitives.Reader) (*OutputOwners, error) {
	locktime, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	threshold, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	addrs := make([]ids.ShortID, n)
	for i := range addrs {
		addr, err := r.ReadShortID()
		if err != nil {
			return nil, err
		}
		addrs[i] = addr
	}
	return &OutputOwners{Locktime: locktime, Threshold: threshold, Addrs: addrs}, nil
}

// Addresses returns the raw bytes of the addresses that manage this output.
func (out *OutputOwners) Addresses() [][]byte {
	addrs := make([][]byte, len(out.Addrs))
	for i, addr := range out.Addrs {
		addrs[i] = addr[:]
	}
	return addrs
}

// Equals returns true if the provided owners create the same condition.
func (out *OutputOwners) Equals(other *OutputOwners) bool {
	if out == other {
		return true
	}
	if out == nil || other == nil || out.Locktime != other.Locktime ||
		out.Threshold != other.Threshold || len(out.Addrs) != len(other.Addrs) {
		return false
	}
	for i, addr := range out.Addrs {
		if addr != other.Addrs[i] {
			return false
		}
	}
	return true
}

// Verify checks the threshold is satisfiable, optimized, and that the
// address list is sorted and unique — spec §3 implicitly requires a
// deterministic owner set for the canonical comparator to be stable.
func (out *OutputOwners) Verify() error {
	switch {
	case out == nil:
		return ErrNilOutput
	case out.Threshold > uint32(len(out.Addrs)):
		return ErrOutputUnspendable
	case out.Threshold == 0 && len(out.Addrs) > 0:
		return ErrOutputUnoptimized
	case !isSortedAndUniqueShortIDs(out.Addrs):
		return ErrAddrsNotSortedUnique
	default:
		return nil
	}
}

// Sort orders Addrs into the canonical lex order Verify requires.
func (out *OutputOwners) Sort() {
	sort.Slice(out.Addrs, func(i, j int) bool {
		return bytes.Compare(out.Addrs[i][:], out.Addrs[j][:]) < 0
	})
}

func isSortedAndUniqueShortIDs(addrs []ids.ShortID) bool {
	for i := 1; i < len(addrs); i++ {
		if bytes.Compare(addrs[i-1][:], addrs[i][:]) >= 0 {
			return false
		}
	}
	return true
}

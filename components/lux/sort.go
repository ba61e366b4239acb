// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"bytes"
	"sort"
)

// SortTransferableOutputs orders outs by ascending canonical byte
// form, the comparator spec §4.2/§8 property 2 requires at encode
// time. Decode never calls this: incoming order is trusted as-is.
func SortTransferableOutputs(outs []*TransferableOutput) {
	sort.Slice(outs, func(i, j int) bool {
		return bytes.Compare(outs[i].Bytes(), outs[j].Bytes()) < 0
	})
}

// IsSortedTransferableOutputs reports whether outs is already in
// canonical order, used by tests asserting property 2 directly.
func IsSortedTransferableOutputs(outs []*TransferableOutput) bool {
	for i := 1; i < len(outs); i++ {
		if bytes.Compare(outs[i-1].Bytes(), outs[i].Bytes()) > 0 {
			return false
		}
	}
	return true
}

// SortTransferableInputs orders ins by ascending canonical byte form.
func SortTransferableInputs(ins []*TransferableInput) {
	sort.Slice(ins, func(i, j int) bool {
		return bytes.Compare(ins[i].Bytes(), ins[j].Bytes()) < 0
	})
}

// IsSortedTransferableInputs reports whether ins is already in
// canonical order.
func IsSortedTransferableInputs(ins []*TransferableInput) bool {
	for i := 1; i < len(ins); i++ {
		if bytes.Compare(ins[i-1].Bytes(), ins[i].Bytes()) > 0 {
			return false
		}
	}
	return true
}

// sizeestimate.go: an approximate payload-size helper for the memory
// heuristic. Precise accounting is explicitly not required by the design.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

import "unsafe"

// EstimateSize returns a best-effort byte-size estimate for v, suitable for
// the size argument to NewStrong/Create when a caller has no better figure.
// It accounts for the static size of v's type plus, for the common
// dynamically-sized kinds, the length of the backing storage; it does not
// walk nested pointers or interfaces, so it undercounts deeply nested
// structures. Callers with precise knowledge of their payload's footprint
// should pass that instead.
func EstimateSize[T any](v T) int64 {
	size := int64(unsafe.Sizeof(v))
	switch val := any(v).(type) {
	case string:
		size += int64(len(val))
	case []byte:
		size += int64(cap(val))
	}
	return size
}

// controlblock.go: the shared heap record behind every Strong/Weak pair.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

import "sync/atomic"

// controlBlock is the heap record shared by a Strong[T] and its clones, and
// by every Weak[T] descending from them. Its own pointer identity is the
// "stable object identity" a Collector registry keys on.
//
// weak starts at 1 the moment strong becomes nonzero: that extra count
// represents the strong side's claim on the block's memory, so a Weak
// handle can never outrace payload destruction into a freed block. A
// Weak.Upgrade succeeding is therefore never racing a concurrent final
// Strong.Drop: the implicit unit keeps the block alive until the strong
// side explicitly relinquishes it.
type controlBlock[T any] struct {
	strong atomic.Int64
	weak   atomic.Int64
	mark   atomic.Bool

	size int64
	disp bool // true once the destructor has run

	value T
}

// Disposable is an optional capability a payload type may implement. If the
// stored value satisfies it, Dispose is invoked exactly once, when the last
// Strong handle drops. Go has no destructors; this is the idiomatic stand-in
// for running a payload destructor on release.
type Disposable interface {
	Dispose()
}

func newControlBlock[T any](value T, size int64) *controlBlock[T] {
	cb := &controlBlock[T]{size: size, value: value}
	cb.strong.Store(1)
	cb.weak.Store(1) // implicit reference held by the strong side
	return cb
}

// release runs once, when strong has just dropped from 1 to 0: it disposes
// the payload and then gives up the implicit weak unit.
func (cb *controlBlock[T]) release() {
	if d, ok := any(cb.value).(Disposable); ok {
		d.Dispose()
	}
	cb.disp = true
	var zero T
	cb.value = zero // drop anything the payload itself was holding
	cb.dropWeak()
}

// dropWeak is the weak-side decrement shared by Weak.Drop and the implicit
// unit release above; reaching zero means the control block itself is now
// unreferenced from anywhere and Go's own collector may reclaim it.
func (cb *controlBlock[T]) dropWeak() {
	cb.weak.Add(-1)
}

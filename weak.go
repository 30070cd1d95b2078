// weak.go: Weak[T], the non-owning handle.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

// Weak is a non-owning handle: it keeps the control block alive but never
// the payload. A Weak handle existing anywhere guarantees weakCount >= 1.
type Weak[T any] struct {
	cb *controlBlock[T]
}

// Clone increments weakCount and returns a new Weak handle to the same
// control block.
func (w *Weak[T]) Clone() *Weak[T] {
	w.cb.weak.Add(1)
	return &Weak[T]{cb: w.cb}
}

// Drop relinquishes this handle's share of the control block.
func (w *Weak[T]) Drop() {
	w.cb.dropWeak()
}

// Upgrade attempts to produce a new Strong handle to the payload. It
// succeeds iff the payload is still alive (strongCount > 0 at the moment of
// the attempt), via a compare-and-swap loop so it is lock-free and
// linearizable against a concurrent final Strong.Drop: either the CAS reads
// the still-positive count and wins, or it reads zero and the payload is
// correctly reported dead.
func (w *Weak[T]) Upgrade() (*Strong[T], bool) {
	for {
		cur := w.cb.strong.Load()
		if cur <= 0 {
			return nil, false
		}
		if w.cb.strong.CompareAndSwap(cur, cur+1) {
			return &Strong[T]{cb: w.cb}, true
		}
	}
}

// IsValid is a non-authoritative snapshot of liveness: the payload may be
// dropped by another goroutine immediately after this returns true.
func (w *Weak[T]) IsValid() bool {
	return w.cb.strong.Load() > 0
}

// identity returns the control block's stable address, used by Collector to
// test whether an upgraded handle refers to a tracked object.
func (w *Weak[T]) identity() *controlBlock[T] {
	return w.cb
}

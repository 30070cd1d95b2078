// strong.go: Strong[T], the owning handle.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

// Strong is an owning handle to a T. A Strong handle existing anywhere
// guarantees the payload is live: strongCount >= 1 for as long as at least
// one Strong clone survives.
type Strong[T any] struct {
	cb *controlBlock[T]
}

// NewStrong allocates a control block for value and returns the first
// Strong handle to it. size is the caller's best estimate of the payload's
// footprint in bytes, fed only to the collector's memory heuristic; pass 0
// (or use EstimateSize) if accounting isn't needed.
func NewStrong[T any](value T, size int64) *Strong[T] {
	return &Strong[T]{cb: newControlBlock(value, size)}
}

// Clone increments strongCount and returns a new handle sharing the same
// control block.
func (s *Strong[T]) Clone() *Strong[T] {
	s.cb.strong.Add(1)
	return &Strong[T]{cb: s.cb}
}

// Drop relinquishes this handle's share of ownership. If it was the last
// strong handle, the payload is released immediately (see Disposable) and
// the control block's implicit weak unit is given up.
func (s *Strong[T]) Drop() {
	if s.cb.strong.Add(-1) == 0 {
		s.cb.release()
	}
}

// AsRef returns a pointer to the payload. Valid for as long as this handle
// (or any clone) is held.
func (s *Strong[T]) AsRef() *T {
	return &s.cb.value
}

// TryAsMut returns an exclusive pointer to the payload iff no other Strong
// or Weak handle exists (strongCount == 1 and weakCount == 1, i.e. only the
// implicit unit remains). Otherwise it returns nil, false without side
// effects.
func (s *Strong[T]) TryAsMut() (*T, bool) {
	if s.cb.strong.Load() == 1 && s.cb.weak.Load() == 1 {
		return &s.cb.value, true
	}
	return nil, false
}

// GetMut is TryAsMut but panics on a uniqueness violation, surfacing logic
// bugs (an unexpected outstanding alias) loudly rather than returning a
// silently-wrong pointer. The panic value is the structured error built by
// NewErrNotUnique; left unrecovered, it terminates the program.
func (s *Strong[T]) GetMut() *T {
	if ref, ok := s.TryAsMut(); ok {
		return ref
	}
	panic(NewErrNotUnique(s.cb.strong.Load(), s.cb.weak.Load()))
}

// AsWeak returns a new non-owning Weak handle to the same control block.
func (s *Strong[T]) AsWeak() *Weak[T] {
	s.cb.weak.Add(1)
	return &Weak[T]{cb: s.cb}
}

// StrongRef reports the current strong reference count.
func (s *Strong[T]) StrongRef() int64 {
	return s.cb.strong.Load()
}

// WeakRef reports the user-visible weak reference count, excluding the
// implicit unit held while the payload is alive.
func (s *Strong[T]) WeakRef() int64 {
	w := s.cb.weak.Load()
	if s.cb.strong.Load() > 0 && w > 0 {
		return w - 1
	}
	return w
}

// identity returns the control block's stable address, used by Collector as
// the registry key.
func (s *Strong[T]) identity() *controlBlock[T] {
	return s.cb
}

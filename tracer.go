// tracer.go: the tracing capability a Collector's payload type must provide.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

// Traceable is the capability every payload type managed by a Collector
// must implement. Trace appends a Weak handle for every other tracked
// object the receiver holds directly, or transitively through non-GC data.
// Implementations must enumerate all such references: an omission frees a
// live object out from under whoever still holds it (a use-after-free bug
// class, not a recoverable error this library can detect).
//
// Trace must be side-effect-free with respect to any Collector — it runs
// under the collector's lock, so calling Attach, Detach or Collect from
// inside it deadlocks. A type with no outgoing references (a leaf) may
// implement Trace as an empty body.
type Traceable[T any] interface {
	Trace(out *RefList[T])
}

// RefList is the mutable accumulator a Trace implementation appends
// outgoing Weak handles to. A Collector reuses a single RefList for every
// worklist item of a pass, resetting it between items, to avoid
// reallocating on every object visited.
type RefList[T Traceable[T]] struct {
	refs []*Weak[T]
}

// Append records one outgoing reference.
func (r *RefList[T]) Append(w *Weak[T]) {
	r.refs = append(r.refs, w)
}

func (r *RefList[T]) reset() {
	r.refs = r.refs[:0]
}

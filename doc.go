// Package charon provides a hybrid reference-counted / tracing garbage
// collector for Go object graphs that contain cycles.
//
// # Overview
//
// charon layers two disciplines:
//
//   - Reference counting (Strong[T] / Weak[T]) gives deterministic
//     destruction for acyclic data and cheap identification of externally
//     rooted objects.
//   - A stop-the-world mark-and-sweep Collector[T] reclaims objects whose
//     only strong references are held by its own tracking registry — the
//     cyclic garbage that counting alone can never free.
//
// # Quick Start
//
//	// Edges is a separately-synchronized, append-only edge list. Node
//	// itself is copied by value on every Trace call, so mutable graph
//	// structure lives behind a pointer field rather than in Node directly.
//	type Edges struct {
//	    mu   sync.Mutex
//	    refs []*charon.Weak[Node]
//	}
//
//	func (e *Edges) Add(w *charon.Weak[Node]) {
//	    e.mu.Lock()
//	    defer e.mu.Unlock()
//	    e.refs = append(e.refs, w)
//	}
//
//	type Node struct {
//	    Value int
//	    Out   *Edges
//	}
//
//	func (n Node) Trace(out *charon.RefList[Node]) {
//	    n.Out.mu.Lock()
//	    defer n.Out.mu.Unlock()
//	    for _, w := range n.Out.refs {
//	        out.Append(w)
//	    }
//	}
//
//	func main() {
//	    gc := charon.New[Node]()
//
//	    a := gc.Create(Node{Value: 1, Out: &Edges{}}, 0)
//	    b := gc.Create(Node{Value: 2, Out: &Edges{}}, 0)
//	    // link a -> b -> a through weak edges so the cycle doesn't
//	    // inflate strong counts
//	    a.AsRef().Out.Add(b.AsWeak())
//	    b.AsRef().Out.Add(a.AsWeak())
//
//	    a.Drop()
//	    b.Drop()
//	    gc.Collect() // both nodes are reclaimed
//	}
//
// # Cyclic Ownership
//
// The collector's registry holds exactly one strong handle per tracked
// object, so cyclic garbage is indistinguishable from externally rooted
// data by reference counts alone. Tracing from the predicate
// strong_count > 1 (the registry's own reference does not count) cleanly
// separates roots from cycles without requiring user-declared roots. The
// library therefore recommends expressing graph edges as Weak[T] handles,
// which keeps that predicate tight.
//
// Because Trace takes T by value, a payload's mutable structure must live
// behind a pointer field (as Edges does above) rather than directly in T:
// GetMut's exclusivity check (strongCount == 1, weakCount == 1) is
// naturally violated the moment any Weak handle into a cycle exists, so
// cyclic graphs are built by mutating through such a pointer field via
// AsRef, not through GetMut.
//
// # Observability
//
// Logger, TimeProvider and MetricsCollector are optional, injectable
// ambient dependencies (see Config) with zero-overhead no-op defaults.
// The separate charon/otel submodule implements MetricsCollector using
// OpenTelemetry.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package charon

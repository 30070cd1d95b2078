// tracer_test.go: tests for RefList accumulation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

import "testing"

type tracerNode struct {
	edges []*Weak[tracerNode]
}

func (n tracerNode) Trace(out *RefList[tracerNode]) {
	for _, e := range n.edges {
		out.Append(e)
	}
}

func TestRefList_AppendAndReset(t *testing.T) {
	a := NewStrong(tracerNode{}, 0)
	defer a.Drop()
	b := NewStrong(tracerNode{}, 0)
	defer b.Drop()

	var out RefList[tracerNode]
	out.Append(a.AsWeak())
	out.Append(b.AsWeak())

	if len(out.refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(out.refs))
	}

	out.reset()
	if len(out.refs) != 0 {
		t.Errorf("expected 0 refs after reset, got %d", len(out.refs))
	}

	// reset must preserve the backing array for reuse, not discard it.
	if cap(out.refs) < 2 {
		t.Errorf("expected reset to keep capacity >= 2, got %d", cap(out.refs))
	}
	out.Append(a.AsWeak())
	if len(out.refs) != 1 {
		t.Errorf("expected 1 ref after reuse, got %d", len(out.refs))
	}
}

func TestTraceable_TraceVisitsEdges(t *testing.T) {
	target := NewStrong(tracerNode{}, 0)
	defer target.Drop()

	n := tracerNode{edges: []*Weak[tracerNode]{target.AsWeak()}}

	var out RefList[tracerNode]
	n.Trace(&out)

	if len(out.refs) != 1 {
		t.Fatalf("expected 1 traced ref, got %d", len(out.refs))
	}
	if out.refs[0].identity() != target.identity() {
		t.Error("traced ref should point at the same control block as target")
	}
}

// metrics_test.go: tests for MetricsCollector interface and NoOpMetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package charon

import (
	"sync"
	"testing"
)

func TestNoOpMetricsCollector(t *testing.T) {
	collector := NoOpMetricsCollector{}

	// Should not panic.
	collector.RecordCollection(1000, 10, 5)
	collector.RecordAttach(true)
	collector.RecordAttach(false)
	collector.RecordDetach(true)
	collector.RecordDetach(false)
}

// recordingCollector is a test double that records every call it receives,
// used to verify the Collector invokes the right hook at the right time.
type recordingCollector struct {
	mu         sync.Mutex
	collections int
	attaches    []bool
	detaches    []bool
}

func (r *recordingCollector) RecordCollection(durationNs int64, objectsScanned, objectsFreed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections++
}

func (r *recordingCollector) RecordAttach(newlyTracked bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attaches = append(r.attaches, newlyTracked)
}

func (r *recordingCollector) RecordDetach(existed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detaches = append(r.detaches, existed)
}

type metricsLeaf struct{ N int }

func (metricsLeaf) Trace(*RefList[metricsLeaf]) {}

func TestCollector_RecordsAttachAndDetach(t *testing.T) {
	rc := &recordingCollector{}
	gc := New[metricsLeaf]()
	gc.SetMetricsCollector(rc)
	defer func() { _ = gc.Close() }()

	h := gc.Create(metricsLeaf{N: 1}, 0)
	gc.Attach(h.Clone())
	gc.Detach(h)

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if len(rc.attaches) != 2 || !rc.attaches[0] || rc.attaches[1] {
		t.Errorf("expected attaches [true false], got %v", rc.attaches)
	}
	if len(rc.detaches) != 1 || !rc.detaches[0] {
		t.Errorf("expected detaches [true], got %v", rc.detaches)
	}
}

func TestCollector_RecordsCollection(t *testing.T) {
	rc := &recordingCollector{}
	gc := New[metricsLeaf]()
	gc.SetMetricsCollector(rc)
	defer func() { _ = gc.Close() }()

	gc.Create(metricsLeaf{N: 1}, 0).Drop()
	gc.Collect()

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.collections != 1 {
		t.Errorf("expected 1 recorded collection, got %d", rc.collections)
	}
}

package benchmarks

import (
	"fmt"
	"testing"

	"github.com/agilira/charon"
)

// leaf is a zero-edge payload used to isolate allocation and registry
// bookkeeping cost from mark-propagation cost.
type leaf struct{}

func (leaf) Trace(*charon.RefList[leaf]) {}

// ring is a cyclic payload: each node points at the next, and the last
// points back at the first, so reference counting alone can never free it.
type ring struct {
	out *ringEdges
}

type ringEdges struct {
	refs []*charon.Weak[ring]
}

func (r ring) Trace(out *charon.RefList[ring]) {
	for _, w := range r.out.refs {
		out.Append(w)
	}
}

// =============================================================================
// CREATE/DROP THROUGHPUT
// =============================================================================

// BenchmarkCreateDrop measures the Attach/Drop hot path with the percentage
// trigger disabled, isolating handle bookkeeping from collection cost.
func BenchmarkCreateDrop(b *testing.B) {
	gc := charon.New[leaf]()
	defer gc.Close()
	gc.SetPercentageThreshold(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := gc.Create(leaf{}, 0)
		h.Drop()
	}
}

// BenchmarkCreateDropWithPercentageTrigger measures the default configuration,
// where every Attach may run a pass once the threshold is crossed.
func BenchmarkCreateDropWithPercentageTrigger(b *testing.B) {
	gc := charon.New[leaf]()
	defer gc.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := gc.Create(leaf{}, 0)
		h.Drop()
	}
}

// =============================================================================
// COLLECTION THROUGHPUT ACROSS REGISTRY SIZES
// =============================================================================

func buildCycleRegistry(gc *charon.Collector[ring], n int) {
	handles := make([]*charon.Strong[ring], n)
	for i := 0; i < n; i++ {
		handles[i] = gc.Create(ring{out: &ringEdges{}}, 0)
	}
	for i := 0; i < n; i++ {
		next := handles[(i+1)%n]
		handles[i].AsRef().out.refs = append(handles[i].AsRef().out.refs, next.AsWeak())
	}
	for _, h := range handles {
		h.Drop()
	}
}

// BenchmarkCollectCycles measures a full mark-and-sweep pass over registries
// made entirely of a single N-node cycle with no external roots. With no
// roots the worklist starts empty, so the pass does no mark propagation:
// its cost is the root scan plus sweeping (and releasing) every node.
func BenchmarkCollectCycles(b *testing.B) {
	for _, n := range []int{10, 100, 1_000, 10_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			gc := charon.New[ring]()
			defer gc.Close()
			gc.SetPercentageThreshold(nil)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				buildCycleRegistry(gc, n)
				b.StartTimer()
				gc.Collect()
			}
		})
	}
}

// BenchmarkCollectLeaves measures a pass over a registry of unreferenced
// leaves, the best case where no mark propagation work happens at all.
func BenchmarkCollectLeaves(b *testing.B) {
	for _, n := range []int{10, 100, 1_000, 10_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			gc := charon.New[leaf]()
			defer gc.Close()
			gc.SetPercentageThreshold(nil)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				for j := 0; j < n; j++ {
					gc.Create(leaf{}, 0).Drop()
				}
				b.StartTimer()
				gc.Collect()
			}
		})
	}
}

// collector.go: the registry and mark-and-sweep machinery.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

import (
	"sync"
	"time"
)

// Collector tracks a registry of Strong[T] handles and reclaims cyclic
// garbage with a stop-the-world mark-and-sweep pass. A single
// sync.Mutex guards the registry and the trigger counters; a pass runs to
// completion without suspension once started.
type Collector[T Traceable[T]] struct {
	mu       sync.Mutex
	registry map[*controlBlock[T]]*Strong[T]

	attachCounter   int64
	allocatedMemory int64

	percentageThreshold *int
	memoryThreshold     *int64

	logger  Logger
	clock   TimeProvider
	metrics MetricsCollector
	journal *Journal

	collections  int64
	lastFreed    int
	lastDuration time.Duration
}

// New constructs a Collector with the default percentage threshold (20)
// and no memory threshold.
func New[T Traceable[T]]() *Collector[T] {
	return newCollector[T](intPtr(DefaultPercentageThreshold), nil, DefaultConfig())
}

// NewWithPercentage constructs a Collector that triggers a collection once
// attach_counter*100 >= object_count*percentage.
func NewWithPercentage[T Traceable[T]](percentage int) *Collector[T] {
	return newCollector[T](intPtr(percentage), nil, DefaultConfig())
}

// NewWithMemoryThreshold constructs a Collector that triggers a collection
// once allocated memory reaches the given number of bytes, with the
// percentage trigger disabled.
func NewWithMemoryThreshold[T Traceable[T]](bytes int64) *Collector[T] {
	return newCollector[T](nil, int64Ptr(bytes), DefaultConfig())
}

// NewWithThresholds constructs a Collector with both triggers active (OR
// semantics: either firing runs a pass).
func NewWithThresholds[T Traceable[T]](percentage int, bytes int64) *Collector[T] {
	return newCollector[T](intPtr(percentage), int64Ptr(bytes), DefaultConfig())
}

// NewWithConfig constructs a Collector from a full Config, wiring the
// ambient Logger/TimeProvider/MetricsCollector/Journal. It returns a
// structured error if cfg.Validate or journal setup fails.
func NewWithConfig[T Traceable[T]](cfg Config) (*Collector[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := newCollector[T](cfg.PercentageThreshold, cfg.MemoryThreshold, cfg)
	if cfg.JournalPath != "" {
		j, err := OpenJournal(cfg.JournalPath)
		if err != nil {
			return nil, err
		}
		c.journal = j
	}
	return c, nil
}

// newCollector assumes cfg has already been validated by the caller.
func newCollector[T Traceable[T]](percentage *int, memory *int64, cfg Config) *Collector[T] {
	return &Collector[T]{
		registry:            make(map[*controlBlock[T]]*Strong[T]),
		percentageThreshold: percentage,
		memoryThreshold:     memory,
		logger:              cfg.Logger,
		clock:               cfg.TimeProvider,
		metrics:             cfg.MetricsCollector,
	}
}

// SetLogger late-binds a Logger, for collectors constructed without Config.
func (c *Collector[T]) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

// SetMetricsCollector late-binds a MetricsCollector.
func (c *Collector[T]) SetMetricsCollector(m MetricsCollector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = m
}

// Create allocates a Strong handle for value and attaches it in one step.
func (c *Collector[T]) Create(value T, size int64) *Strong[T] {
	h := NewStrong(value, size)
	c.Attach(h)
	return h
}

// Attach registers a clone of h in the registry, keyed by control-block
// identity. A duplicate attach of an already-tracked object leaves the
// registry and the memory tally unchanged, so the object is never
// double-counted; the attach counter still advances on every call, new or
// duplicate. May trigger a
// collection pass -- except the attach that fills a previously empty
// registry, which always skips the heuristic, since there is nothing yet
// to collect.
func (c *Collector[T]) Attach(h *Strong[T]) {
	c.mu.Lock()
	wasEmpty := len(c.registry) == 0

	cb := h.identity()
	_, already := c.registry[cb]
	if !already {
		c.registry[cb] = h.Clone()
		c.allocatedMemory += cb.size
	}
	c.attachCounter++
	c.logger.Debug("charon: attach", "already_tracked", already, "objects", len(c.registry))
	c.metrics.RecordAttach(!already)

	if !wasEmpty && c.shouldCollectLocked() {
		c.collectLocked()
	}
	c.mu.Unlock()
}

// Detach removes h's entry if present and reports whether it existed. It
// never runs a collection pass.
func (c *Collector[T]) Detach(h *Strong[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cb := h.identity()
	tracked, ok := c.registry[cb]
	c.logger.Debug("charon: detach", "existed", ok, "objects", len(c.registry))
	if !ok {
		c.metrics.RecordDetach(false)
		return false
	}
	delete(c.registry, cb)
	c.allocatedMemory -= cb.size
	tracked.Drop()
	c.metrics.RecordDetach(true)
	return true
}

// Collect unconditionally runs one mark-and-sweep pass.
func (c *Collector[T]) Collect() {
	c.mu.Lock()
	c.collectLocked()
	c.mu.Unlock()
}

// shouldCollectLocked evaluates the trigger heuristic. Callers must hold mu.
func (c *Collector[T]) shouldCollectLocked() bool {
	if len(c.registry) == 0 {
		return false
	}
	if c.percentageThreshold != nil {
		if c.attachCounter*100 >= int64(len(c.registry))*int64(*c.percentageThreshold) {
			return true
		}
	}
	if c.memoryThreshold != nil && c.allocatedMemory >= *c.memoryThreshold {
		return true
	}
	return false
}

// collectLocked runs the five-step mark-and-sweep pass described in the
// design. Callers must hold mu; the pass runs to completion without
// suspension.
func (c *Collector[T]) collectLocked() {
	start := c.clock.Now()
	scanned := len(c.registry)
	c.logger.Info("charon: collection starting", "objects", scanned)

	// 1. Root identification + 2. mark clear.
	var worklist []*controlBlock[T]
	for cb := range c.registry {
		cb.mark.Store(false)
	}
	for cb := range c.registry {
		if cb.strong.Load() > 1 {
			cb.mark.Store(true)
			worklist = append(worklist, cb)
		}
	}

	// 3. Mark propagation.
	var acc RefList[T]
	for len(worklist) > 0 {
		n := len(worklist) - 1
		cb := worklist[n]
		worklist = worklist[:n]

		acc.reset()
		cb.value.Trace(&acc)
		for _, w := range acc.refs {
			upgraded, ok := w.Upgrade()
			if !ok {
				continue
			}
			target := upgraded.identity()
			if _, tracked := c.registry[target]; tracked && !target.mark.Load() {
				target.mark.Store(true)
				worklist = append(worklist, target)
			}
			upgraded.Drop()
		}
	}

	// 4. Sweep.
	freed := 0
	for cb, h := range c.registry {
		if cb.mark.Load() {
			continue
		}
		delete(c.registry, cb)
		c.allocatedMemory -= cb.size
		h.Drop()
		freed++
	}

	// 5. Reset.
	c.attachCounter = 0
	c.collections++
	c.lastFreed = freed
	c.lastDuration = time.Duration(c.clock.Now() - start)

	c.logger.Info("charon: collection finished", "freed", freed, "remaining", len(c.registry))
	c.metrics.RecordCollection(int64(c.lastDuration), scanned, freed)
	if c.journal != nil {
		if err := c.journal.Record(start, scanned, freed, c.lastDuration); err != nil {
			c.logger.Warn("charon: journal write failed", "error", err.Error())
		}
	}
}

// ObjectCount reports the number of currently registered objects.
func (c *Collector[T]) ObjectCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.registry)
}

// AllocatedMemory reports the sum of payload_size across registered
// objects.
func (c *Collector[T]) AllocatedMemory() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocatedMemory
}

// MemoryThreshold reports the configured memory threshold, if any.
func (c *Collector[T]) MemoryThreshold() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.memoryThreshold == nil {
		return 0, false
	}
	return *c.memoryThreshold, true
}

// SetMemoryThreshold updates or clears the memory threshold.
func (c *Collector[T]) SetMemoryThreshold(bytes *int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memoryThreshold = bytes
}

// PercentageThreshold reports the configured percentage threshold, if any.
func (c *Collector[T]) PercentageThreshold() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.percentageThreshold == nil {
		return 0, false
	}
	return *c.percentageThreshold, true
}

// SetPercentageThreshold updates or clears the percentage threshold.
func (c *Collector[T]) SetPercentageThreshold(percentage *int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.percentageThreshold = percentage
}

// GetAll returns a snapshot sequence of clones of the registry's strong
// handles, taken under the collector lock for a deterministic view.
func (c *Collector[T]) GetAll() []*Strong[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Strong[T], 0, len(c.registry))
	for _, h := range c.registry {
		out = append(out, h.Clone())
	}
	return out
}

// Stats returns a point-in-time snapshot of the collector's bookkeeping.
func (c *Collector[T]) Stats() CollectorStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CollectorStats{
		ObjectCount:            len(c.registry),
		AllocatedMemory:        c.allocatedMemory,
		Collections:            c.collections,
		LastCollectionFreed:    c.lastFreed,
		LastCollectionDuration: c.lastDuration,
	}
}

// Close drops the collector's own strong handle for every tracked object,
// releasing anything not externally referenced, and closes the journal (if
// any). After Close, the collector should not be used.
func (c *Collector[T]) Close() error {
	c.mu.Lock()
	for cb, h := range c.registry {
		delete(c.registry, cb)
		h.Drop()
	}
	c.allocatedMemory = 0
	j := c.journal
	c.journal = nil
	c.mu.Unlock()

	if j != nil {
		return j.Close()
	}
	return nil
}

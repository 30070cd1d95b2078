// config.go: configuration for a Collector.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

// Config holds the tunables for a Collector.
type Config struct {
	// PercentageThreshold triggers a collection once attach_counter*100 >=
	// object_count*PercentageThreshold, evaluated after every Attach.
	// nil disables the percentage trigger. Default when omitted via New:
	// DefaultPercentageThreshold (20).
	PercentageThreshold *int

	// MemoryThreshold triggers a collection once AllocatedMemory() reaches
	// this many bytes. nil disables the memory trigger. Absent by default.
	MemoryThreshold *int64

	// Logger receives lifecycle events (attach, detach, collection start
	// and summary). If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider supplies the clock used to time collection passes for
	// Stats() and the Journal. If nil, a go-timecache-backed provider is
	// used. Never consulted by the trigger heuristic itself.
	TimeProvider TimeProvider

	// MetricsCollector receives per-pass counters and latencies. If nil,
	// NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector

	// JournalPath, if set, opens a SQLite-backed Journal at this path and
	// records every collection pass to it. Absent by default.
	JournalPath string
}

// Validate normalizes the configuration in place, filling in defaults for
// missing ambient dependencies. The only thing it rejects is a negative
// percentage or memory threshold: then it returns a structured
// configuration error and leaves Config unmodified.
func (c *Config) Validate() error {
	if c.PercentageThreshold != nil && *c.PercentageThreshold < 0 {
		return NewErrInvalidThreshold("percentage_threshold", *c.PercentageThreshold)
	}
	if c.MemoryThreshold != nil && *c.MemoryThreshold < 0 {
		return NewErrInvalidThreshold("memory_threshold", *c.MemoryThreshold)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.TimeProvider == nil {
		c.TimeProvider = &timecacheProvider{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
	return nil
}

// DefaultConfig returns a Config with the default percentage threshold (20)
// and no-op ambient dependencies, equivalent to what New applies internally.
func DefaultConfig() Config {
	p := DefaultPercentageThreshold
	return Config{
		PercentageThreshold: &p,
		Logger:              NoOpLogger{},
		TimeProvider:        &timecacheProvider{},
		MetricsCollector:    NoOpMetricsCollector{},
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

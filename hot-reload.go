// hot-reload.go: dynamic threshold configuration with Argus integration.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// ThresholdSetter is the subset of Collector[T] that HotThresholds needs;
// every *Collector[T] satisfies it regardless of payload type, since the
// setters are not generic over T.
type ThresholdSetter interface {
	SetPercentageThreshold(*int)
	SetMemoryThreshold(*int64)
}

// HotThresholds watches a configuration file and live-updates a running
// Collector's PercentageThreshold/MemoryThreshold without reconstructing
// it.
type HotThresholds struct {
	target  ThresholdSetter
	watcher *argus.Watcher
	mu      sync.RWMutex
	current ThresholdSnapshot

	// OnReload is called after the thresholds are successfully reloaded.
	// Must be fast and non-blocking.
	OnReload func(old, new ThresholdSnapshot)
}

// ThresholdSnapshot is the pair of threshold values HotThresholds tracks.
type ThresholdSnapshot struct {
	Percentage *int
	Memory     *int64
}

// HotThresholdsOptions configures hot reload behavior.
type HotThresholdsOptions struct {
	// ConfigPath is the file to watch. Supports JSON, YAML, TOML, HCL,
	// INI, Properties formats (anything argus.UniversalConfigWatcher
	// supports).
	ConfigPath string

	// PollInterval is how often to check for changes. Default 1s, minimum
	// 100ms.
	PollInterval time.Duration

	OnReload func(old, new ThresholdSnapshot)
}

// NewHotThresholds starts watching ConfigPath immediately and applies
// changes to target as they're observed.
//
// Expected keys (optionally nested under a "collector" section):
//   - collector.percentage_threshold (int)
//   - collector.memory_threshold (int, bytes)
func NewHotThresholds(target ThresholdSetter, opts HotThresholdsOptions) (*HotThresholds, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	ht := &HotThresholds{target: target, OnReload: opts.OnReload}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, ht.handleConfigChange, argusConfig)
	if err != nil {
		return nil, NewErrWatchFailed(opts.ConfigPath, err)
	}
	ht.watcher = watcher
	return ht, nil
}

// Start begins watching, if not already running.
func (ht *HotThresholds) Start() error {
	if ht.watcher.IsRunning() {
		return nil
	}
	return ht.watcher.Start()
}

// Stop stops watching the configuration file.
func (ht *HotThresholds) Stop() error {
	return ht.watcher.Stop()
}

// Current returns the last-applied threshold snapshot.
func (ht *HotThresholds) Current() ThresholdSnapshot {
	ht.mu.RLock()
	defer ht.mu.RUnlock()
	return ht.current
}

func (ht *HotThresholds) handleConfigChange(data map[string]interface{}) {
	section, ok := data["collector"].(map[string]interface{})
	if !ok {
		_, hasPercentage := data["percentage_threshold"]
		_, hasMemory := data["memory_threshold"]
		if hasPercentage || hasMemory {
			section = data
		} else {
			return
		}
	}

	next := ThresholdSnapshot{}
	if p, ok := parsePositiveInt(section["percentage_threshold"]); ok {
		next.Percentage = &p
	}
	if m, ok := parsePositiveInt(section["memory_threshold"]); ok {
		m64 := int64(m)
		next.Memory = &m64
	}

	ht.mu.Lock()
	old := ht.current
	ht.current = next
	ht.mu.Unlock()

	ht.target.SetPercentageThreshold(next.Percentage)
	ht.target.SetMemoryThreshold(next.Memory)

	if ht.OnReload != nil {
		ht.OnReload(old, next)
	}
}

// parsePositiveInt extracts a positive integer from interface{}, tolerating
// both int and float64 (YAML/JSON decode differently).
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

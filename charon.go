// charon.go: package-level constants for the charon collector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

const (
	// Version of the charon collector library.
	Version = "v0.1.0-dev"

	// DefaultPercentageThreshold is the default attach_counter-vs-registry-size
	// percentage that triggers a collection pass when no explicit threshold
	// is configured.
	DefaultPercentageThreshold = 20
)

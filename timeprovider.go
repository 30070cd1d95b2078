// timeprovider.go: default TimeProvider backed by go-timecache.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package charon

import "github.com/agilira/go-timecache"

// timecacheProvider is the default TimeProvider. It uses go-timecache's
// cached clock, which is substantially cheaper than time.Now() for the
// high-frequency timestamping a collection pass needs for Stats() and the
// Journal.
type timecacheProvider struct{}

func (timecacheProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

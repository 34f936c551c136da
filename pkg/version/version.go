//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package version provides build and version information for pgedge-agrigen.
package version

import (
	"fmt"
	"runtime"
)

// Build information set at compile time via ldflags.
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ProjectionYear is the crop year every generated dataset describes.
const ProjectionYear = 2025

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf(
		"pgedge-agrigen %s (commit: %s, built: %s, go: %s, projection: %d)",
		Version, Commit, BuildDate, runtime.Version(), ProjectionYear,
	)
}

// Short returns just the version string.
func Short() string {
	return Version
}

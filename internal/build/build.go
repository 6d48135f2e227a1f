// Package build holds build-time information.
package build

// These are set by linker flags; they default to placeholders in development builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

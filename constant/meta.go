// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Playpen is the canonical application identifier used for filesystem paths and CLI branding.
	Playpen = "playpen"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

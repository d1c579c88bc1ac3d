// Package version exposes build version information.
package version

const current = "1.0.0"

// Current returns the module version.
func Current() string { return current }

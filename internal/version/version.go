// ============================================================================
// langext - Language Extensions
// ============================================================================
//
// Package:     version
// Description: Central version management for langext and its modules
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

// Version constants for langext and its registry modules
const (
	// Release version of the langext binary
	Langext = "0.1.0"

	// Module versions
	Arrays    = "0.1.0"
	Strings   = "0.1.0"
	Numbers   = "0.1.0"
	Parsers   = "0.2.0"
	StepTimer = "0.1.0"
)

// ModuleVersion returns the version for a given module name
func ModuleVersion(name string) string {
	switch name {
	case "arrays":
		return Arrays
	case "strings":
		return Strings
	case "numbers":
		return Numbers
	case "parsers":
		return Parsers
	case "stepTimer":
		return StepTimer
	default:
		return Langext
	}
}

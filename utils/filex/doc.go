// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides path helpers for configuration files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial documentation

// Package filex provides small file system helpers.
//
// The configuration layer uses ExpandHome for paths such as
// "~/.config/langext/langext.toml" and FirstFile to pick the first existing
// candidate during discovery.
package filex

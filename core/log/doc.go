// Package log provides structured, leveled logging for langext.
//
// Package: log
// Title: langext Structured Logging
// Description: A small structured logger with persistent context fields and
//              JSON, text, console and logfmt output. Structured errors from
//              core/error are logged at a level derived from their severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "parsex",
//	})
//	logger.Debug("date resolved", log.Fields{"tokens": 3})
package log

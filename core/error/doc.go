// Package error provides the structured error type used across langext.
//
// Package: error
// Title: langext Error Handling
// Description: Errors carry a Code for classification, a Severity the logger
//              maps to a level, the failing operation and key/value details.
//              The package is conventionally imported as mdwerror to avoid
//              shadowing the builtin error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Usage:
//
//	import mdwerror "github.com/msto63/langext/core/error"
//
//	err := mdwerror.New("month out of range").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithOperation("parsex.Date").
//		WithDetail("field", "month")
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// reject input
//	}
package error

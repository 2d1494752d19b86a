// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides small generic map helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial documentation

// Package mapx provides small generic helpers for Go maps.
//
// SortedKeys gives a deterministic iteration order, which the logger uses for
// field output, the error type for its detail listing and the registry for
// Names. Merge layers maps where later values win, as per-call log fields do
// over a logger's context fields.
//
//	keys := mapx.SortedKeys(map[string]int{"b": 2, "a": 1}) // [a b]
//	fields := mapx.Merge(contextFields, callFields)
package mapx

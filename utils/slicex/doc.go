// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides generic, non-mutating slice helpers
//              in the style of LINQ: filtering, ordering, distinct sets,
//              pairing and aggregation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial documentation

// Package slicex provides generic slice helpers.
//
// Typed helpers (Distinct, Union, Min, Max, Sum, Average) work on ordered or
// numeric element types. SortByType and DistinctAny handle mixed []any
// slices by grouping values by kind first:
//
//	slicex.SortByType([]any{"b", 2, true, nil}, false, false)
//	// [true 2 b <nil>]
//
// Lookups that may come up empty return a (value, ok) pair instead of a
// sentinel:
//
//	v, ok := slicex.FirstOrDefault(items, func(x int) bool { return x > 3 })
package slicex

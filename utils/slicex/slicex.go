// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements generic slice helpers for transformation, search
//              and construction. None of the functions mutate their input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package slicex

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element using the mapper function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// TakeWhile returns the leading elements for which fn(item, index) holds.
// A nil fn yields nil.
func TakeWhile[T any](slice []T, fn func(T, int) bool) []T {
	if fn == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for i, item := range slice {
		if !fn(item, i) {
			break
		}
		result = append(result, item)
	}
	return result
}

// ===============================
// Search Functions
// ===============================

// Contains checks if the slice contains the element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// FirstOrDefault returns the first element matching the optional predicate.
// The boolean is false (and the zero value returned) when nothing matches.
func FirstOrDefault[T any](slice []T, predicate ...func(T) bool) (T, bool) {
	for _, item := range slice {
		if matches(item, predicate) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// LastOrDefault returns the last element matching the optional predicate
func LastOrDefault[T any](slice []T, predicate ...func(T) bool) (T, bool) {
	for i := len(slice) - 1; i >= 0; i-- {
		if matches(slice[i], predicate) {
			return slice[i], true
		}
	}
	var zero T
	return zero, false
}

func matches[T any](item T, predicates []func(T) bool) bool {
	for _, p := range predicates {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// ===============================
// Construction Functions
// ===============================

// Repeat creates a slice with the element repeated n times
func Repeat[T any](element T, n int) []T {
	if n <= 0 {
		return []T{}
	}

	result := make([]T, n)
	for i := range result {
		result[i] = element
	}
	return result
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Equal checks if two slices are equal element by element
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := range slice1 {
		if slice1[i] != slice2[i] {
			return false
		}
	}
	return true
}

// ===============================
// Pairing Functions
// ===============================

// Pair represents a pair of values with type safety
type Pair[T, U any] struct {
	First  T
	Second U
}

// ZipWith combines two slices element-wise with fn. The result has the
// length of the shorter slice; a nil fn yields nil.
func ZipWith[T, U, R any](slice1 []T, slice2 []U, fn func(T, U) R) []R {
	if fn == nil {
		return nil
	}

	n := min(len(slice1), len(slice2))
	result := make([]R, n)
	for i := 0; i < n; i++ {
		result[i] = fn(slice1[i], slice2[i])
	}
	return result
}

// Zip combines two slices into a slice of type-safe pairs
func Zip[T, U any](slice1 []T, slice2 []U) []Pair[T, U] {
	return ZipWith(slice1, slice2, func(a T, b U) Pair[T, U] {
		return Pair[T, U]{First: a, Second: b}
	})
}

// ToDictionary builds a map from keyFn and valFn. Elements for which keyFn
// reports false are skipped; a repeated key keeps the last value.
func ToDictionary[T any, K comparable, V any](slice []T, keyFn func(T) (K, bool), valFn func(T) V) map[K]V {
	if keyFn == nil || valFn == nil {
		return nil
	}

	result := make(map[K]V, len(slice))
	for _, item := range slice {
		if key, ok := keyFn(item); ok {
			result[key] = valFn(item)
		}
	}
	return result
}

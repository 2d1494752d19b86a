// File: aggregate.go
// Title: Ordering and Aggregation
// Description: Implements min/max, sorted distinct, union and numeric
//              aggregation over typed slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package slicex

import (
	"cmp"
	"slices"
	"strings"
)

// Number is the set of numeric types supported by Sum and Average
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min returns the minimum element (requires ordered type)
func Min[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}
	return slices.Min(slice), true
}

// Max returns the maximum element (requires ordered type)
func Max[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}
	return slices.Max(slice), true
}

// MinWhere returns the minimum of the elements accepted by filter
func MinWhere[T cmp.Ordered](slice []T, filter func(T) bool) (T, bool) {
	if filter == nil {
		return Min(slice)
	}
	return Min(Filter(slice, filter))
}

// MaxWhere returns the maximum of the elements accepted by filter
func MaxWhere[T cmp.Ordered](slice []T, filter func(T) bool) (T, bool) {
	if filter == nil {
		return Max(slice)
	}
	return Max(Filter(slice, filter))
}

// Distinct returns the sorted unique elements of slice
func Distinct[T cmp.Ordered](slice []T) []T {
	result := Clone(slice)
	if result == nil {
		return []T{}
	}
	slices.Sort(result)
	return slices.Compact(result)
}

// DistinctFold returns the unique strings ignoring case, sorted
// case-insensitively. Of each group of equal strings the first one in
// input order is kept.
func DistinctFold(slice []string) []string {
	sorted := make([]string, len(slice))
	copy(sorted, slice)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return slices.CompactFunc(sorted, strings.EqualFold)
}

// Union returns the sorted distinct elements of both slices
func Union[T cmp.Ordered](slice1, slice2 []T) []T {
	combined := make([]T, 0, len(slice1)+len(slice2))
	combined = append(combined, slice1...)
	combined = append(combined, slice2...)
	return Distinct(combined)
}

// Sum adds the elements accepted by every filter
func Sum[T Number](slice []T, filter ...func(T) bool) T {
	var sum T
	for _, item := range slice {
		if matches(item, filter) {
			sum += item
		}
	}
	return sum
}

// Average returns the mean of the elements accepted by every filter. The
// boolean is false when no element was accepted.
func Average[T Number](slice []T, filter ...func(T) bool) (float64, bool) {
	var sum float64
	count := 0
	for _, item := range slice {
		if matches(item, filter) {
			sum += float64(item)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

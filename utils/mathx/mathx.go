// File: mathx.go
// Title: Numeric Helpers
// Description: Implements numeric membership and the integer helpers used by
//              the lenient parsers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package mathx

import "math"

// Integer is the set of signed integer types
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// In reports whether v equals any of vals (type and value). No values yields
// false.
func In[T comparable](v T, vals ...T) bool {
	for _, e := range vals {
		if e == v {
			return true
		}
	}
	return false
}

// Abs returns the absolute value of n. The minimum value of T has no positive
// counterpart and is returned as the maximum value instead.
func Abs[T Integer](n T) T {
	if n >= 0 {
		return n
	}
	if -n < 0 {
		return -(n + 1)
	}
	return -n
}

// Pow10 returns 10^n for 0 <= n <= 18 and saturates at math.MaxInt64 above.
// Negative exponents yield 1.
func Pow10(n int) int64 {
	if n <= 0 {
		return 1
	}
	if n > 18 {
		return math.MaxInt64
	}
	result := int64(1)
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}

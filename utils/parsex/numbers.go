// File: numbers.go
// Title: Numeric Token Extraction
// Description: Extracts the ordered sequence of decimal digit runs from free
//              text and counts the digits of an integer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package parsex

import (
	"math"

	"github.com/msto63/langext/utils/mathx"
)

// ExtractNumbers returns every maximal run of ASCII digits in text as a
// non-negative integer, in order of appearance. Signs and decimal points are
// delimiters like any other non-digit ("3.14" yields [3 14]). Runs too large
// for int64 saturate at math.MaxInt64. The result is never nil.
func ExtractNumbers(text string) []int64 {
	tokens := make([]int64, 0, 4)

	inRun := false
	var current int64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			if inRun {
				tokens = append(tokens, current)
				inRun = false
			}
			continue
		}

		digit := int64(c - '0')
		if !inRun {
			inRun = true
			current = 0
		}
		if current > (math.MaxInt64-digit)/10 {
			current = math.MaxInt64
		} else {
			current = current*10 + digit
		}
	}
	if inRun {
		tokens = append(tokens, current)
	}
	return tokens
}

// NumDigits returns the number of base-10 digits of |n|. Zero has one digit.
func NumDigits(n int64) int {
	n = mathx.Abs(n)
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}

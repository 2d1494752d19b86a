// File: sortbytype.go
// Title: Heterogeneous Sorting
// Description: Sorts and deduplicates mixed-type slices, grouping values by
//              kind (bool, date, number, string) before comparing them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package slicex

import (
	"reflect"
	"slices"
	"strings"
	"time"
)

// kind ranks mixed values; the order mirrors the alphabetical order of the
// kind names. Nil values are not ranked and always sort last.
type kind int

const (
	kindBool kind = iota
	kindDate
	kindNumber
	kindObject
	kindString
)

func kindOf(v any) kind {
	switch v.(type) {
	case bool:
		return kindBool
	case time.Time:
		return kindDate
	case string:
		return kindString
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber
	default:
		return kindObject
	}
}

func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	}
	return 0
}

func compareValues(a, b any, k kind, ignoreCase bool) int {
	switch k {
	case kindBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case kindDate:
		return a.(time.Time).Compare(b.(time.Time))
	case kindNumber:
		x, y := toFloat(a), toFloat(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case kindString:
		x, y := a.(string), b.(string)
		if ignoreCase {
			x, y = strings.ToLower(x), strings.ToLower(y)
		}
		return strings.Compare(x, y)
	}
	// Objects have no natural order and keep their relative position.
	return 0
}

// SortByType returns a sorted copy of items. Values are grouped by kind
// (bool < date < number < string, other values between number and string)
// and then ordered by value. Strings compare case-insensitively when
// ignoreCase is set. desc reverses both orders; nil values stay last.
func SortByType(items []any, ignoreCase, desc bool) []any {
	result := make([]any, len(items))
	copy(result, items)

	mult := 1
	if desc {
		mult = -1
	}

	slices.SortStableFunc(result, func(a, b any) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}

		ka, kb := kindOf(a), kindOf(b)
		if ka != kb {
			if ka < kb {
				return -mult
			}
			return mult
		}
		return compareValues(a, b, ka, ignoreCase) * mult
	})
	return result
}

// DistinctAny returns the unique values of items in SortByType order. Dates
// are equal when they denote the same instant, numbers when their float64
// values match, strings optionally ignoring case.
func DistinctAny(items []any, ignoreCase bool) []any {
	sorted := SortByType(items, ignoreCase, false)
	return slices.CompactFunc(sorted, func(a, b any) bool {
		switch {
		case a == nil || b == nil:
			return a == nil && b == nil
		case kindOf(a) != kindOf(b):
			return false
		}

		k := kindOf(a)
		if k != kindObject {
			return compareValues(a, b, k, ignoreCase) == 0
		}
		if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
			return false
		}
		return a == b
	})
}

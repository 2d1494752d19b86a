// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Tests for transformation, search, construction and pairing
//              helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package slicex

import (
	"strings"
	"testing"
)

// ===============================
// Core Transformation Tests
// ===============================

func TestFilter(t *testing.T) {
	t.Run("filter even numbers", func(t *testing.T) {
		result := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
		expected := []int{2, 4, 6}

		if !Equal(result, expected) {
			t.Errorf("Filter() = %v, want %v", result, expected)
		}
	})

	t.Run("filter nil slice", func(t *testing.T) {
		if result := Filter(nil, func(x int) bool { return x > 0 }); result != nil {
			t.Errorf("Filter() = %v, want nil", result)
		}
	})
}

func TestMap(t *testing.T) {
	result := Map([]string{"a", "bb"}, func(s string) int { return len(s) })
	if !Equal(result, []int{1, 2}) {
		t.Errorf("Map() = %v, want [1 2]", result)
	}
}

func TestTakeWhile(t *testing.T) {
	t.Run("stops at first failure", func(t *testing.T) {
		result := TakeWhile([]int{1, 2, 5, 1}, func(x, _ int) bool { return x < 3 })
		if !Equal(result, []int{1, 2}) {
			t.Errorf("TakeWhile() = %v, want [1 2]", result)
		}
	})

	t.Run("index is passed", func(t *testing.T) {
		result := TakeWhile([]string{"a", "b", "c"}, func(_ string, i int) bool { return i < 2 })
		if !Equal(result, []string{"a", "b"}) {
			t.Errorf("TakeWhile() = %v, want [a b]", result)
		}
	})

	t.Run("nil function", func(t *testing.T) {
		if result := TakeWhile([]int{1}, nil); result != nil {
			t.Errorf("TakeWhile() = %v, want nil", result)
		}
	})

	t.Run("first element fails", func(t *testing.T) {
		result := TakeWhile([]int{9, 1}, func(x, _ int) bool { return x < 3 })
		if result == nil || len(result) != 0 {
			t.Errorf("TakeWhile() = %v, want empty", result)
		}
	})
}

// ===============================
// Search Tests
// ===============================

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains() should find b")
	}
	if Contains([]string{"a", "b"}, "B") {
		t.Error("Contains() should be case sensitive")
	}
	if Contains(nil, 1) {
		t.Error("Contains() on nil should be false")
	}
}

func TestFirstAndLastOrDefault(t *testing.T) {
	items := []int{3, 8, 5, 10, 1}
	even := func(x int) bool { return x%2 == 0 }

	if v, ok := FirstOrDefault(items); !ok || v != 3 {
		t.Errorf("FirstOrDefault() = %v, %v, want 3, true", v, ok)
	}
	if v, ok := FirstOrDefault(items, even); !ok || v != 8 {
		t.Errorf("FirstOrDefault(even) = %v, %v, want 8, true", v, ok)
	}
	if v, ok := LastOrDefault(items); !ok || v != 1 {
		t.Errorf("LastOrDefault() = %v, %v, want 1, true", v, ok)
	}
	if v, ok := LastOrDefault(items, even); !ok || v != 10 {
		t.Errorf("LastOrDefault(even) = %v, %v, want 10, true", v, ok)
	}
	if v, ok := FirstOrDefault(items, func(x int) bool { return x > 100 }); ok || v != 0 {
		t.Errorf("FirstOrDefault(none) = %v, %v, want 0, false", v, ok)
	}
	if _, ok := LastOrDefault([]string{}); ok {
		t.Error("LastOrDefault() on empty slice should report false")
	}
}

// ===============================
// Construction Tests
// ===============================

func TestRepeat(t *testing.T) {
	if result := Repeat(int64(0), 3); !Equal(result, []int64{0, 0, 0}) {
		t.Errorf("Repeat() = %v, want [0 0 0]", result)
	}
	if result := Repeat("x", -1); result == nil || len(result) != 0 {
		t.Errorf("Repeat(-1) = %v, want empty", result)
	}
}

func TestClone(t *testing.T) {
	original := []int{1, 2}
	cloned := Clone(original)
	cloned[0] = 9
	if original[0] != 1 {
		t.Error("Clone() must not share the backing array")
	}
	if Clone[int](nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

// ===============================
// Pairing Tests
// ===============================

func TestZip(t *testing.T) {
	t.Run("zip with function", func(t *testing.T) {
		result := ZipWith([]string{"a", "b", "c"}, []int{1, 2}, func(s string, n int) string {
			return strings.Repeat(s, n)
		})
		if !Equal(result, []string{"a", "bb"}) {
			t.Errorf("ZipWith() = %v, want [a bb]", result)
		}
	})

	t.Run("nil function", func(t *testing.T) {
		if result := ZipWith[int, int, int]([]int{1}, []int{1}, nil); result != nil {
			t.Errorf("ZipWith(nil) = %v, want nil", result)
		}
	})

	t.Run("pairs", func(t *testing.T) {
		result := Zip([]int{1, 2}, []string{"x", "y", "z"})
		if len(result) != 2 || result[1].First != 2 || result[1].Second != "y" {
			t.Errorf("Zip() = %v", result)
		}
	})
}

func TestToDictionary(t *testing.T) {
	type person struct {
		id   int
		name string
	}
	people := []person{{1, "ann"}, {2, "bob"}, {0, "ghost"}, {1, "anna"}}

	dict := ToDictionary(people,
		func(p person) (int, bool) { return p.id, p.id != 0 },
		func(p person) string { return p.name })

	if len(dict) != 2 {
		t.Fatalf("ToDictionary() len = %d, want 2", len(dict))
	}
	if dict[1] != "anna" {
		t.Errorf("duplicate key should keep last value, got %q", dict[1])
	}
	if _, ok := dict[0]; ok {
		t.Error("skipped key must not be present")
	}
	if ToDictionary[int, int, int]([]int{1}, nil, nil) != nil {
		t.Error("ToDictionary() without selectors should be nil")
	}
}

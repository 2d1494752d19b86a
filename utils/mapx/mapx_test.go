// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for key listing, cloning, merging and picking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package mapx

import (
	"testing"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]int
		expected int
	}{
		{"nil map", nil, 0},
		{"empty map", map[string]int{}, 0},
		{"single key", map[string]int{"a": 1}, 1},
		{"multiple keys", map[string]int{"a": 1, "b": 2, "c": 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Keys(tt.input); len(got) != tt.expected {
				t.Errorf("Keys() returned %d keys, expected %d", len(got), tt.expected)
			}
		})
	}

	if Keys[string, int](nil) != nil {
		t.Error("Keys(nil) should return nil")
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]bool{"parsers": true, "arrays": true, "strings": true})
	expected := []string{"arrays", "parsers", "strings"}

	if len(got) != len(expected) {
		t.Fatalf("SortedKeys() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("SortedKeys()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}

	ints := SortedKeys(map[int]string{3: "c", 1: "a", 2: "b"})
	for i, k := range ints {
		if k != i+1 {
			t.Errorf("SortedKeys(ints)[%d] = %d, expected %d", i, k, i+1)
		}
	}
}

func TestClone(t *testing.T) {
	original := map[string]int{"a": 1, "b": 2}
	clone := Clone(original)

	clone["a"] = 100
	if original["a"] != 1 {
		t.Error("modifying the clone changed the original")
	}
	if len(clone) != 2 {
		t.Errorf("Clone() has %d entries, expected 2", len(clone))
	}
	if Clone[string, int](nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

func TestMerge(t *testing.T) {
	defaults := map[string]any{"level": "info", "format": "text"}
	file := map[string]any{"level": "debug"}

	got := Merge(defaults, file)
	if got["level"] != "debug" {
		t.Errorf("Merge() level = %v, expected debug", got["level"])
	}
	if got["format"] != "text" {
		t.Errorf("Merge() format = %v, expected text", got["format"])
	}

	if empty := Merge[string, int](); empty == nil || len(empty) != 0 {
		t.Errorf("Merge() without maps = %v, expected empty non-nil map", empty)
	}
	if got := Merge(nil, map[string]int{"a": 1}); got["a"] != 1 {
		t.Errorf("Merge(nil, m) = %v", got)
	}
}

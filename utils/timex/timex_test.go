// File: timex_test.go
// Title: Time Utilities Tests
// Description: Tests for clocks, elapsed-time formatting and the step timer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation
// - 2026-10-14 v0.1.0: Step timer tests

package timex

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/langext/core/log"
)

var base = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

// ===============================
// Clock Tests
// ===============================

func TestClocks(t *testing.T) {
	assert.Equal(t, base, FixedClock{T: base}.Now())

	c := NewManualClock(base)
	c.Advance(90 * time.Second)
	assert.Equal(t, base.Add(90*time.Second), c.Now())

	c.Set(base)
	assert.Equal(t, base, c.Now())

	before := time.Now()
	assert.False(t, SystemClock{}.Now().Before(before))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2024, time.March, 3, 23, 59, 1, 5, loc)
	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, loc), StartOfDay(in))
}

// ===============================
// Elapsed Formatting Tests
// ===============================

func TestFormatElapsed(t *testing.T) {
	d := 1*time.Minute + 23*time.Second + 456*time.Millisecond

	tests := []struct {
		name   string
		d      time.Duration
		layout string
		want   string
	}{
		{"default layout", d, DefaultElapsedLayout, "01:23.456"},
		{"single f", d, "s.f", "23.4"},
		{"two f", d, "ss.ff", "23.45"},
		{"long fraction collapses", d, "ss.ffffff", "23.456"},
		{"small ms padded", 7 * time.Millisecond, "ss.fff", "00.007"},
		{"wide minute run", d, "mmm", "001"},
		{"no truncation", 45 * time.Minute, "m", "45"},
		{"minutes wrap at hour", 75 * time.Minute, "mm:ss", "15:00"},
		{"literal text", 2 * time.Second, "took s sec", "took 2 2ec"},
		{"negative", -time.Second, "mm:ss.fff", "00:00.000"},
		{"zero", 0, "mm:ss.fff", "00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.d, tt.layout))
		})
	}
}

// ===============================
// Step Timer Tests
// ===============================

func TestStepTimer(t *testing.T) {
	clock := NewManualClock(base)
	timer := NewStepTimer(clock)
	assert.Equal(t, DefaultElapsedLayout, timer.Format())

	clock.Advance(1500 * time.Millisecond)
	first := timer.AddStep("load")
	clock.Advance(250 * time.Millisecond)
	second := timer.AddStep("parse")
	clock.Advance(time.Second)

	assert.Equal(t, 1500*time.Millisecond, first.Elapsed)
	assert.Equal(t, base, first.Start)
	assert.Equal(t, base.Add(1500*time.Millisecond), second.Start)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	t.Run("totals", func(t *testing.T) {
		assert.Equal(t, 1750*time.Millisecond, timer.TotalTime(true))
		assert.Equal(t, 2750*time.Millisecond, timer.TotalTime(false))
	})

	t.Run("report", func(t *testing.T) {
		want := "load:\t00:01.500\r\nparse:\t00:00.250\r\nTotal time:\t00:01.750"
		assert.Equal(t, want, timer.String(true))
		assert.True(t, strings.HasSuffix(timer.String(false), "Total time:\t00:02.750"))
	})

	t.Run("custom format", func(t *testing.T) {
		timer.SetFormat("s.ff")
		assert.Equal(t, "1.50", timer.FormatTime(first.Elapsed))
		timer.SetFormat(DefaultElapsedLayout)
	})

	t.Run("steps are copies", func(t *testing.T) {
		steps := timer.Steps()
		require.Len(t, steps, 2)
		steps[0].Message = "changed"
		assert.Equal(t, "load", timer.Steps()[0].Message)
	})

	t.Run("log steps", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatLogfmt, Output: &buf})
		timer.LogSteps(logger)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `message="load"`)
		assert.Contains(t, lines[0], `elapsed="00:01.500"`)
		assert.Contains(t, lines[1], "step=2")
	})

	t.Run("reset", func(t *testing.T) {
		timer.Reset()
		assert.Empty(t, timer.Steps())
		assert.Equal(t, time.Duration(0), timer.TotalTime(false))
		assert.Equal(t, "Total time:\t00:00.000", timer.String(true))

		clock.Advance(time.Second)
		step := timer.AddStep("after reset")
		assert.Equal(t, time.Second, step.Elapsed)
	})
}

func TestStepTimerDefaultsToSystemClock(t *testing.T) {
	timer := NewStepTimer(nil)
	step := timer.AddStep("immediate")
	assert.GreaterOrEqual(t, step.Elapsed, time.Duration(0))
}

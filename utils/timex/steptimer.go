// File: steptimer.go
// Title: Step Timer
// Description: Records the duration of consecutive named steps and renders
//              a per-step report with a total line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/langext/core/log"
)

// Step is one recorded step
type Step struct {
	ID      uuid.UUID
	Message string
	Start   time.Time
	Elapsed time.Duration
}

// StepTimer measures consecutive steps. Each AddStep records the time since
// the previous step (or since construction/Reset). Safe for concurrent use.
type StepTimer struct {
	mu         sync.Mutex
	clock      Clock
	start      time.Time
	totalStart time.Time
	format     string
	steps      []Step
}

// NewStepTimer creates a timer that starts immediately. A nil clock uses the
// wall clock.
func NewStepTimer(clock Clock) *StepTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now()
	return &StepTimer{
		clock:      clock,
		start:      now,
		totalStart: now,
		format:     DefaultElapsedLayout,
	}
}

// AddStep closes the current step under message and starts the next one
func (t *StepTimer) AddStep(message string) Step {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	step := Step{
		ID:      uuid.New(),
		Message: message,
		Start:   t.start,
		Elapsed: now.Sub(t.start),
	}
	t.start = now
	t.steps = append(t.steps, step)
	return step
}

// Steps returns a copy of the recorded steps
func (t *StepTimer) Steps() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()

	steps := make([]Step, len(t.steps))
	copy(steps, t.steps)
	return steps
}

// TotalTime returns the sum of all step durations when useSum is set, and
// the time elapsed since construction or the last Reset otherwise.
func (t *StepTimer) TotalTime(useSum bool) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.totalLocked(useSum)
}

func (t *StepTimer) totalLocked(useSum bool) time.Duration {
	if !useSum {
		return t.clock.Now().Sub(t.totalStart)
	}
	var total time.Duration
	for _, s := range t.steps {
		total += s.Elapsed
	}
	return total
}

// Reset drops all steps and restarts both the step and the total clock
func (t *StepTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.steps = nil
	t.start = t.clock.Now()
	t.totalStart = t.start
}

// Format returns the elapsed-time layout
func (t *StepTimer) Format() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.format
}

// SetFormat changes the elapsed-time layout
func (t *StepTimer) SetFormat(layout string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.format = layout
}

// FormatTime renders d with the timer's layout
func (t *StepTimer) FormatTime(d time.Duration) string {
	return FormatElapsed(d, t.Format())
}

// String renders one "message:\t<elapsed>" line per step followed by
// "Total time:\t<total>", joined with CRLF.
func (t *StepTimer) String(useSum bool) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, len(t.steps)+1)
	for _, s := range t.steps {
		lines = append(lines, s.Message+":\t"+FormatElapsed(s.Elapsed, t.format))
	}
	lines = append(lines, "Total time:\t"+FormatElapsed(t.totalLocked(useSum), t.format))
	return strings.Join(lines, "\r\n")
}

// LogSteps writes one info entry per recorded step
func (t *StepTimer) LogSteps(logger *log.Logger) {
	if logger == nil {
		logger = log.GetDefault()
	}
	for i, s := range t.Steps() {
		logger.Info(s.Message, log.Fields{
			"step":    i + 1,
			"step_id": s.ID.String(),
			"elapsed": t.FormatTime(s.Elapsed),
		})
	}
}

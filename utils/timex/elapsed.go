// File: elapsed.go
// Title: Elapsed Time Formatting
// Description: Renders durations with minute/second/fraction layouts such as
//              "mm:ss.fff".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultElapsedLayout is the layout used when none is configured
const DefaultElapsedLayout = "mm:ss.fff"

var (
	longFractionRun = regexp.MustCompile(`f{4,}`)
	fractionRun     = regexp.MustCompile(`f+`)
	minuteRun       = regexp.MustCompile(`m+`)
	secondRun       = regexp.MustCompile(`s+`)
)

// FormatElapsed renders d with layout. Runs of "m" become minutes (mod 60),
// runs of "s" seconds (mod 60), both zero-padded to the run width and never
// truncated. Runs of "f" become the leading digits of the three-digit
// millisecond value; runs longer than three are treated as three. All other
// characters are copied. Negative durations render as zero.
//
//	FormatElapsed(83456*time.Millisecond, "mm:ss.fff") // "01:23.456"
//	FormatElapsed(83456*time.Millisecond, "s.f")       // "23.4"
func FormatElapsed(d time.Duration, layout string) string {
	if d < 0 {
		d = 0
	}

	out := layout
	ms := fmt.Sprintf("%03d", d.Milliseconds()%1000)
	out = longFractionRun.ReplaceAllString(out, "fff")
	out = fractionRun.ReplaceAllStringFunc(out, func(run string) string {
		return ms[:len(run)]
	})

	out = padRuns(out, minuteRun, int64(d/time.Minute)%60)
	out = padRuns(out, secondRun, int64(d/time.Second)%60)
	return out
}

func padRuns(layout string, run *regexp.Regexp, value int64) string {
	digits := strconv.FormatInt(value, 10)
	return run.ReplaceAllStringFunc(layout, func(match string) string {
		if pad := len(match) - len(digits); pad > 0 {
			return fmt.Sprintf("%0*d", len(match), value)
		}
		return digits
	})
}

// File: time.go
// Title: Time-of-Day Resolver
// Description: Resolves free text such as "10:30", "1pm" or "14 32 14.587"
//              into a time of day with explicit UTC offset semantics.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.0: Offset is carried on the result instead of baked in
// - 2026-10-19 v0.1.1: Fractions above .999 are rejected, not truncated

package parsex

import (
	"math"
	"strings"
	"time"

	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/utils/mathx"
	"github.com/msto63/langext/utils/slicex"
	"github.com/msto63/langext/utils/stringx"
)

const (
	timeFields     = 4
	msDigits       = 3
	maxHour        = 23
	maxMinute      = 59
	maxSecond      = 59
	maxMillisecond = 999
)

// TimeOfDay is a wall-clock time together with the UTC offset it was
// parsed under.
type TimeOfDay struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int

	offset time.Duration
}

// Duration returns the time elapsed since midnight
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second +
		time.Duration(t.Millisecond)*time.Millisecond
}

// Offset returns the UTC offset the time was parsed under
func (t TimeOfDay) Offset() time.Duration {
	return t.offset
}

// Instant returns the absolute instant of the time on ReferenceEpoch's day,
// read as wall-clock time at Offset.
func (t TimeOfDay) Instant() time.Time {
	return ReferenceEpoch.Add(t.Duration() - t.offset)
}

// Local returns Instant in a fixed zone with Offset; its clock fields equal
// the parsed fields.
func (t TimeOfDay) Local() time.Time {
	return t.Instant().In(time.FixedZone("", int(t.offset/time.Second)))
}

// String renders the time as HH:MM:SS.mmm
func (t TimeOfDay) String() string {
	return FormatTime(t)
}

// Time resolves text into hour, minute, second and millisecond. Missing
// trailing fields are zero; "pm" anywhere adds twelve hours. Millisecond
// numbers longer than three digits keep their three leading digits; a
// fraction past .999 is out of range.
func (p *Parser) Time(text string) Result[TimeOfDay] {
	const op = "parsex.Time"

	if stringx.IsEmpty(text) {
		p.logger.Debug("time rejected", log.Field("reason", "empty"))
		return Fail[TimeOfDay](emptyInput(op))
	}

	tokens := ExtractNumbers(text)
	fields := make([]int64, 0, max(len(tokens), timeFields))
	fields = append(fields, tokens...)
	if len(fields) < timeFields {
		fields = append(fields, slicex.Repeat(int64(0), timeFields-len(fields))...)
	}
	h, m, s, ms := fields[0], fields[1], fields[2], fields[3]

	if strings.Contains(strings.ToLower(text), "pm") {
		h = saturatingAdd(h, 12)
	}

	if digits := NumDigits(ms); digits > msDigits {
		scale := mathx.Pow10(digits - msDigits)
		rest := ms % scale
		ms /= scale
		// 999.5 is past the last millisecond even though it truncates to 999
		if ms == maxMillisecond && rest != 0 {
			ms = maxMillisecond + 1
		}
	}

	for _, check := range []struct {
		field string
		value int64
		max   int64
	}{
		{"hour", h, maxHour},
		{"minute", m, maxMinute},
		{"second", s, maxSecond},
		{"millisecond", ms, maxMillisecond},
	} {
		if check.value > check.max {
			p.logger.Debug("time rejected", log.Fields{"tokens": len(tokens), "field": check.field})
			return Fail[TimeOfDay](outOfRange(op, check.field, check.value, check.max, text))
		}
	}

	tod := TimeOfDay{
		Hour:        int(h),
		Minute:      int(m),
		Second:      int(s),
		Millisecond: int(ms),
		offset:      p.offset,
	}

	p.logger.Debug("time resolved", log.Fields{"tokens": len(tokens), "time": tod.String()})
	return Ok(tod)
}

func saturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

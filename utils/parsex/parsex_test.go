// File: parsex_test.go
// Title: Lenient Parser Tests
// Description: Tests for token extraction, digit counting, the date and time
//              resolvers, rendering round trips and configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.0: Settings and logging tests

package parsex

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/langext/core/config"
	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/utils/timex"
)

var reference1985 = time.Date(1985, time.December, 3, 15, 4, 5, 0, time.UTC)

func newTestParser(opts ...Option) *Parser {
	base := []Option{
		WithReference(reference1985),
		WithLocation(time.UTC),
		WithLogger(log.Discard()),
	}
	return New(append(base, opts...)...)
}

// ===============================
// Token Extraction Tests
// ===============================

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{"mixed delimiters", "10-12,14 18", []int64{10, 12, 14, 18}},
		{"decimal point splits", "3.14", []int64{3, 14}},
		{"leading zeros", "007 and 0", []int64{7, 0}},
		{"sign ignored", "-42", []int64{42}},
		{"no digits", "no numbers here", []int64{}},
		{"empty", "", []int64{}},
		{"unicode digits are delimiters", "١٢3", []int64{3}},
		{"saturates", "99999999999999999999999 1", []int64{math.MaxInt64, 1}},
		{"max int64 fits", "9223372036854775807", []int64{math.MaxInt64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumbers(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumDigits(t *testing.T) {
	tests := map[int64]int{
		0:             1,
		7:             1,
		10:            2,
		587:           3,
		1000:          4,
		-12345:        5,
		math.MaxInt64: 19,
		math.MinInt64: 19,
	}
	for n, want := range tests {
		assert.Equal(t, want, NumDigits(n), "NumDigits(%d)", n)
	}
}

// ===============================
// Date Resolver Tests
// ===============================

func TestDate(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"12", 1985, time.December, 12},
		{"8.5", 1985, time.August, 5},
		{"6-15-84", 1984, time.June, 15},
		{"6-15-05", 1905, time.June, 15},
		{"6-15-06", 1906, time.June, 15},
		{"1/2/2024 extra 99", 2024, time.January, 2},
		{"no digits", 1985, time.December, 3},
		{"2/30/2023", 2023, time.March, 2},
		{"11/31/1999", 1999, time.December, 1},
		{"13/1/2020", 2021, time.January, 1},
		{"0/10/2020", 2019, time.December, 10},
		{"3/0/2020", 2020, time.February, 29},
		{"1/1/275760", 275760, time.January, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Date(tt.input)
			require.True(t, res.Valid(), "unexpected error: %v", res.Err())

			d := res.MustValue()
			assert.Equal(t, tt.year, d.Year)
			assert.Equal(t, tt.month, d.Month)
			assert.Equal(t, tt.day, d.Day)
			assert.NoError(t, res.Err())
		})
	}
}

func TestDateInvalid(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		code  mdwerror.Code
		field string
	}{
		{"", mdwerror.CodeInvalidInput, ""},
		{"14/1", mdwerror.CodeValueOutOfRange, "month"},
		{"32", mdwerror.CodeValueOutOfRange, "day"},
		{"1/32", mdwerror.CodeValueOutOfRange, "day"},
		{"99999999999999999999/1", mdwerror.CodeValueOutOfRange, "month"},
		{"1/1/9223372036854775807", mdwerror.CodeValueOutOfRange, "year"},
		{"1/1/275761", mdwerror.CodeValueOutOfRange, "year"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Date(tt.input)
			assert.False(t, res.Valid())

			value, ok := res.Value()
			assert.False(t, ok)
			assert.Equal(t, CalendarDate{}, value)

			err := res.Err()
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, tt.code))

			if tt.field != "" {
				var mdwErr *mdwerror.Error
				require.ErrorAs(t, err, &mdwErr)
				field, _ := mdwErr.Detail("field")
				assert.Equal(t, tt.field, field)
				input, _ := mdwErr.Detail("input")
				assert.Equal(t, tt.input, input)
			}
			assert.Panics(t, func() { res.MustValue() })
		})
	}
}

// The zero-based month check lets a month of 13 through; it rolls into
// January of the following year.
func TestDateMonthThirteenRollsOver(t *testing.T) {
	d := newTestParser().Date("13/1").MustValue()
	assert.Equal(t, 1986, d.Year)
	assert.Equal(t, time.January, d.Month)
}

func TestDatePivotWindow(t *testing.T) {
	ref := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2046, newTestParser(WithReference(ref)).Date("1/1/46").MustValue().Year)
	assert.Equal(t, 1947, newTestParser(WithReference(ref)).Date("1/1/47").MustValue().Year)
	assert.Equal(t, 1927, newTestParser(WithReference(ref), WithPivotWindow(0)).Date("1/1/27").MustValue().Year)
	assert.Equal(t, 2026, newTestParser(WithReference(ref), WithPivotWindow(0)).Date("1/1/26").MustValue().Year)
}

func TestDateAtAndLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	p := newTestParser(WithLocation(tokyo))

	// 1985-12-03 15:04 UTC is already December 4 in Tokyo.
	d := p.Date("no numbers").MustValue()
	assert.Equal(t, 4, d.Day)
	assert.Equal(t, time.Date(1985, time.December, 4, 0, 0, 0, 0, tokyo), d.Time())

	explicit := time.Date(2001, time.July, 9, 12, 0, 0, 0, tokyo)
	assert.Equal(t, "7/20/2001", p.DateAt("20", explicit).MustValue().String())
}

func TestDateFollowsClock(t *testing.T) {
	clock := timex.NewManualClock(reference1985)
	p := newTestParser(WithClock(clock))

	assert.Equal(t, time.December, p.Date("5").MustValue().Month)
	clock.Advance(31 * 24 * time.Hour)
	d := p.Date("5").MustValue()
	assert.Equal(t, 1986, d.Year)
	assert.Equal(t, time.January, d.Month)
}

// ===============================
// Time Resolver Tests
// ===============================

func TestTime(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"13", TimeOfDay{Hour: 13}},
		{"10:30", TimeOfDay{Hour: 10, Minute: 30}},
		{"1pm", TimeOfDay{Hour: 13}},
		{"1:15 PM", TimeOfDay{Hour: 13, Minute: 15}},
		{"9am", TimeOfDay{Hour: 9}},
		{"14 32 14.587", TimeOfDay{Hour: 14, Minute: 32, Second: 14, Millisecond: 587}},
		{"14:32:14.58765", TimeOfDay{Hour: 14, Minute: 32, Second: 14, Millisecond: 587}},
		{"0:0:0.12345", TimeOfDay{Millisecond: 123}},
		{"0:0:0.0999", TimeOfDay{Millisecond: 999}},
		{"0:0:0.99900", TimeOfDay{Millisecond: 999}},
		{"1:2:3.4", TimeOfDay{Hour: 1, Minute: 2, Second: 3, Millisecond: 4}},
		{"no digits", TimeOfDay{}},
		{"23:59:59.999 and 7", TimeOfDay{Hour: 23, Minute: 59, Second: 59, Millisecond: 999}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Time(tt.input)
			require.True(t, res.Valid(), "unexpected error: %v", res.Err())

			got := res.MustValue()
			assert.Equal(t, tt.want.Hour, got.Hour)
			assert.Equal(t, tt.want.Minute, got.Minute)
			assert.Equal(t, tt.want.Second, got.Second)
			assert.Equal(t, tt.want.Millisecond, got.Millisecond)
		})
	}
}

func TestTimeInvalid(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		code  mdwerror.Code
		field string
	}{
		{"", mdwerror.CodeInvalidInput, ""},
		{"25:00", mdwerror.CodeValueOutOfRange, "hour"},
		{"12pm", mdwerror.CodeValueOutOfRange, "hour"},
		{"10:60", mdwerror.CodeValueOutOfRange, "minute"},
		{"10:00:60", mdwerror.CodeValueOutOfRange, "second"},
		{"9223372036854775807pm", mdwerror.CodeValueOutOfRange, "hour"},
		{"0:0:0.9995", mdwerror.CodeValueOutOfRange, "millisecond"},
		{"0:0:0.99999", mdwerror.CodeValueOutOfRange, "millisecond"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Time(tt.input)
			assert.False(t, res.Valid())
			assert.True(t, mdwerror.HasCode(res.Err(), tt.code))

			if tt.field != "" {
				var mdwErr *mdwerror.Error
				require.ErrorAs(t, res.Err(), &mdwErr)
				field, _ := mdwErr.Detail("field")
				assert.Equal(t, tt.field, field)
			}
		})
	}
}

func TestTimeOffset(t *testing.T) {
	offset := -5 * time.Hour
	tod := newTestParser(WithUTCOffset(offset)).Time("10:30:15.250").MustValue()

	assert.Equal(t, offset, tod.Offset())
	assert.Equal(t, 10*time.Hour+30*time.Minute+15*time.Second+250*time.Millisecond, tod.Duration())
	assert.Equal(t, time.Date(1970, time.January, 1, 15, 30, 15, 250e6, time.UTC), tod.Instant())

	local := tod.Local()
	assert.Equal(t, 10, local.Hour())
	assert.Equal(t, 30, local.Minute())
	assert.Equal(t, 15, local.Second())
	assert.Equal(t, 250_000_000, local.Nanosecond())
	_, seconds := local.Zone()
	assert.Equal(t, int(offset.Seconds()), seconds)
}

func TestTimeDefaultOffsetFromLocation(t *testing.T) {
	zone := time.FixedZone("X", 3*3600+1800)
	p := newTestParser(WithLocation(zone))
	assert.Equal(t, 3*time.Hour+30*time.Minute, p.Offset())

	tod := p.Time("0:00").MustValue()
	assert.Equal(t, time.Date(1969, time.December, 31, 20, 30, 0, 0, time.UTC), tod.Instant())
	assert.Equal(t, 0, tod.Local().Hour())
}

// ===============================
// Rendering Tests
// ===============================

func TestFormatRoundTrip(t *testing.T) {
	p := newTestParser(WithUTCOffset(2 * time.Hour))

	for _, input := range []string{"6-15-84", "12", "2/30/2023", "1/1/150"} {
		first := p.Date(input).MustValue()
		again := p.Date(FormatDate(first)).MustValue()
		assert.Equal(t, first, again, "date %q rendered as %q", input, FormatDate(first))
	}

	for _, input := range []string{"1pm", "14 32 14.58765", "0", "23:59:59.999"} {
		first := p.Time(input).MustValue()
		again := p.Time(FormatTime(first)).MustValue()
		assert.Equal(t, first, again, "time %q rendered as %q", input, FormatTime(first))
	}

	assert.Equal(t, "6/15/1984", FormatDate(p.Date("6-15-84").MustValue()))
	assert.Equal(t, "13:00:00.000", p.Time("1pm").MustValue().String())
}

// ===============================
// Construction Tests
// ===============================

func TestNewFromSettings(t *testing.T) {
	t.Run("all settings", func(t *testing.T) {
		p, err := NewFromSettings(config.ParserSettings{
			PivotYears: 5,
			UTCOffset:  "+02:00",
			Reference:  "1985-12-03",
			Location:   "UTC",
		}, WithLogger(log.Discard()))
		require.NoError(t, err)

		assert.Equal(t, 5, p.PivotWindow())
		assert.Equal(t, 2*time.Hour, p.Offset())
		assert.Equal(t, time.UTC, p.Location())
		assert.Equal(t, reference1985.Truncate(24*time.Hour), p.Reference())
		assert.Equal(t, 1891, p.Date("1/1/91").MustValue().Year)
	})

	t.Run("options win", func(t *testing.T) {
		p, err := NewFromSettings(config.ParserSettings{PivotYears: 5, Location: "UTC"}, WithPivotWindow(30))
		require.NoError(t, err)
		assert.Equal(t, 30, p.PivotWindow())
	})

	t.Run("invalid location", func(t *testing.T) {
		_, err := NewFromSettings(config.ParserSettings{Location: "Nowhere/Land"})
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	})

	t.Run("invalid offset", func(t *testing.T) {
		_, err := NewFromSettings(config.ParserSettings{UTCOffset: "later"})
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
	})
}

func TestParserLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: &buf})
	p := newTestParser(WithLogger(logger))

	p.Date("8.5")
	p.Time("25")

	out := buf.String()
	assert.Contains(t, out, `message="date resolved"`)
	assert.Contains(t, out, `date="8/5/1985"`)
	assert.Contains(t, out, `message="time rejected"`)
	assert.Contains(t, out, `field="hour"`)
}

func TestPackageFunctions(t *testing.T) {
	assert.Equal(t, 12, ParseDate("12", WithReference(reference1985), WithLocation(time.UTC)).MustValue().Day)
	assert.False(t, ParseTime("").Valid())
	assert.False(t, Result[int]{}.Valid())
	assert.Error(t, Result[int]{}.Err())
}

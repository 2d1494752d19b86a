// File: date.go
// Title: Date Resolver
// Description: Resolves free text such as "6-15-84", "8.5" or "12" into a
//              calendar date using positional rules seeded by a reference
//              date.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Reject years past the representable range

package parsex

import (
	"time"

	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/utils/stringx"
)

const (
	// maxMonthIndex bounds the zero-based month; 13 in the input still passes
	// and rolls over into January of the next year.
	maxMonthIndex = 12
	maxDay        = 31
	// maxYear is the last year of the ECMAScript date range (±8.64e15 ms)
	maxYear = 275760
)

// CalendarDate is a civil date without a time component
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int

	location *time.Location
}

// NewCalendarDate returns the date of t in t's location
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d, location: t.Location()}
}

// Time returns midnight of the date in the location it was resolved in
func (d CalendarDate) Time() time.Time {
	loc := d.location
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String renders the date as M/D/YYYY
func (d CalendarDate) String() string {
	return FormatDate(d)
}

// Date resolves text against the parser's current reference date
func (p *Parser) Date(text string) Result[CalendarDate] {
	return p.DateAt(text, p.Reference())
}

// DateAt resolves text against an explicit reference date:
//
//	one number      day of the reference month
//	two numbers     month, day of the reference year
//	three or more   month, day, year (further numbers are ignored)
//
// Text without numbers yields the reference date. Years below 100 take the
// reference century unless that lands more than the pivot window ahead of
// the reference year. Days and months roll over ("2/30" is March 1 or 2).
func (p *Parser) DateAt(text string, reference time.Time) Result[CalendarDate] {
	const op = "parsex.Date"

	if stringx.IsEmpty(text) {
		p.logger.Debug("date rejected", log.Field("reason", "empty"))
		return Fail[CalendarDate](emptyInput(op))
	}

	tokens := ExtractNumbers(text)
	reference = reference.In(p.location)

	refYear := int64(reference.Year())
	y := refYear
	m := int64(reference.Month()) - 1
	d := int64(reference.Day())

	switch n := len(tokens); {
	case n == 1:
		d = tokens[0]
	case n >= 2:
		m = tokens[0] - 1
		d = tokens[1]
		if n >= 3 {
			y = tokens[2]
		}
	}

	if m > maxMonthIndex {
		p.logger.Debug("date rejected", log.Fields{"tokens": len(tokens), "field": "month"})
		return Fail[CalendarDate](outOfRange(op, "month", m+1, maxMonthIndex+1, text))
	}
	if d > maxDay {
		p.logger.Debug("date rejected", log.Fields{"tokens": len(tokens), "field": "day"})
		return Fail[CalendarDate](outOfRange(op, "day", d, maxDay, text))
	}

	if y < 100 {
		y += refYear / 100 * 100
		if y > refYear+int64(p.pivot) {
			y -= 100
		}
	}
	if y > maxYear {
		p.logger.Debug("date rejected", log.Fields{"tokens": len(tokens), "field": "year"})
		return Fail[CalendarDate](outOfRange(op, "year", y, maxYear, text))
	}

	t := time.Date(int(y), time.Month(m+1), int(d), 0, 0, 0, 0, p.location)
	date := NewCalendarDate(t)

	p.logger.Debug("date resolved", log.Fields{"tokens": len(tokens), "date": date.String()})
	return Ok(date)
}

// File: parser.go
// Title: Lenient Date/Time Parser
// Description: Implements the Parser type with its options. A parser carries
//              the reference clock, location, two-digit-year pivot and UTC
//              offset that the date and time resolvers depend on.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Construction from configuration settings

package parsex

import (
	"time"

	"github.com/msto63/langext/core/config"
	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/utils/timex"
)

// DefaultPivotYears is how far ahead of the reference year a two-digit year
// may land before the previous century is assumed.
const DefaultPivotYears = 20

// ReferenceEpoch is the day time-of-day results are anchored to
var ReferenceEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Parser resolves free text into calendar dates and times of day. A Parser
// is immutable after construction and safe for concurrent use.
type Parser struct {
	clock     timex.Clock
	location  *time.Location
	pivot     int
	offset    time.Duration
	offsetSet bool
	logger    *log.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithClock sets the clock that supplies the reference date
func WithClock(clock timex.Clock) Option {
	return func(p *Parser) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithReference pins the reference date to t
func WithReference(t time.Time) Option {
	return WithClock(timex.FixedClock{T: t})
}

// WithLocation sets the location of reference dates and constructed dates
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// WithPivotWindow sets the two-digit-year window (default 20 years)
func WithPivotWindow(years int) Option {
	return func(p *Parser) {
		if years >= 0 {
			p.pivot = years
		}
	}
}

// WithUTCOffset sets the offset east of UTC used by time results. Without
// it the location's offset at ReferenceEpoch is used.
func WithUTCOffset(offset time.Duration) Option {
	return func(p *Parser) {
		p.offset = offset
		p.offsetSet = true
	}
}

// WithLogger sets the logger for parse diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser reading the wall clock in the local zone
func New(opts ...Option) *Parser {
	p := &Parser{
		clock:    timex.SystemClock{},
		location: time.Local,
		pivot:    DefaultPivotYears,
		logger:   log.GetDefault().WithName("parsex"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.offsetSet {
		_, seconds := ReferenceEpoch.In(p.location).Zone()
		p.offset = time.Duration(seconds) * time.Second
	}
	return p
}

// NewFromSettings creates a parser from configuration. Explicit options are
// applied after the settings and win.
func NewFromSettings(s config.ParserSettings, opts ...Option) (*Parser, error) {
	loc, err := s.LoadLocation()
	if err != nil {
		return nil, err
	}

	base := []Option{WithLocation(loc), WithPivotWindow(s.PivotYears)}

	if s.UTCOffset != "" {
		offset, err := config.ParseUTCOffset(s.UTCOffset)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid parser settings").
				WithOperation("parsex.NewFromSettings")
		}
		base = append(base, WithUTCOffset(offset))
	}

	ref, ok, err := s.ReferenceDate(loc)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid parser settings").
			WithOperation("parsex.NewFromSettings")
	}
	if ok {
		base = append(base, WithReference(ref))
	}

	return New(append(base, opts...)...), nil
}

// Location returns the parser's location
func (p *Parser) Location() *time.Location {
	return p.location
}

// Offset returns the UTC offset applied to time results
func (p *Parser) Offset() time.Duration {
	return p.offset
}

// PivotWindow returns the two-digit-year window
func (p *Parser) PivotWindow() int {
	return p.pivot
}

// Reference returns the current reference date in the parser's location
func (p *Parser) Reference() time.Time {
	return timex.StartOfDay(p.clock.Now().In(p.location))
}

// ParseDate resolves text with a parser built from opts
func ParseDate(text string, opts ...Option) Result[CalendarDate] {
	return New(opts...).Date(text)
}

// ParseTime resolves text with a parser built from opts
func ParseTime(text string, opts ...Option) Result[TimeOfDay] {
	return New(opts...).Time(text)
}

func outOfRange(op, field string, value, max int64, input string) *mdwerror.Error {
	return mdwerror.Newf("%s out of range", field).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("max", max).
		WithDetail("input", input)
}

func emptyInput(op string) *mdwerror.Error {
	return mdwerror.New("input is empty").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op)
}

// File: settings.go
// Title: Typed Application Settings
// Description: Binds configuration keys to the typed Settings structure used
//              by the parsers, the step timer and the logger, and validates
//              it with struct tags.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.0: UTC offset and reference date validation
// - 2026-10-19 v0.1.1: Offsets with a second sign are rejected; steptimer.log

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	mdwerror "github.com/msto63/langext/core/error"
)

// ReferenceLayout is the layout of a fixed reference date
const ReferenceLayout = "2006-01-02"

// Settings is the typed application configuration
type Settings struct {
	Parser    ParserSettings
	StepTimer StepTimerSettings
	Log       LogSettings
}

// ParserSettings configures the date and time parsers
type ParserSettings struct {
	// PivotYears is the two-digit-year window ahead of the reference year
	PivotYears int `validate:"gte=0,lte=99"`
	// UTCOffset is "+HH:MM", "-HH:MM", "Z" or a Go duration. Empty derives
	// the offset from Location.
	UTCOffset string `validate:"omitempty,utcoffset"`
	// Reference pins "today" to a fixed date (YYYY-MM-DD)
	Reference string `validate:"omitempty,datetime=2006-01-02"`
	// Location is an IANA zone name; empty means the local zone
	Location string `validate:"omitempty,timezone"`
}

// StepTimerSettings configures the step timer
type StepTimerSettings struct {
	Format string `validate:"required,containsany=msf"`
	// Log also writes every step to the logger
	Log bool
}

// LogSettings configures the default logger
type LogSettings struct {
	Level  string `validate:"oneof=trace debug info warn error fatal"`
	Format string `validate:"oneof=json text console logfmt"`
}

// DefaultSettings returns the settings used without any configuration
func DefaultSettings() Settings {
	return Settings{
		Parser:    ParserSettings{PivotYears: 20},
		StepTimer: StepTimerSettings{Format: "mm:ss.fff"},
		Log:       LogSettings{Level: "info", Format: "text"},
	}
}

// Bind reads the settings from cfg on top of the defaults and validates them
func Bind(cfg *Config) (Settings, error) {
	s := DefaultSettings()
	if cfg == nil {
		return s, nil
	}

	s.Parser.PivotYears = cfg.GetInt("parser.pivot_years", s.Parser.PivotYears)
	s.Parser.UTCOffset = cfg.GetString("parser.utc_offset", s.Parser.UTCOffset)
	s.Parser.Reference = cfg.GetString("parser.reference", s.Parser.Reference)
	s.Parser.Location = cfg.GetString("parser.location", s.Parser.Location)
	s.StepTimer.Format = cfg.GetString("steptimer.format", s.StepTimer.Format)
	s.StepTimer.Log = cfg.GetBool("steptimer.log", s.StepTimer.Log)
	s.Log.Level = strings.ToLower(cfg.GetString("log.level", s.Log.Level))
	s.Log.Format = strings.ToLower(cfg.GetString("log.format", s.Log.Format))

	if err := Validate(s); err != nil {
		return s, mdwerror.Wrap(err, "invalid settings").
			WithOperation("config.Bind").
			WithDetail("filePath", cfg.FilePath())
	}
	return s, nil
}

var settingsValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("utcoffset", func(fl validator.FieldLevel) bool {
		_, err := ParseUTCOffset(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the settings against their struct tags
func Validate(s Settings) error {
	err := settingsValidator.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return mdwerror.Wrap(err, "settings validation failed").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Validate")
	}

	first := validationErrs[0]
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Namespace())
	}
	return mdwerror.New(fmt.Sprintf("invalid value for %s (%s)", first.Namespace(), first.Tag())).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("fields", strings.Join(fields, ",")).
		WithDetail("value", fmt.Sprintf("%v", first.Value()))
}

// ReferenceDate parses the configured fixed reference date
func (p ParserSettings) ReferenceDate(loc *time.Location) (time.Time, bool, error) {
	if p.Reference == "" {
		return time.Time{}, false, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(ReferenceLayout, p.Reference, loc)
	if err != nil {
		return time.Time{}, false, mdwerror.Wrap(err, "invalid reference date").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("config.ReferenceDate").
			WithDetail("reference", p.Reference)
	}
	return t, true, nil
}

// LoadLocation resolves the configured location, falling back to time.Local
func (p ParserSettings) LoadLocation() (*time.Location, error) {
	if p.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Location)
	if err != nil {
		return nil, mdwerror.Wrap(err, "unknown location").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadLocation").
			WithDetail("location", p.Location)
	}
	return loc, nil
}

// ParseUTCOffset parses "Z", "+HH:MM", "-HHMM", "+HH" or a Go duration
// such as "-5h30m" into an offset east of UTC.
func ParseUTCOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "z") {
		return 0, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, checkOffset(s, d)
	}

	sign := time.Duration(1)
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	default:
		return 0, offsetError(s)
	}

	hh, mm := s, "0"
	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		hh, mm = parts[0], parts[1]
	case len(s) == 4:
		hh, mm = s[:2], s[2:]
	}

	if !isDigits(hh) || !isDigits(mm) {
		return 0, offsetError(s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, offsetError(s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, offsetError(s)
	}

	d := sign * (time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	return d, checkOffset(s, d)
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func checkOffset(input string, d time.Duration) error {
	if d < -14*time.Hour || d > 14*time.Hour {
		return offsetError(input)
	}
	return nil
}

func offsetError(input string) error {
	return mdwerror.New(fmt.Sprintf("invalid UTC offset: %q", input)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("config.ParseUTCOffset").
		WithDetail("input", input)
}

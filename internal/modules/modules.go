// File: modules.go
// Title: Module Bootstrap
// Description: Registers the langext helper packages in a module registry
//              under their public names, in dependency order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package modules

import (
	"github.com/msto63/langext/core/config"
	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/core/registry"
	"github.com/msto63/langext/utils/mathx"
	"github.com/msto63/langext/utils/parsex"
	"github.com/msto63/langext/utils/slicex"
	"github.com/msto63/langext/utils/stringx"
	"github.com/msto63/langext/utils/timex"
)

// Module names
const (
	Arrays    = "arrays"
	Strings   = "strings"
	Numbers   = "numbers"
	Parsers   = "parsers"
	StepTimer = "stepTimer"
)

// ArrayHelpers is the value of the arrays module
type ArrayHelpers struct {
	SortByType  func(items []any, ignoreCase, desc bool) []any
	DistinctAny func(items []any, ignoreCase bool) []any
}

// StringHelpers is the value of the strings module
type StringHelpers struct {
	Fancify func(s string) string
	In      func(s string, vals ...string) bool
	InFold  func(s string, vals ...string) bool
	Repeat  func(s string, n int) string
}

// NumberHelpers is the value of the numbers module
type NumberHelpers struct {
	In func(v float64, vals ...float64) bool
}

// StepTimerFactory is the value of the stepTimer module
type StepTimerFactory func() *timex.StepTimer

type definition struct {
	name    string
	deps    []string
	factory registry.Factory
}

// Options configures Bootstrap
type Options struct {
	Settings      config.Settings
	Logger        *log.Logger
	Clock         timex.Clock
	ParserOptions []parsex.Option
}

// Bootstrap creates a registry with every module defined
func Bootstrap(opts Options) (*registry.Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Clock == nil {
		opts.Clock = timex.SystemClock{}
	}

	parserOpts := []parsex.Option{parsex.WithLogger(opts.Logger.WithName("parsex"))}
	if opts.Settings.Parser.Reference == "" {
		// A configured reference date pins "today"; the clock only applies without one.
		parserOpts = append(parserOpts, parsex.WithClock(opts.Clock))
	}
	parserOpts = append(parserOpts, opts.ParserOptions...)
	parser, err := parsex.NewFromSettings(opts.Settings.Parser, parserOpts...)
	if err != nil {
		opts.Logger.Warn("parsers module unavailable", log.Err(err))
		return nil, mdwerror.Wrap(err, "failed to build parsers module").
			WithOperation("modules.Bootstrap")
	}

	stepFormat := stringx.FirstNonBlank(opts.Settings.StepTimer.Format, timex.DefaultElapsedLayout)

	definitions := []definition{
		{Arrays, nil, func(...any) any {
			return ArrayHelpers{SortByType: slicex.SortByType, DistinctAny: slicex.DistinctAny}
		}},
		{Strings, nil, func(...any) any {
			return StringHelpers{
				Fancify: stringx.Fancify,
				In:      stringx.In,
				InFold:  stringx.InFold,
				Repeat:  stringx.Repeat,
			}
		}},
		{Numbers, nil, func(...any) any {
			return NumberHelpers{In: mathx.In[float64]}
		}},
		{Parsers, []string{Arrays}, func(...any) any {
			return parser
		}},
		{StepTimer, []string{Arrays}, func(...any) any {
			return StepTimerFactory(func() *timex.StepTimer {
				timer := timex.NewStepTimer(opts.Clock)
				timer.SetFormat(stepFormat)
				return timer
			})
		}},
	}

	reg := registry.New(registry.Options{Logger: opts.Logger})
	for _, def := range definitions {
		if err := reg.Define(def.name, def.deps, def.factory); err != nil {
			return nil, mdwerror.Wrap(err, "failed to define module").
				WithOperation("modules.Bootstrap")
		}
	}

	opts.Logger.Debug("modules bootstrapped", log.Fields{"count": reg.Len()})
	return reg, nil
}

// Parser returns the parser of the parsers module
func Parser(reg *registry.Registry) (*parsex.Parser, bool) {
	return registry.Get[*parsex.Parser](reg, Parsers)
}

// NewStepTimer starts a step timer from the stepTimer module
func NewStepTimer(reg *registry.Registry) (*timex.StepTimer, bool) {
	factory, ok := registry.Get[StepTimerFactory](reg, StepTimer)
	if !ok {
		return nil, false
	}
	return factory(), true
}

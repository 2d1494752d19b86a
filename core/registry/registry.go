// File: registry.go
// Title: Module Registry
// Description: A named module registry with dependency checks. Modules are
//              defined in dependency order; a factory receives the values of
//              its dependencies and produces the module value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package registry

import (
	"fmt"
	"strings"
	"sync"

	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/utils/mapx"
	mdwstringx "github.com/msto63/langext/utils/stringx"
)

// Factory builds a module value from its resolved dependencies, given in
// the order they were declared.
type Factory func(deps ...any) any

// Options configures a Registry
type Options struct {
	Logger *log.Logger
}

type module struct {
	name  string
	deps  []string
	value any
}

// Registry holds defined modules by name. Safe for concurrent use.
type Registry struct {
	modules map[string]*module
	order   []string
	logger  *log.Logger
	mutex   sync.RWMutex
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Registry{
		modules: make(map[string]*module),
		logger:  opts.Logger.WithField("component", "registry"),
	}
}

// Define registers name. Every dependency must already be defined. A nil
// factory, or one that returns nil, stores true so that the module still
// counts as present. Other zero values such as false, 0 or "" are typed
// products and are stored unchanged; callers read them back with Get.
func (r *Registry) Define(name string, deps []string, factory Factory) error {
	if mdwstringx.IsBlank(name) {
		return mdwerror.New("module name cannot be empty").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("registry.Define")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.modules[name]; exists {
		return mdwerror.New(fmt.Sprintf("module %s already defined", name)).
			WithCode(mdwerror.CodeDuplicateEntry).
			WithOperation("registry.Define").
			WithDetail("module", name)
	}

	resolved := make([]any, 0, len(deps))
	var missing []string
	for _, dep := range deps {
		m, ok := r.modules[dep]
		if !ok {
			missing = append(missing, dep)
			continue
		}
		resolved = append(resolved, m.value)
	}
	if len(missing) > 0 {
		return mdwerror.New(fmt.Sprintf("module %s: dependencies must be defined first", name)).
			WithCode(mdwerror.CodeMissingDependency).
			WithOperation("registry.Define").
			WithDetail("module", name).
			WithDetail("missing", strings.Join(missing, ","))
	}

	var value any
	if factory != nil {
		value = factory(resolved...)
	}
	if value == nil {
		value = true
	}

	r.modules[name] = &module{
		name:  name,
		deps:  append([]string(nil), deps...),
		value: value,
	}
	r.order = append(r.order, name)

	r.logger.Debug("module defined", log.Fields{
		"module":       name,
		"dependencies": len(deps),
	})
	return nil
}

// Lookup returns the value of a defined module
func (r *Registry) Lookup(name string) (any, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	m, ok := r.modules[name]
	if !ok {
		return nil, false
	}
	return m.value, true
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the defined module names, sorted
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return mapx.SortedKeys(r.modules)
}

// Order returns the module names in definition order
func (r *Registry) Order() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return append([]string(nil), r.order...)
}

// Dependencies returns the declared dependencies of name
func (r *Registry) Dependencies(name string) ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	m, ok := r.modules[name]
	if !ok {
		return nil, mdwerror.New(fmt.Sprintf("module %s not found", name)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("registry.Dependencies").
			WithDetail("module", name)
	}
	return append([]string(nil), m.deps...), nil
}

// Len returns the number of defined modules
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.modules)
}

// Get looks up name and asserts its value to T
func Get[T any](r *Registry, name string) (T, bool) {
	var zero T
	value, ok := r.Lookup(name)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

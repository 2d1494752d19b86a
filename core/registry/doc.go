// Package registry keeps named modules and their dependencies.
//
// Modules must be defined after everything they depend on:
//
//	reg := registry.New(registry.Options{})
//	_ = reg.Define("arrays", nil, func(...any) any { return arraysAPI })
//	_ = reg.Define("parsers", []string{"arrays"}, func(deps ...any) any {
//		return newParsers(deps[0].(ArraysAPI))
//	})
//
// Defining a name twice, or before its dependencies, fails with a coded
// core/error Error.
package registry

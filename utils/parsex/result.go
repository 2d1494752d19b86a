// File: result.go
// Title: Tagged Parse Results
// Description: Defines the Result type that carries either a parsed value or
//              the structured error explaining why parsing failed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package parsex

import (
	mdwerror "github.com/msto63/langext/core/error"
)

// Result holds either a value or the reason there is none. The zero Result
// is invalid.
type Result[T any] struct {
	value T
	err   *mdwerror.Error
	ok    bool
}

// Ok wraps a successfully parsed value
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps a parse failure
func Fail[T any](err *mdwerror.Error) Result[T] {
	return Result[T]{err: err}
}

// Valid reports whether the result carries a value
func (r Result[T]) Valid() bool {
	return r.ok
}

// Value returns the parsed value and whether it is valid. Invalid results
// return the zero value.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure reason, or nil for valid results
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return mdwerror.New("no result").WithCode(mdwerror.CodeInvalidInput)
	}
	return r.err
}

// MustValue returns the value and panics on invalid results
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic(r.Err())
	}
	return r.value
}

// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string predicates and typography
//              helpers for langext.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial documentation

// Package stringx provides string helpers that extend the standard library.
//
// Membership tests come in an exact and a case-insensitive flavour:
//
//	stringx.In("Hello", "Hello", "World")      // true
//	stringx.InFold("hello", "HELLO", "World")  // true
//
// Fancify converts plain punctuation to typographic characters:
//
//	stringx.Fancify(`He said "wait..." - then left`)
//	// He said “wait…” – then left
package stringx

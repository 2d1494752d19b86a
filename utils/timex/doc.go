// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides the clock abstraction, elapsed-time
//              formatting and the step timer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial documentation
// - 2026-10-14 v0.1.0: Step timer section

// Package timex provides time helpers for langext.
//
// Clock
//
// Anything that needs "now" takes a Clock. SystemClock reads the wall clock,
// FixedClock pins a single instant and ManualClock is advanced by tests.
//
// Step timer
//
//	timer := timex.NewStepTimer(nil)
//	load()
//	timer.AddStep("load")
//	parse()
//	timer.AddStep("parse")
//	fmt.Println(timer.String(true))
//	// load:	00:00.120
//	// parse:	00:01.004
//	// Total time:	00:01.124
package timex

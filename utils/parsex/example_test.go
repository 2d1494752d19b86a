// File: example_test.go
// Title: parsex Examples
// Description: Runnable examples for the lenient parsers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial examples

package parsex_test

import (
	"fmt"
	"time"

	"github.com/msto63/langext/utils/parsex"
)

func ExampleExtractNumbers() {
	fmt.Println(parsex.ExtractNumbers("10-12,14 18"))
	fmt.Println(len(parsex.ExtractNumbers("none")))
	// Output:
	// [10 12 14 18]
	// 0
}

func ExampleParser_Date() {
	p := parsex.New(
		parsex.WithReference(time.Date(1985, time.December, 3, 0, 0, 0, 0, time.UTC)),
		parsex.WithLocation(time.UTC),
	)

	for _, input := range []string{"12", "8.5", "6-15-84", "13/1", "14/1"} {
		res := p.Date(input)
		if d, ok := res.Value(); ok {
			fmt.Printf("%-8s %s\n", input, d)
		} else {
			fmt.Printf("%-8s invalid: %v\n", input, res.Err())
		}
	}
	// Output:
	// 12       12/12/1985
	// 8.5      8/5/1985
	// 6-15-84  6/15/1984
	// 13/1     1/1/1986
	// 14/1     invalid: month out of range
}

func ExampleParser_Time() {
	p := parsex.New(parsex.WithUTCOffset(-5 * time.Hour))

	tod := p.Time("1:15:30.25 pm").MustValue()
	fmt.Println(tod)
	fmt.Println(tod.Instant().Format(time.RFC3339))
	fmt.Println(tod.Local().Format("15:04:05"))
	// Output:
	// 13:15:30.025
	// 1970-01-01T18:15:30Z
	// 13:15:30
}

// File: example_test.go
// Title: stringx Examples
// Description: Runnable examples for the stringx package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial examples

package stringx_test

import (
	"fmt"

	"github.com/msto63/langext/utils/stringx"
)

func ExampleFancify() {
	fmt.Println(stringx.Fancify(`He said "wait..." - then left`))
	// Output: He said “wait…” – then left
}

func ExampleInFold() {
	fmt.Println(stringx.InFold("hello", "HELLO", "World"))
	fmt.Println(stringx.In("hello", "HELLO", "World"))
	// Output:
	// true
	// false
}

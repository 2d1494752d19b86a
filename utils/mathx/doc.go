// Package mathx provides small generic numeric helpers.
//
//	mathx.In(5, 5, 10, 15, 20) // true
//	mathx.In(5.0, 1.5, 2.5)    // false
package mathx

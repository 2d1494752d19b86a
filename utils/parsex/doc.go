// File: doc.go
// Title: Package Documentation for parsex
// Description: Package parsex resolves loosely typed dates, times and number
//              lists from free text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation
// - 2026-10-16 v0.1.0: Configuration and offset sections

/*
Package parsex resolves loosely typed dates, times and number lists.

Every parse starts by extracting the digit runs of the input; everything else
is a delimiter:

	parsex.ExtractNumbers("10-12,14 18") // [10 12 14 18]

Dates are resolved by position against a reference date (normally today):

	"12"       day 12 of the reference month
	"8.5"      August 5 of the reference year
	"6-15-84"  June 15, 1984 (two-digit year, see WithPivotWindow)

Times are resolved as hour, minute, second, millisecond, with "pm" adding
twelve hours:

	"1pm"           13:00:00.000
	"14 32 14.587"  14:32:14.587

Results are tagged: check Valid (or the ok of Value) before use. Failures
carry a core/error Error with CodeInvalidInput for empty input and
CodeValueOutOfRange, plus the offending field, for values over their bound.

	res := parsex.ParseDate("13/1")
	if !res.Valid() {
		fmt.Println(res.Err()) // month out of range
	}

Time zones

A TimeOfDay remembers the UTC offset it was parsed under. Instant anchors it
on 1970-01-01 at that offset; Local shows it in a fixed zone with the same
offset, so its clock reads exactly the parsed fields. The offset defaults to
the parser location's offset at the epoch and can be set with WithUTCOffset.

Parsers can also be built from configuration with NewFromSettings.
*/
package parsex

// File: format.go
// Title: Canonical Rendering
// Description: Renders parsed dates and times in forms that parse back to
//              the same fields.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package parsex

import "fmt"

// FormatDate renders d as M/D/YYYY. Parsing the result yields d again for
// years from 100 on.
func FormatDate(d CalendarDate) string {
	return fmt.Sprintf("%d/%d/%04d", int(d.Month), d.Day, d.Year)
}

// FormatTime renders t as HH:MM:SS.mmm. Parsing the result with the same
// offset yields t again.
func FormatTime(t TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
}

// File: fancify.go
// Title: Typographic Replacement
// Description: Replaces plain ASCII punctuation with typographic characters:
//              curly quotes, ellipsis, en and em dashes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import "regexp"

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// Order matters: opening quotes must be placed before the catch-all closing
// quote rules run.
var fancyRules = []replacement{
	{regexp.MustCompile(`(\s|^)"`), "${1}“"},
	{regexp.MustCompile(`"`), "”"},
	{regexp.MustCompile(`(\s|^)'`), "${1}‘"},
	{regexp.MustCompile(`'`), "’"},
	{regexp.MustCompile(`\.\.\.\.*`), "…"},
	{regexp.MustCompile(`(\s)-(\s)`), "${1}–${2}"},
	{regexp.MustCompile(`([^-\s])--([^-\s])`), "${1}—${2}"},
	{regexp.MustCompile(`(\n|^)[ \t]+`), "${1}"},
}

// Fancify returns s with typographic punctuation:
//
//	"quoted"  -> “quoted”
//	'quoted'  -> ‘quoted’
//	...       -> …   (three or more dots)
//	a - b     -> a – b
//	a--b      -> a—b
//
// Leading spaces and tabs are stripped from every line.
func Fancify(s string) string {
	for _, rule := range fancyRules {
		s = rule.pattern.ReplaceAllString(s, rule.with)
	}
	return s
}

// Package normalize turns raw page text into typed values.
package normalize

import (
	"strings"
	"unicode"
)

// Text trims s and collapses every whitespace run (newlines, tabs, NBSP
// and indentation left over from templates) into a single space.
func Text(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200b' || r == '\ufeff'
}

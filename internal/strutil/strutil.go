// Package strutil provides pure string transformations used by the
// demonstration and available as library helpers.
package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// CapitalizeFirstLetter uppercases the first rune of s and leaves the
// remainder unchanged.
func CapitalizeFirstLetter(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IsValidEmail reports whether s matches a standard email shape
// (local@domain.tld).
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Trimmed strips leading and trailing whitespace, including line
// breaks.
func Trimmed(s string) string {
	return strings.TrimSpace(s)
}

// tokenize splits on any rune that is not a letter or digit and drops
// empty tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// CamelCased converts s to camelCase: tokens are split on whitespace
// and punctuation, the first token is lowercased, and each subsequent
// token gets its first letter capitalized.
func CamelCased(s string) string {
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(tokens[0]))
	for _, tok := range tokens[1:] {
		b.WriteString(CapitalizeFirstLetter(strings.ToLower(tok)))
	}
	return b.String()
}

// WordCount returns the number of non-empty tokens after splitting on
// whitespace and punctuation.
func WordCount(s string) int {
	return len(tokenize(s))
}

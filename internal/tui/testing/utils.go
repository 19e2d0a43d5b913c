package testing

import (
	"regexp"
	"strings"
)

var (
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims
// the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Plain strips escape codes and normalizes whitespace, leaving text that
// wrapped across lines comparable as one string.
func Plain(s string) string {
	return NormalizeWhitespace(StripANSI(s))
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}

package utils

import (
	"strings"
	"unicode"
)

// IsPatternRune reports whether r has a meaning in pattern syntax besides
// being a letter: wildcards, the group delimiter and the open tail.
func IsPatternRune(r rune) bool {
	return r == '_' || r == '.' || r == '/' || r == '%'
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// LooksLikePattern guesses whether raw command line input is a pattern rather
// than a set of jumbled letters. Wildcards, digit shorthand and several words
// all point to a pattern.
func LooksLikePattern(s string) bool {
	if ContainsNumbers(s) || len(strings.Fields(s)) > 1 {
		return true
	}
	return strings.ContainsFunc(s, IsPatternRune)
}

// IsValidLetters reports whether s only holds ASCII letters and spaces, with
// at least one letter.
func IsValidLetters(s string) bool {
	letters := 0
	for i := 0; i < len(s); i++ {
		switch {
		case IsASCIILetter(s[i]):
			letters++
		case s[i] == ' ':
		default:
			return false
		}
	}
	return letters > 0
}

package utils

import (
	"sort"
	"strings"
)

// IsASCIILetter reports whether c is in a-z or A-Z.
func IsASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// LowerASCII folds a single ASCII letter to lowercase and leaves other bytes alone.
func LowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// NormalizeEntry lowercases s and collapses runs of whitespace into single
// spaces. Leading and trailing whitespace is dropped.
func NormalizeEntry(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// IsEntry reports whether s only holds ASCII letters and single spaces
// between words.
func IsEntry(s string) bool {
	if s == "" || s[0] == ' ' || s[len(s)-1] == ' ' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if s[i-1] == ' ' {
				return false
			}
			continue
		}
		if !IsASCIILetter(c) {
			return false
		}
	}
	return true
}

// StripSpaces removes all whitespace from s.
func StripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Signature returns the letters of s, lowercased and sorted, with whitespace removed.
// Two entries are anagrams of each other when their signatures are equal.
func Signature(s string) string {
	b := []byte(strings.ToLower(StripSpaces(s)))
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// Reverse returns s with its bytes in reverse order.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

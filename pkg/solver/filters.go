package solver

import (
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
)

// FilterSize keeps entries with exactly size letters, spaces not counted.
func FilterSize(entries []string, size int) []string {
	var out []string
	for _, e := range entries {
		if len(utils.StripSpaces(e)) == size {
			out = append(out, e)
		}
	}
	return out
}

// ExcludePhrases keeps single words only.
func ExcludePhrases(entries []string) []string {
	var out []string
	for _, e := range entries {
		if !strings.ContainsRune(e, ' ') {
			out = append(out, e)
		}
	}
	return out
}

// FilterFound keeps entries that start with the found letters: the found
// pattern is matched as if it ended with '%', so the last word and anything
// after it may run longer.
func FilterFound(entries []string, found string) ([]string, error) {
	raw, err := pattern.Expand(found)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(raw, string(pattern.OpenTail)) {
		raw += string(pattern.OpenTail)
	}
	spec, err := pattern.Compile(raw)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if _, ok := match.Match(e, spec, match.Options{}); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

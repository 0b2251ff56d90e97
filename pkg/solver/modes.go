package solver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
)

const (
	WordleLength      = 5
	SpellingBeeMinLen = 4
	PanagramLetters   = 9
	PanagramMinLen    = 4
)

// Hit is an entry worth pointing out, such as a Spelling Bee pangram.
type Hit struct {
	Entry     string
	Highlight bool
}

// Hits wraps plain entries.
func Hits(entries []string) []Hit {
	hits := make([]Hit, len(entries))
	for i, e := range entries {
		hits[i] = Hit{Entry: e}
	}
	return hits
}

// HitEntries unwraps hits.
func HitEntries(hits []Hit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Entry
	}
	return out
}

// Regex returns the entries matched by expr. With a target, the thesaurus
// entries of the target are searched instead of the dictionary.
func (s *Solver) Regex(expr, target string) ([]string, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	candidates := s.dict.Entries()
	if target != "" {
		if candidates, err = s.Synonyms(target); err != nil {
			return nil, err
		}
	}

	var out []string
	for _, entry := range candidates {
		if re.MatchString(entry) {
			out = append(out, entry)
		}
	}
	return out, nil
}

// Wordle finds five letter words given the green pattern, the yellow letters
// that must appear off the green slots, and the grey letters that may only
// appear where a green slot puts them. Repeated yellow letters must appear
// that many times.
func (s *Solver) Wordle(ctx context.Context, green, yellow, grey string) ([]string, error) {
	spec, err := pattern.Parse(green)
	if err != nil {
		return nil, err
	}
	if spec.NumGroups() != 1 || spec.Len() != WordleLength || spec.IsOpen() {
		return nil, fmt.Errorf("%w: wordle pattern %q must be %d letters", ErrInvalidQuery, green, WordleLength)
	}
	need, err := pool.Build(yellow)
	if err != nil {
		return nil, err
	}
	banned, err := pool.Build(grey)
	if err != nil {
		return nil, err
	}

	results, err := s.scan(ctx, spec, match.Options{})
	if err != nil {
		return nil, err
	}

	var out []string
	for _, r := range results {
		if len(r.Words) != 1 {
			continue
		}
		if wordleFits(r, need, banned) {
			out = append(out, r.Entry)
		}
	}
	return out, nil
}

func wordleFits(r match.Result, need, banned pool.Pool) bool {
	free := make([]byte, 0, len(r.Letters))
	for i := 0; i < len(r.Letters); i++ {
		if r.Pinned[i] {
			continue
		}
		if banned.Has(r.Letters[i]) {
			return false
		}
		free = append(free, r.Letters[i])
	}
	p, err := pool.Build(string(free))
	return err == nil && p.Contains(need)
}

// SpellingBee finds words of at least four letters built only from letters,
// each usable any number of times, that contain the first letter. Words using
// every letter are highlighted.
func (s *Solver) SpellingBee(letters string) ([]Hit, error) {
	set, required, err := puzzleLetters(letters)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	for _, entry := range s.dict.Entries() {
		if len(entry) < SpellingBeeMinLen || strings.ContainsRune(entry, ' ') {
			continue
		}
		if strings.IndexByte(entry, required) < 0 {
			continue
		}
		used, ok := onlyFrom(entry, set)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Entry: entry, Highlight: used == set.Distinct()})
	}
	return hits, nil
}

// onlyFrom reports whether every letter of entry is in set and how many
// distinct letters it used.
func onlyFrom(entry string, set pool.Pool) (int, bool) {
	var seen [26]bool
	used := 0
	for i := 0; i < len(entry); i++ {
		c := entry[i]
		if !set.Has(c) {
			return 0, false
		}
		if !seen[c-'a'] {
			seen[c-'a'] = true
			used++
		}
	}
	return used, true
}

// Panagram finds words of four to nine letters drawn from exactly nine
// letters, each used at most as often as given, that contain the first
// letter. Nine letter answers are highlighted.
func (s *Solver) Panagram(letters string) ([]Hit, error) {
	set, required, err := puzzleLetters(letters)
	if err != nil {
		return nil, err
	}
	if set.Total() != PanagramLetters {
		return nil, fmt.Errorf("%w: panagram needs %d letters, got %d", ErrInvalidQuery, PanagramLetters, set.Total())
	}

	specs := make(map[int]*pattern.Spec, PanagramLetters-PanagramMinLen+1)
	for n := PanagramMinLen; n <= PanagramLetters; n++ {
		specs[n] = pattern.Wildcards(n)
	}
	opts := match.Options{Pool: &set, Mode: match.ModeSubset}

	var hits []Hit
	for _, entry := range s.dict.Entries() {
		spec, ok := specs[len(entry)]
		if !ok || strings.IndexByte(entry, required) < 0 {
			continue
		}
		if _, ok := match.Match(entry, spec, opts); ok {
			hits = append(hits, Hit{Entry: entry, Highlight: len(entry) == PanagramLetters})
		}
	}
	return hits, nil
}

// puzzleLetters builds the letter pool of a Spelling Bee or Panagram and
// returns its mandatory first letter.
func puzzleLetters(letters string) (pool.Pool, byte, error) {
	letters = utils.StripSpaces(letters)
	set, err := pool.Build(letters)
	if err != nil {
		return pool.Pool{}, 0, err
	}
	if set.IsEmpty() {
		return pool.Pool{}, 0, fmt.Errorf("%w: no letters given", ErrInvalidQuery)
	}
	return set, utils.LowerASCII(letters[0]), nil
}

// Reverse spells s backwards in capitals with spaces dropped, for reversed
// hidden word clues.
func Reverse(s string) []string {
	return []string{strings.ToUpper(utils.Reverse(utils.StripSpaces(s)))}
}

// RegularPatterns returns the even and odd letters of s in capitals, spaces
// dropped, so "bro sneers" gives "BONES" and "RSER". reverse reads s
// backwards first.
func RegularPatterns(s string, reverse bool) []string {
	letters := strings.ToUpper(utils.StripSpaces(s))
	if reverse {
		letters = utils.Reverse(letters)
	}
	var evens, odds strings.Builder
	for i := 0; i < len(letters); i++ {
		if i%2 == 0 {
			evens.WriteByte(letters[i])
		} else {
			odds.WriteByte(letters[i])
		}
	}
	return []string{evens.String(), odds.String()}
}

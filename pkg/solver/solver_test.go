package solver

import (
	"context"
	"testing"

	"github.com/bastiangx/wordsolve/pkg/definitions"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
	"github.com/bastiangx/wordsolve/pkg/thesaurus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntries = []string{
	"act", "attract", "cart", "cat", "cater", "caret", "come in", "computer",
	"crane", "crass", "crate", "crates", "dog", "enlist", "feline", "kitten",
	"like mad", "like magic", "likes", "listen", "rat", "react", "silent",
	"stare", "tar", "tinsel", "trace", "tree",
}

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	thes := thesaurus.New()
	thes.Add("feline", "cat", "kitten", "tabby")
	thes.Add("happy", "glad")

	defs := definitions.New()
	defs.Add("cat", "a small domesticated carnivore")

	return New(dictionary.New(testEntries), thes, defs, Settings{Workers: 2, SingleRowMax: 2})
}

func lookup(t *testing.T, s *Solver, raw, letters, target string) []string {
	t.Helper()
	q, err := NewLookupQuery(raw, letters, target)
	require.NoError(t, err)
	results, err := s.Lookup(context.Background(), q)
	require.NoError(t, err)
	return match.Entries(results)
}

func TestLookup(t *testing.T) {
	s := newTestSolver(t)

	testCases := []struct {
		pattern     string
		letters     string
		target      string
		expected    []string
		description string
	}{
		{"c_mp_t_r", "", "", []string{"computer"}, "Single word"},
		{"l_k_ m_g_c", "", "", []string{"like magic"}, "Phrase by spaces"},
		{"4/5", "", "", []string{"like magic"}, "Digit shorthand"},
		{"____", "", "", []string{"cart", "tree"}, "Four letters"},
		{"_______", "", "", []string{"attract", "like mad"}, "Single group matches phrases by letters"},
		{"___", "tac", "", []string{"act", "cat"}, "Letters limit the wildcards"},
		{"___", "", "feline", []string{"cat"}, "Thesaurus target"},
		{"cr%", "", "", []string{"crane", "crass", "crate", "crates"}, "Open tail"},
		{"zz_", "", "", nil, "No results is not an error"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, lookup(t, s, tc.pattern, tc.letters, tc.target))
		})
	}
}

func TestLookupErrors(t *testing.T) {
	s := newTestSolver(t)

	_, err := NewLookupQuery("c-t", "", "")
	assert.ErrorIs(t, err, pattern.ErrInvalidPattern)

	_, err = NewLookupQuery("___", "ab1", "")
	assert.ErrorIs(t, err, pool.ErrInvalidAlphabet)

	q, err := NewLookupQuery("___", "", "xyzzy")
	require.NoError(t, err)
	_, err = s.Lookup(context.Background(), q)
	assert.ErrorIs(t, err, thesaurus.ErrUnknownTerm)

	bare := New(dictionary.New(testEntries), nil, nil, Settings{})
	q, err = NewLookupQuery("___", "", "feline")
	require.NoError(t, err)
	_, err = bare.Lookup(context.Background(), q)
	assert.ErrorIs(t, err, ErrNoThesaurus)
}

func TestLookupPrefixNarrowingMatchesFullScan(t *testing.T) {
	s := newTestSolver(t)
	for _, raw := range []string{"cr___", "c%", "li__/m%", "ta_"} {
		t.Run(raw, func(t *testing.T) {
			spec, err := pattern.Parse(raw)
			require.NoError(t, err)
			full, err := match.Scan(s.Dictionary().Entries(), spec, match.Options{})
			require.NoError(t, err)
			assert.Equal(t, match.Entries(full), lookup(t, s, raw, "", ""))
		})
	}
}

func TestJumble(t *testing.T) {
	s := newTestSolver(t)

	testCases := []struct {
		letters     string
		found       string
		subset      bool
		expected    []string
		residual    string
		description string
	}{
		{"tmpcreou", "", false, []string{"computer"}, "cemoprtu", "No found letters"},
		{"TMPC REOU", "c_m", false, []string{"computer"}, "eoprtu", "Found letters padded"},
		{"tmpcreou", "c_m_/____", false, nil, "eoprtu", "Groups must match words"},
		{"nlesti", "", false, []string{"enlist", "listen", "silent", "tinsel"}, "eilnst", "Several answers in list order"},
		{"cart", "___", true, []string{"act", "cat", "rat", "tar"}, "acrt", "Subset of the letters"},
		{"cartz", "", true, []string{"act", "cart", "cat", "rat", "tar"}, "acrtz", "Subset with no found letters"},
		{"comeinx", "", true, []string{"come in"}, "ceimnox", "Subset phrase with no found letters"},
		{"atc", "c_____", false, nil, "act", "Found letters from outside the pool"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			q, err := NewJumbleQuery(tc.letters, tc.found, tc.subset)
			require.NoError(t, err)
			res, err := s.Jumble(context.Background(), q)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, match.Entries(res.Results))
			assert.Equal(t, tc.residual, res.Residual.Letters())
			assert.Equal(t, res.Residual.Total(), res.Grid.Cells())
		})
	}
}

func TestJumbleFoundStrip(t *testing.T) {
	s := newTestSolver(t)
	q, err := NewJumbleQuery("tmpcreou", "c_m", false)
	require.NoError(t, err)
	assert.Equal(t, "c_m_____", q.Found.String())
	assert.Equal(t, match.ModeExact, q.Mode)

	res, err := s.Jumble(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "C _ M _ _ _ _ _", res.Found)
	assert.NotEmpty(t, res.Grid.String())
}

func TestJumbleSubsetWithoutFound(t *testing.T) {
	q, err := NewJumbleQuery("cartz", "", true)
	require.NoError(t, err)
	assert.Equal(t, match.ModeSubset, q.Mode)
	assert.Equal(t, "_____", q.Found.String())

	res, err := newTestSolver(t).Jumble(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "_ _ _ _ _", res.Found)
	assert.NotContains(t, match.Entries(res.Results), "attract", "letters are used at most once")
}

func TestJumbleErrors(t *testing.T) {
	_, err := NewJumbleQuery("tmpcreou", "z", false)
	assert.ErrorIs(t, err, pool.ErrLetterExhausted)

	_, err = NewJumbleQuery("tmpcreou", "cc", false)
	assert.ErrorIs(t, err, pool.ErrLetterExhausted)

	_, err = NewJumbleQuery("tmpcreou", "c%", false)
	assert.ErrorIs(t, err, pattern.ErrInvalidPattern)

	_, err = NewJumbleQuery("tmp-creou", "", false)
	assert.ErrorIs(t, err, pool.ErrInvalidAlphabet)

	_, err = NewJumbleQuery("  ", "", false)
	assert.ErrorIs(t, err, pool.ErrInvalidAlphabet)
}

func TestAnagram(t *testing.T) {
	s := newTestSolver(t)

	got, err := s.Anagram("Inlets")
	require.NoError(t, err)
	assert.Equal(t, []string{"enlist", "listen", "silent", "tinsel"}, got)

	got, err = s.Anagram("gi cake mil")
	require.NoError(t, err)
	assert.Equal(t, []string{"like magic"}, got)

	_, err = s.Anagram("a1")
	assert.ErrorIs(t, err, pool.ErrInvalidAlphabet)
}

func TestWordle(t *testing.T) {
	s := newTestSolver(t)
	ctx := context.Background()

	testCases := []struct {
		green       string
		yellow      string
		grey        string
		expected    []string
		description string
	}{
		{"cra__", "", "", []string{"crane", "crass", "crate"}, "Green letters only"},
		{"c____", "t", "n", []string{"cater", "caret", "crate"}, "Yellow and grey letters"},
		{"c____", "tt", "", nil, "Repeated yellow letter must appear twice"},
		{"_____", "", "aeiou", nil, "Grey vowels rule everything out"},
		{"t_a__", "", "t", []string{"trace"}, "Grey letter allowed on its green slot"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := s.Wordle(ctx, tc.green, tc.yellow, tc.grey)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := s.Wordle(ctx, "abc", "", "")
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = s.Wordle(ctx, "ab/cde", "", "")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSpellingBee(t *testing.T) {
	s := newTestSolver(t)

	hits, err := s.SpellingBee("acert")
	require.NoError(t, err)
	assert.Equal(t, []string{"attract", "cart", "cater", "caret", "crate", "react", "trace"}, HitEntries(hits))
	for _, h := range hits {
		assert.Equal(t, h.Entry != "attract" && h.Entry != "cart", h.Highlight, h.Entry)
	}

	_, err = s.SpellingBee("")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestPanagram(t *testing.T) {
	s := New(dictionary.New(append([]string{"computers"}, testEntries...)), nil, nil, Settings{Workers: 1})

	hits, err := s.Panagram("cratesmpo")
	require.NoError(t, err)
	assert.Equal(t, []string{"cart", "cater", "caret", "crate", "crates", "react", "trace"}, HitEntries(hits))

	hits, err = s.Panagram("ucomptres")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, Hit{Entry: "computers", Highlight: true}, hits[0])
	assert.Equal(t, Hit{Entry: "computer", Highlight: false}, hits[1])

	_, err = s.Panagram("abc")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestRegex(t *testing.T) {
	s := newTestSolver(t)

	got, err := s.Regex("^c.t$", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, got)

	got, err = s.Regex("^t", "feline")
	require.NoError(t, err)
	assert.Equal(t, []string{"tabby"}, got)

	_, err = s.Regex("([", "")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSynonymsAndDefine(t *testing.T) {
	s := newTestSolver(t)

	syn, err := s.Synonyms("Feline")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "kitten", "tabby"}, syn)

	_, err = s.Synonyms("xyzzy")
	assert.ErrorIs(t, err, thesaurus.ErrUnknownTerm)

	defs, err := s.Define("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"A small domesticated carnivore"}, defs)

	_, err = s.Define("dog")
	assert.ErrorIs(t, err, definitions.ErrNoDefinition)
}

func TestReverseAndRegularPatterns(t *testing.T) {
	assert.Equal(t, []string{"YFFIREEB"}, Reverse("beer iffy"))
	assert.Equal(t, []string{"BONES", "RSER"}, RegularPatterns("bro sneers", false))
	assert.Equal(t, []string{"SENOB", "RESR"}, RegularPatterns("bro sneers", true))
}

func TestFilters(t *testing.T) {
	entries := []string{"computer", "come in", "like magic", "like mad", "likes", "cat"}

	assert.Equal(t, []string{"like mad"}, FilterSize(entries, 7))
	assert.Equal(t, []string{"computer"}, FilterSize(entries, 8))
	assert.Equal(t, []string{"computer", "likes", "cat"}, ExcludePhrases(entries))

	got, err := FilterFound(entries, "c_m")
	require.NoError(t, err)
	assert.Equal(t, []string{"computer", "come in"}, got)

	got, err = FilterFound(entries, "l_ke/m")
	require.NoError(t, err)
	assert.Equal(t, []string{"like magic", "like mad"}, got)

	_, err = FilterFound(entries, "c-m")
	assert.ErrorIs(t, err, pattern.ErrInvalidPattern)

	assert.Empty(t, FilterSize(nil, 3))
}

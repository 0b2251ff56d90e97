package thesaurus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `happy,glad,content,joyful,on cloud nine
sad,unhappy,blue,down in the dumps
happy,Cheerful,glad
# comment
lonely
`

func newSample(t *testing.T) *Thesaurus {
	t.Helper()
	th := New()
	require.NoError(t, th.Read(strings.NewReader(sample)))
	return th
}

func TestRead(t *testing.T) {
	th := newSample(t)
	assert.Equal(t, 2, th.Len())
	assert.True(t, th.Has("HAPPY"))
	assert.False(t, th.Has("lonely"))

	words, err := th.Lookup("happy")
	require.NoError(t, err)
	assert.Equal(t, []string{"glad", "content", "joyful", "on cloud nine", "cheerful"}, words)
}

func TestRelated(t *testing.T) {
	th := newSample(t)

	testCases := []struct {
		entry       string
		target      string
		expected    bool
		description string
	}{
		{"glad", "happy", true, "Plain synonym"},
		{"Glad", "Happy", true, "Case is ignored"},
		{"on cloud nine", "happy", true, "Phrase synonym"},
		{"on  cloud nine", "happy", true, "Extra spaces collapse"},
		{"cloud", "happy", false, "Part of a phrase is not related"},
		{"happy", "happy", false, "Target is not its own synonym"},
		{"blue", "happy", false, "Synonym of another head"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ok, err := th.Related(tc.entry, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestUnknownTerm(t *testing.T) {
	th := newSample(t)

	_, err := th.Related("glad", "xyzzy")
	assert.ErrorIs(t, err, ErrUnknownTerm)

	_, err = th.Lookup("xyzzy")
	assert.ErrorIs(t, err, ErrUnknownTerm)

	results, err := th.Filter([]match.Result{{Entry: "glad"}}, "xyzzy")
	assert.ErrorIs(t, err, ErrUnknownTerm)
	assert.Nil(t, results)
}

func TestFilterKeepsOrder(t *testing.T) {
	th := newSample(t)
	spec, err := pattern.Compile("_____")
	require.NoError(t, err)

	entries := []string{"cheer", "sadly", "hippo", "merry"}
	th.Add("jolly", "merry", "cheer")

	results, err := match.Scan(entries, spec, match.Options{})
	require.NoError(t, err)
	require.Len(t, results, 4)

	kept, err := th.Filter(results, "jolly")
	require.NoError(t, err)
	assert.Equal(t, []string{"cheer", "merry"}, match.Entries(kept))
	assert.Len(t, results, 4, "input is left alone")

	plain, err := th.FilterEntries(entries, "jolly")
	require.NoError(t, err)
	assert.Equal(t, []string{"cheer", "merry"}, plain)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thesaurus.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.True(t, th.Has("sad"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

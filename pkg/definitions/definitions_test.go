package definitions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordset = `{
  "apple": {
    "word": "apple",
    "meanings": [
      {"def": "the round fruit of a tree", "speech_part": "noun"},
      {"def": "a tech company", "speech_part": "noun"}
    ]
  },
  "ice cream": {
    "word": "ice cream",
    "meanings": [{"def": "frozen dessert"}]
  },
  "bare": {"word": "bare"}
}`

func TestReadText(t *testing.T) {
	d := New()
	require.NoError(t, d.ReadText(strings.NewReader("apple|A fruit|a company\n# skip\nsolo\npear|Another fruit\n")))

	defs, err := d.Lookup("Apple")
	require.NoError(t, err)
	assert.Equal(t, []string{"A fruit", "A company"}, defs)

	_, err = d.Lookup("solo")
	assert.ErrorIs(t, err, ErrNoDefinition)
	assert.Equal(t, 2, d.Len())
}

func TestReadWordset(t *testing.T) {
	d := New()
	require.NoError(t, d.ReadWordset([]byte(wordset)))

	defs, err := d.Lookup("apple")
	require.NoError(t, err)
	assert.Equal(t, []string{"The round fruit of a tree", "A tech company"}, defs)

	defs, err = d.Lookup("ICE  CREAM")
	require.NoError(t, err)
	assert.Equal(t, []string{"Frozen dessert"}, defs)

	_, err = d.Lookup("bare")
	assert.ErrorIs(t, err, ErrNoDefinition)

	assert.Error(t, New().ReadWordset([]byte(`{"apple":`)))
}

func TestMergeDropsRepeats(t *testing.T) {
	a := New()
	a.Add("apple", "a fruit")
	b := New()
	b.Add("apple", "A fruit")
	b.Add("apple", "a company")

	a.Merge(b)
	defs, err := a.Lookup("apple")
	require.NoError(t, err)
	assert.Equal(t, []string{"A fruit", "A company"}, defs)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "definitions.txt")
	js := filepath.Join(dir, "wordset.json")
	require.NoError(t, os.WriteFile(text, []byte("pear|A fruit\n"), 0644))
	require.NoError(t, os.WriteFile(js, []byte(wordset), 0644))

	d, err := Load(text, js)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	again := filepath.Join(dir, "more.txt")
	require.NoError(t, os.WriteFile(again, []byte("pear|a fruit|A tree\n"), 0644))
	d, err = Load(text, again)
	require.NoError(t, err)
	defs, err := d.Lookup("pear")
	require.NoError(t, err)
	assert.Equal(t, []string{"A fruit", "A tree"}, defs, "files are merged without repeats")

	list := filepath.Join(dir, "words_1.txt")
	require.NoError(t, os.WriteFile(list, []byte("apple\n"), 0644))
	_, err = Load(list)
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordsolve/pkg/layout"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveHandler(t *testing.T) {
	testCases := []struct {
		word        string
		input       string
		expected    string
		description string
	}{
		{"listen", "l\ns\n", "ITEN", "One letter per line"},
		{"listen", "lis\n", "TEN", "Several letters on a line"},
		{"listen", "lis\n\n", "LISTEN", "Blank line resets"},
		{"listen", "z\n", "LISTEN", "Missing letter is skipped"},
		{"like mad", "k\n.\nd\n", "LIEMAD", "Dot exits"},
		{"tt", "t", "T", "Input without newline"},
		{"ab", "ab\nc\n", "", "Loop ends when no letters remain"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var out bytes.Buffer
			h := NewRemoveHandler(tc.word, strings.NewReader(tc.input), &out)
			require.NoError(t, h.Start())
			assert.Equal(t, tc.expected, h.Current())
		})
	}
}

func TestRemoveHandlerPrompt(t *testing.T) {
	var out bytes.Buffer
	h := NewRemoveHandler("cat", strings.NewReader("c\n"), &out)
	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "CAT > ")
	assert.Contains(t, out.String(), "AT > ")
}

func TestPrinterHits(t *testing.T) {
	hits := []solver.Hit{{Entry: "cart"}, {Entry: "like mad"}, {Entry: "trace", Highlight: true}}

	testCases := []struct {
		narrow      bool
		expected    string
		description string
	}{
		{false, "cart 'like mad' TRACE\n", "Wide quotes phrases"},
		{true, "cart\nlike mad\nTRACE\n", "Narrow prints one per line"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var out bytes.Buffer
			NewPrinter(&out, tc.narrow).Hits(hits)
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestPrinterEmpty(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false).Entries(nil)
	assert.Empty(t, out.String())
}

func TestPrinterJumble(t *testing.T) {
	p, err := pool.Build("cat")
	require.NoError(t, err)
	found, err := pattern.Compile("___")
	require.NoError(t, err)

	res := &solver.JumbleResult{
		Grid:     layout.Render(p),
		Found:    layout.RenderFound(found),
		Residual: p,
		Results:  []match.Result{{Entry: "act"}, {Entry: "cat"}},
	}

	var out bytes.Buffer
	NewPrinter(&out, false).Jumble(res)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	for _, row := range res.Grid.Rows() {
		assert.Contains(t, lines, gridIndent+row)
	}
	assert.Contains(t, lines, gridIndent+"_ _ _")
	assert.Equal(t, "act cat", lines[len(lines)-1])
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatWithCommas(tc.n))
	}
}

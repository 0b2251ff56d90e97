package layout

import (
	"strings"
	"testing"

	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPool(t *testing.T, letters string) pool.Pool {
	t.Helper()
	p, err := pool.Build(letters)
	require.NoError(t, err)
	return p
}

func TestRenderPlacesEveryLetter(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyzetaoinshrdlu"
	for n := 1; n <= len(alphabet); n++ {
		p := mustPool(t, alphabet[:n])
		g := Render(p)
		assert.Equal(t, n, g.Cells(), "letters=%d", n)

		var letters []byte
		for _, row := range g.Rows() {
			for i := 0; i < len(row); i++ {
				if row[i] != ' ' {
					letters = append(letters, row[i])
				}
			}
		}
		assert.Equal(t, strings.ToUpper(p.Letters()), string(sortBytes(letters)))
	}
}

func sortBytes(b []byte) []byte {
	var counts [256]int
	for _, c := range b {
		counts[c]++
	}
	out := make([]byte, 0, len(b))
	for c, n := range counts {
		for ; n > 0; n-- {
			out = append(out, byte(c))
		}
	}
	return out
}

func TestRenderIsDeterministic(t *testing.T) {
	a := Render(mustPool(t, "brandenburg"))
	b := Render(mustPool(t, "BURG BRANDEN"))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.String(), Render(mustPool(t, "brandenburg")).String())
}

func TestRenderShape(t *testing.T) {
	g := Render(mustPool(t, "computer"))
	require.Greater(t, g.Radius(), 0)
	rows := g.Rows()
	assert.LessOrEqual(t, len(rows), 2*g.Radius()+1)
	for _, row := range rows {
		assert.LessOrEqual(t, len(row), 4*g.Radius()+1)
		assert.Equal(t, strings.TrimRight(row, " "), row)
	}
}

func TestRenderHasNoBlankEdgeRows(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	for n := 3; n <= len(alphabet); n++ {
		rows := Render(mustPool(t, alphabet[:n])).Rows()
		require.NotEmpty(t, rows, "letters=%d", n)
		assert.NotEmpty(t, rows[0], "letters=%d", n)
		assert.NotEmpty(t, rows[len(rows)-1], "letters=%d", n)
	}
}

func TestSingleRow(t *testing.T) {
	testCases := []struct {
		letters     string
		expected    string
		description string
	}{
		{"q", "Q", "One letter"},
		{"aa", "A A", "Two letters"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			g := Render(mustPool(t, tc.letters))
			assert.Equal(t, tc.expected, g.String())
			assert.Equal(t, 0, g.Radius())
		})
	}

	g := RenderWith(mustPool(t, "ab"), Options{SingleRowMax: -1})
	assert.Greater(t, g.Radius(), 0)
	assert.Equal(t, 2, g.Cells())

	g = RenderWith(mustPool(t, "abcdef"), Options{SingleRowMax: 6})
	assert.Len(t, g.Rows(), 1)
	assert.Equal(t, 6, g.Cells())
}

func TestRenderEmpty(t *testing.T) {
	g := Render(mustPool(t, ""))
	assert.Equal(t, "", g.String())
	assert.Empty(t, g.Rows())
	assert.Equal(t, 0, g.Cells())
}

func TestRenderFound(t *testing.T) {
	spec, err := pattern.Compile("c_mp/__r")
	require.NoError(t, err)
	assert.Equal(t, "C _ M P   _ _ R", RenderFound(spec))

	assert.Equal(t, "_ _ _", RenderFound(pattern.Wildcards(3)))
}

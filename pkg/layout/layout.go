// Package layout draws the letters left in a jumble pool as a circle, the way
// they are printed in newspaper puzzles, so the solver can eyeball them.
package layout

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
)

// DefaultSingleRowMax is the largest letter count drawn on one row instead of a circle.
const DefaultSingleRowMax = 2

const filler = ' '

// Options tunes Render.
type Options struct {
	// SingleRowMax letters or fewer are drawn on one row. Negative means never.
	SingleRowMax int
}

// Grid is a rendered layout. The zero Grid is empty.
type Grid struct {
	rows   []string
	radius int
}

// Rows returns the grid rows with trailing blanks trimmed.
func (g Grid) Rows() []string {
	return append([]string(nil), g.rows...)
}

// Radius is the circle radius, zero for a single row.
func (g Grid) Radius() int {
	return g.radius
}

// Cells counts the letters drawn on the grid.
func (g Grid) Cells() int {
	n := 0
	for _, row := range g.rows {
		for i := 0; i < len(row); i++ {
			if row[i] != filler {
				n++
			}
		}
	}
	return n
}

func (g Grid) String() string {
	return strings.Join(g.rows, "\n")
}

// Render lays out p with the default options.
func Render(p pool.Pool) Grid {
	return RenderWith(p, Options{SingleRowMax: DefaultSingleRowMax})
}

// RenderWith lays out every letter of p exactly once. The letter order depends
// only on the contents of p, so equal pools always give equal grids.
func RenderWith(p pool.Pool, opts Options) Grid {
	letters := shuffled(p)
	if len(letters) == 0 {
		return Grid{}
	}
	if len(letters) <= opts.SingleRowMax {
		return singleRow(letters)
	}
	return circle(letters)
}

func shuffled(p pool.Pool) []byte {
	letters := []byte(strings.ToUpper(p.Letters()))

	h := fnv.New64a()
	h.Write(letters)
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return letters
}

func singleRow(letters []byte) Grid {
	cells := make([]string, len(letters))
	for i, c := range letters {
		cells[i] = string(c)
	}
	return Grid{rows: []string{strings.Join(cells, " ")}}
}

type point struct{ x, y int }

// circle pairs letters across the diameter. An odd count gets one blank so
// every letter has an opposite. Blank rows above and below the letters are
// dropped.
func circle(letters []byte) Grid {
	if len(letters)%2 == 1 {
		letters = append(letters, filler)
	}
	half := len(letters) / 2

	r := int(math.Ceil(math.Sqrt(float64(len(letters)) / math.Pi)))
	if r < 1 {
		r = 1
	}
	var pts []point
	for {
		if pts = placements(half, r); pts != nil {
			break
		}
		r++
	}

	width := 4*r + 1
	cells := make([][]byte, 2*r+1)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(string(filler), width))
	}
	for i, pt := range pts {
		cells[pt.y+r][2*pt.x+2*r] = letters[i]
	}

	rows := make([]string, len(cells))
	for i, row := range cells {
		rows[i] = strings.TrimRight(string(row), string(filler))
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return Grid{rows: rows, radius: r}
}

// placements returns 2*half points on a circle of radius r, each followed by
// its opposite, or nil when two of them land on the same cell.
func placements(half, r int) []point {
	seen := make(map[point]bool, 2*half)
	pts := make([]point, 0, 2*half)
	for i := 0; i < half; i++ {
		angle := float64(i) / float64(half) * math.Pi
		pt := point{
			x: int(math.Round(float64(r) * math.Cos(angle))),
			y: int(math.Round(float64(r) * math.Sin(angle))),
		}
		opp := point{-pt.x, -pt.y}
		if seen[pt] || seen[opp] || pt == opp {
			return nil
		}
		seen[pt], seen[opp] = true, true
		pts = append(pts, pt, opp)
	}
	return pts
}

// RenderFound draws the found-so-far strip: known letters uppercase, unknown
// slots as '_', slots separated by a space and groups by three.
func RenderFound(spec *pattern.Spec) string {
	groups := spec.Groups()
	parts := make([]string, len(groups))
	for gi, g := range groups {
		cells := make([]string, len(g))
		for i, slot := range g {
			if slot.IsWildcard() {
				cells[i] = string(pattern.Wildcard)
			} else {
				cells[i] = strings.ToUpper(string(slot.Letter))
			}
		}
		parts[gi] = strings.Join(cells, " ")
	}
	return strings.Join(parts, "   ")
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/lipgloss"
)

// gridIndent prefixes every printed grid and found strip row.
const gridIndent = "  "

// Printer writes solver results to a terminal. In narrow mode every entry
// gets its own line; otherwise entries share a line, phrases quoted.
type Printer struct {
	w         io.Writer
	narrow    bool
	highlight lipgloss.Style
	strip     lipgloss.Style
}

// NewPrinter styles output for w. Styles degrade to plain text when w is
// not a terminal.
func NewPrinter(w io.Writer, narrow bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:         w,
		narrow:    narrow,
		highlight: r.NewStyle().Bold(true),
		strip:     r.NewStyle().Foreground(lipgloss.Color("75")),
	}
}

// Entries prints plain results.
func (p *Printer) Entries(entries []string) {
	p.Hits(solver.Hits(entries))
}

// Hits prints results, highlighted ones in bold capitals.
func (p *Printer) Hits(hits []solver.Hit) {
	if len(hits) == 0 {
		return
	}
	var b strings.Builder
	for i, h := range hits {
		if i > 0 {
			b.WriteString(p.separator())
		}
		b.WriteString(p.format(h))
	}
	fmt.Fprintln(p.w, b.String())
}

func (p *Printer) format(h solver.Hit) string {
	word := h.Entry
	if h.Highlight {
		word = p.highlight.Render(strings.ToUpper(word))
	}
	if !p.narrow && strings.ContainsRune(h.Entry, ' ') {
		return "'" + word + "'"
	}
	return word
}

func (p *Printer) separator() string {
	if p.narrow {
		return "\n"
	}
	return " "
}

// Jumble prints the letter circle, the found strip below it and then the
// completing entries.
func (p *Printer) Jumble(res *solver.JumbleResult) {
	p.Grid(res)
	if len(res.Results) > 0 {
		fmt.Fprintln(p.w)
	}
	p.Entries(match.Entries(res.Results))
}

// Grid prints the letter circle and the found strip.
func (p *Printer) Grid(res *solver.JumbleResult) {
	for _, row := range res.Grid.Rows() {
		fmt.Fprintln(p.w, gridIndent+row)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, gridIndent+p.strip.Render(res.Found))
}

// Lines prints each line as is, one per row.
func (p *Printer) Lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(p.w, l)
	}
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 && n > -1000 {
		return str
	}
	neg := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}

/*
Package pattern compiles clue patterns into slot groups for the matcher.

A pattern is a run of known letters and wildcards, optionally split into groups
with '/' so that each group stands for one word of a multi-word answer:

	c_mp_t_r        one 8 letter word (or any phrase of 8 letters)
	b_a_______g/___e two words of 11 and 4 letters
	arch%           at least 4 letters starting with "arch"

Both '_' and '.' are wildcards. Parse also accepts the shorthand typed on the
command line, where digits stand for runs of wildcards and spaces separate
words ("3f3" is "___f___", "11 z4" is "___________/z____").
*/
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
)

const (
	Wildcard    = '_'
	AltWildcard = '.'
	Delimiter   = '/'
	OpenTail    = '%'
)

// MaxRun is the largest wildcard run a shorthand number may stand for.
const MaxRun = 64

// ErrInvalidPattern is returned for empty patterns, unknown characters and
// zero-length groups.
var ErrInvalidPattern = errors.New("invalid pattern")

// Slot is a single pattern position. A zero Letter is a wildcard.
type Slot struct {
	Letter byte
}

// Any is the wildcard slot.
var Any = Slot{}

// Known returns a slot pinned to the lowercase form of c.
func Known(c byte) Slot {
	return Slot{Letter: utils.LowerASCII(c)}
}

// IsWildcard reports whether the slot accepts any letter.
func (s Slot) IsWildcard() bool {
	return s.Letter == 0
}

// Spec is a compiled pattern. It is immutable after Compile.
type Spec struct {
	groups [][]Slot
	slots  []Slot
	lens   []int
	open   bool
}

// Compile parses a pattern made of letters, wildcards and group delimiters,
// with an optional trailing '%'. It does not expand digits; see Parse.
func Compile(raw string) (*Spec, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	body := raw
	open := false
	if body[len(body)-1] == OpenTail {
		open = true
		body = body[:len(body)-1]
	}
	if body == "" {
		return nil, fmt.Errorf("%w: %q has no slots", ErrInvalidPattern, raw)
	}

	parts := strings.Split(body, string(Delimiter))
	spec := &Spec{
		groups: make([][]Slot, 0, len(parts)),
		lens:   make([]int, 0, len(parts)),
		open:   open,
	}

	offset := 0
	for gi, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: group %d of %q is empty", ErrInvalidPattern, gi+1, raw)
		}
		group := make([]Slot, 0, len(part))
		for i := 0; i < len(part); i++ {
			c := part[i]
			switch {
			case utils.IsASCIILetter(c):
				group = append(group, Known(c))
			case c == Wildcard || c == AltWildcard:
				group = append(group, Any)
			case c == OpenTail:
				return nil, fmt.Errorf("%w: '%%' is only allowed at the end of %q", ErrInvalidPattern, raw)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at position %d of %q", ErrInvalidPattern, c, offset+i+1, raw)
			}
		}
		offset += len(part) + 1
		spec.groups = append(spec.groups, group)
		spec.slots = append(spec.slots, group...)
		spec.lens = append(spec.lens, len(group))
	}
	return spec, nil
}

// Parse expands command line shorthand and compiles the result.
func Parse(input string) (*Spec, error) {
	raw, err := Expand(input)
	if err != nil {
		return nil, err
	}
	return Compile(raw)
}

// Wildcards returns a single group of n wildcard slots.
func Wildcards(n int) *Spec {
	slots := make([]Slot, n)
	return &Spec{
		groups: [][]Slot{slots},
		slots:  slots,
		lens:   []int{n},
	}
}

// Expand rewrites command line shorthand into plain pattern syntax: runs of
// whitespace become a single '/', and each decimal number n becomes n
// wildcards. Letters are lowercased. A number above MaxRun is rejected
// before anything is written.
func Expand(input string) (string, error) {
	joined := strings.Join(strings.Fields(input), string(Delimiter))

	var b strings.Builder
	b.Grow(len(joined))
	num := 0
	flush := func() {
		for ; num > 0; num-- {
			b.WriteByte(Wildcard)
		}
	}
	for i := 0; i < len(joined); i++ {
		c := joined[i]
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			if num > MaxRun {
				return "", fmt.Errorf("%w: run of wildcards in %q is longer than %d", ErrInvalidPattern, input, MaxRun)
			}
			continue
		}
		flush()
		b.WriteByte(utils.LowerASCII(c))
	}
	flush()
	return b.String(), nil
}

// Groups returns a copy of the slot groups.
func (s *Spec) Groups() [][]Slot {
	out := make([][]Slot, len(s.groups))
	for i, g := range s.groups {
		out[i] = append([]Slot(nil), g...)
	}
	return out
}

// GroupLens returns the expected word lengths, one per group.
func (s *Spec) GroupLens() []int {
	return append([]int(nil), s.lens...)
}

// Slots returns the flattened slots across all groups.
func (s *Spec) Slots() []Slot {
	return append([]Slot(nil), s.slots...)
}

// Slot returns the i-th flattened slot.
func (s *Spec) Slot(i int) Slot {
	return s.slots[i]
}

// Len is the total slot count.
func (s *Spec) Len() int {
	return len(s.slots)
}

// NumGroups is the number of groups.
func (s *Spec) NumGroups() int {
	return len(s.groups)
}

// IsOpen reports whether the pattern ended with '%'.
func (s *Spec) IsOpen() bool {
	return s.open
}

// Known returns the letters of all known slots in order.
func (s *Spec) Known() string {
	var b strings.Builder
	for _, slot := range s.slots {
		if !slot.IsWildcard() {
			b.WriteByte(slot.Letter)
		}
	}
	return b.String()
}

// KnownPrefix returns the leading run of known letters of the flattened slots.
func (s *Spec) KnownPrefix() string {
	var b strings.Builder
	for _, slot := range s.slots {
		if slot.IsWildcard() {
			break
		}
		b.WriteByte(slot.Letter)
	}
	return b.String()
}

// String renders s back in canonical pattern syntax.
func (s *Spec) String() string {
	var b strings.Builder
	for gi, g := range s.groups {
		if gi > 0 {
			b.WriteByte(Delimiter)
		}
		for _, slot := range g {
			if slot.IsWildcard() {
				b.WriteByte(Wildcard)
			} else {
				b.WriteByte(slot.Letter)
			}
		}
	}
	if s.open {
		b.WriteByte(OpenTail)
	}
	return b.String()
}

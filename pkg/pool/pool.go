// Package pool implements the letter multiset used by jumble and anagram modes.
//
// A Pool is a value type: every operation that removes letters returns a new
// Pool and leaves the receiver untouched, so one pool can be tried against many
// candidates without any copying ceremony.
package pool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/pattern"
)

var (
	// ErrInvalidAlphabet is returned when a source holds anything but ASCII letters and spaces.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrLetterExhausted is returned when removing a letter whose count is already zero.
	ErrLetterExhausted = errors.New("letter exhausted")
)

// Pool counts the letters a-z.
type Pool struct {
	counts [26]int
	total  int
}

// Build counts every ASCII letter of source, ignoring spaces and case.
func Build(source string) (Pool, error) {
	var p Pool
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == ' ' {
			continue
		}
		if !utils.IsASCIILetter(c) {
			return Pool{}, fmt.Errorf("%w: %q at position %d of %q", ErrInvalidAlphabet, c, i+1, source)
		}
		p.counts[utils.LowerASCII(c)-'a']++
		p.total++
	}
	return p, nil
}

// Subtract removes one occurrence of letter.
func (p Pool) Subtract(letter byte) (Pool, error) {
	if !utils.IsASCIILetter(letter) {
		return p, fmt.Errorf("%w: %q is not a letter", ErrInvalidAlphabet, letter)
	}
	i := utils.LowerASCII(letter) - 'a'
	if p.counts[i] == 0 {
		return p, fmt.Errorf("%w: no %q left", ErrLetterExhausted, 'a'+i)
	}
	p.counts[i]--
	p.total--
	return p, nil
}

// Minus removes every letter of other, failing on the first letter p runs out of.
func (p Pool) Minus(other Pool) (Pool, error) {
	for i, n := range other.counts {
		if p.counts[i] < n {
			return p, fmt.Errorf("%w: need %d %q, have %d", ErrLetterExhausted, n, byte('a'+i), p.counts[i])
		}
	}
	for i, n := range other.counts {
		p.counts[i] -= n
	}
	p.total -= other.total
	return p, nil
}

// Residual removes the letters of every known slot of spec. This is how the
// "found so far" letters of a jumble are taken out of the source letters.
func (p Pool) Residual(spec *pattern.Spec) (Pool, error) {
	known := spec.Known()
	for i := 0; i < len(known); i++ {
		next, err := p.Subtract(known[i])
		if err != nil {
			return p, fmt.Errorf("found letter %q is not in the source letters: %w", known[i], err)
		}
		p = next
	}
	return p, nil
}

// Contains reports whether other is a sub-multiset of p.
func (p Pool) Contains(other Pool) bool {
	for i, n := range other.counts {
		if p.counts[i] < n {
			return false
		}
	}
	return true
}

// Count returns how many of letter are left.
func (p Pool) Count(letter byte) int {
	if !utils.IsASCIILetter(letter) {
		return 0
	}
	return p.counts[utils.LowerASCII(letter)-'a']
}

// Has reports whether at least one of letter is left.
func (p Pool) Has(letter byte) bool {
	return p.Count(letter) > 0
}

// Total is the number of letters in the pool.
func (p Pool) Total() int {
	return p.total
}

// IsEmpty reports whether every count is zero.
func (p Pool) IsEmpty() bool {
	return p.total == 0
}

// Distinct is the number of different letters present.
func (p Pool) Distinct() int {
	n := 0
	for _, c := range p.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// Letters expands the pool into a sorted lowercase string, e.g. "eilnst".
func (p Pool) Letters() string {
	var b strings.Builder
	b.Grow(p.total)
	for i, n := range p.counts {
		for ; n > 0; n-- {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

func (p Pool) String() string {
	return p.Letters()
}

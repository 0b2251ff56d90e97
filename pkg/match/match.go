// Package match tests dictionary entries against compiled patterns and,
// in jumble and anagram modes, against a letter pool.
package match

import (
	"errors"
	"fmt"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
)

// Mode selects how an entry's free letters must relate to the pool.
type Mode int

const (
	// ModeNone skips the anagram check. It is invalid together with a pool.
	ModeNone Mode = iota
	// ModeExact requires the free letters to use up the pool exactly.
	ModeExact
	// ModeSubset only requires the free letters to be available in the pool.
	ModeSubset
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeSubset:
		return "subset"
	default:
		return "none"
	}
}

// ErrModeRequired is returned when a pool is supplied without choosing between
// exact and subset matching.
var ErrModeRequired = errors.New("anagram pool needs an explicit match mode")

// Options carries the optional anagram constraint.
// Pool holds only the letters available to wildcard slots; letters pinned by
// known slots must already be taken out (see pool.Residual).
type Options struct {
	Pool *pool.Pool
	Mode Mode
}

// Validate rejects a pool without a mode and a mode without a pool.
func (o Options) Validate() error {
	if o.Pool != nil && o.Mode == ModeNone {
		return ErrModeRequired
	}
	if o.Pool == nil && o.Mode != ModeNone {
		return fmt.Errorf("match mode %s set without a pool", o.Mode)
	}
	return nil
}

// ModeFor picks exact matching when the pattern has as many slots as the source
// pool has letters and subset matching when the pattern is longer.
// Callers still pass the returned mode explicitly in Options.
func ModeFor(spec *pattern.Spec, source pool.Pool) Mode {
	if spec.Len() > source.Total() {
		return ModeSubset
	}
	return ModeExact
}

// Result is an accepted entry together with the slot assignment it satisfied.
type Result struct {
	Entry string
	// Index is the entry's position in the scanned list.
	Index int
	// Letters is the entry flattened to lowercase letters.
	Letters string
	// Words holds the length of each word of the entry.
	Words []int
	// Pinned[i] is true when Letters[i] was fixed by a known slot.
	Pinned []bool
	// Drawn is the multiset of letters taken from the pool, if any.
	Drawn pool.Pool
}

// Normalize flattens entry into lowercase letters and its word lengths.
// ok is false when entry holds anything but ASCII letters and spaces.
func Normalize(entry string) (letters string, words []int, ok bool) {
	buf := make([]byte, 0, len(entry))
	run := 0
	for i := 0; i < len(entry); i++ {
		c := entry[i]
		if c == ' ' {
			if run > 0 {
				words = append(words, run)
				run = 0
			}
			continue
		}
		if !utils.IsASCIILetter(c) {
			return "", nil, false
		}
		buf = append(buf, utils.LowerASCII(c))
		run++
	}
	if run > 0 {
		words = append(words, run)
	}
	return string(buf), words, len(buf) > 0
}

// Match reports whether entry satisfies spec and the optional pool constraint.
// It has no side effects; the pool in opts is never modified.
func Match(entry string, spec *pattern.Spec, opts Options) (Result, bool) {
	if opts.Validate() != nil {
		return Result{}, false
	}
	letters, words, ok := Normalize(entry)
	if !ok {
		return Result{}, false
	}
	if !fitsShape(len(letters), words, spec) {
		return Result{}, false
	}

	pinned := make([]bool, len(letters))
	for i := 0; i < spec.Len(); i++ {
		slot := spec.Slot(i)
		if slot.IsWildcard() {
			continue
		}
		if letters[i] != slot.Letter {
			return Result{}, false
		}
		pinned[i] = true
	}

	res := Result{
		Entry:   entry,
		Letters: letters,
		Words:   words,
		Pinned:  pinned,
	}
	if opts.Pool == nil {
		return res, true
	}

	work := *opts.Pool
	for i := 0; i < len(letters); i++ {
		if pinned[i] {
			continue
		}
		next, err := work.Subtract(letters[i])
		if err != nil {
			return Result{}, false
		}
		work = next
	}
	if opts.Mode == ModeExact && !work.IsEmpty() {
		return Result{}, false
	}
	drawn, err := opts.Pool.Minus(work)
	if err != nil {
		return Result{}, false
	}
	res.Drawn = drawn
	return res, true
}

// fitsShape applies the length and group rules. A multi-group pattern must line
// up with the entry's words; a single group only needs the letter count.
// Open patterns relax the final group to "at least".
func fitsShape(total int, words []int, spec *pattern.Spec) bool {
	lens := spec.GroupLens()
	if len(lens) == 1 {
		if spec.IsOpen() {
			return total >= spec.Len()
		}
		return total == spec.Len()
	}

	if !spec.IsOpen() {
		if len(words) != len(lens) {
			return false
		}
		for i, n := range lens {
			if words[i] != n {
				return false
			}
		}
		return true
	}

	last := len(lens) - 1
	if len(words) < len(lens) {
		return false
	}
	rest := total
	for i := 0; i < last; i++ {
		if words[i] != lens[i] {
			return false
		}
		rest -= words[i]
	}
	return rest >= lens[last]
}

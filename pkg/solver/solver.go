// Package solver runs the puzzle modes on top of the pattern compiler, the
// matcher and the dictionary indexes. Queries are validated and compiled when
// built, so a scan never starts with a bad pattern or letter set.
package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/bastiangx/wordsolve/pkg/definitions"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/layout"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/pattern"
	"github.com/bastiangx/wordsolve/pkg/pool"
	"github.com/bastiangx/wordsolve/pkg/thesaurus"
	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidQuery is returned for inputs a mode cannot work with, such as
	// a Wordle pattern that is not five letters.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrNoThesaurus is returned when a thesaurus target is given but no
	// thesaurus was loaded.
	ErrNoThesaurus = errors.New("no thesaurus loaded")
)

// Settings tunes the solver.
type Settings struct {
	// Workers is the number of goroutines used for full dictionary scans.
	// Zero uses one per CPU, one forces a sequential scan.
	Workers int
	// SingleRowMax is passed to the jumble layout.
	SingleRowMax int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Workers:      runtime.NumCPU(),
		SingleRowMax: layout.DefaultSingleRowMax,
	}
}

// Solver answers puzzle queries against one dictionary. The thesaurus and
// definitions are optional. A Solver is safe for concurrent use.
type Solver struct {
	dict     *dictionary.Dictionary
	thes     *thesaurus.Thesaurus
	defs     *definitions.Definitions
	settings Settings
}

// New creates a solver. thes and defs may be nil.
func New(dict *dictionary.Dictionary, thes *thesaurus.Thesaurus, defs *definitions.Definitions, settings Settings) *Solver {
	if settings.Workers <= 0 {
		settings.Workers = runtime.NumCPU()
	}
	return &Solver{
		dict:     dict,
		thes:     thes,
		defs:     defs,
		settings: settings,
	}
}

// Dictionary returns the dictionary the solver searches.
func (s *Solver) Dictionary() *dictionary.Dictionary {
	return s.dict
}

// scan matches every candidate entry. When the pattern starts with known
// letters only the entries under that prefix are tried; otherwise the whole
// list is scanned in parallel. Either way results come back in list order.
func (s *Solver) scan(ctx context.Context, spec *pattern.Spec, opts match.Options) ([]match.Result, error) {
	entries := s.dict.Entries()
	if prefix := spec.KnownPrefix(); prefix != "" {
		at := s.dict.WithPrefix(prefix)
		log.Debugf("Prefix %q narrows the scan to %d of %d entries", prefix, len(at), len(entries))
		return match.ScanAt(entries, at, spec, opts)
	}
	return match.ScanParallel(ctx, entries, spec, opts, s.settings.Workers)
}

func (s *Solver) checkTarget(target string) error {
	if target == "" {
		return nil
	}
	if s.thes == nil {
		return ErrNoThesaurus
	}
	if !s.thes.Has(target) {
		return fmt.Errorf("%w: %q", thesaurus.ErrUnknownTerm, target)
	}
	return nil
}

// LookupQuery is a compiled pattern lookup.
type LookupQuery struct {
	Spec *pattern.Spec
	// Letters, when set, limits the wildcard slots to these letters.
	Letters *pool.Pool
	// Target narrows the results to thesaurus entries of this word.
	Target string
}

// NewLookupQuery expands and compiles raw. letters is optional; when given,
// wildcard slots may only draw from it, each letter at most as often as it
// appears.
func NewLookupQuery(raw, letters, target string) (*LookupQuery, error) {
	spec, err := pattern.Parse(raw)
	if err != nil {
		return nil, err
	}
	q := &LookupQuery{Spec: spec, Target: strings.TrimSpace(target)}
	if letters != "" {
		p, err := pool.Build(letters)
		if err != nil {
			return nil, err
		}
		q.Letters = &p
	}
	return q, nil
}

func (q *LookupQuery) options() match.Options {
	if q.Letters == nil {
		return match.Options{}
	}
	return match.Options{Pool: q.Letters, Mode: match.ModeSubset}
}

// Lookup returns the entries matching q in dictionary order.
func (s *Solver) Lookup(ctx context.Context, q *LookupQuery) ([]match.Result, error) {
	if err := s.checkTarget(q.Target); err != nil {
		return nil, err
	}
	results, err := s.scan(ctx, q.Spec, q.options())
	if err != nil {
		return nil, err
	}
	if q.Target == "" {
		return results, nil
	}
	return s.thes.Filter(results, q.Target)
}

// JumbleQuery is a compiled jumble: the source letters, the found-so-far
// pattern and the letters still free.
type JumbleQuery struct {
	Source   pool.Pool
	Found    *pattern.Spec
	Residual pool.Pool
	Mode     match.Mode

	// search replaces Found in the scan when it is set.
	search *pattern.Spec
}

// NewJumbleQuery checks the found pattern against the source letters.
//
// With no found pattern every letter is a wildcard; in subset mode answers
// of any length drawn from the letters match. A found pattern shorter
// than the letters is padded with wildcards on its last word unless subset is
// set, in which case the answer may leave letters over. When the found
// pattern has more slots than there are letters, its known letters are taken
// to come from outside the source and the free slots only need to be
// available in it.
func NewJumbleQuery(letters, found string, subset bool) (*JumbleQuery, error) {
	source, err := pool.Build(letters)
	if err != nil {
		return nil, err
	}
	if source.IsEmpty() {
		return nil, fmt.Errorf("%w: no letters to jumble", pool.ErrInvalidAlphabet)
	}

	spec := pattern.Wildcards(source.Total())
	if strings.TrimSpace(found) == "" && subset {
		anyLength, err := pattern.Compile(string(pattern.Wildcard) + string(pattern.OpenTail))
		if err != nil {
			return nil, err
		}
		return &JumbleQuery{
			Source:   source,
			Found:    spec,
			Residual: source,
			Mode:     match.ModeSubset,
			search:   anyLength,
		}, nil
	}
	if strings.TrimSpace(found) != "" {
		if spec, err = pattern.Parse(found); err != nil {
			return nil, err
		}
		if spec.IsOpen() {
			return nil, fmt.Errorf("%w: found letters cannot end with '%%'", pattern.ErrInvalidPattern)
		}
	}

	q := &JumbleQuery{Source: source, Found: spec}
	if match.ModeFor(spec, source) == match.ModeSubset {
		q.Residual = source
		q.Mode = match.ModeSubset
		return q, nil
	}

	if spec.Len() < source.Total() && !subset {
		padded := spec.String() + strings.Repeat(string(pattern.Wildcard), source.Total()-spec.Len())
		if q.Found, err = pattern.Compile(padded); err != nil {
			return nil, err
		}
	}
	if q.Residual, err = source.Residual(q.Found); err != nil {
		return nil, err
	}
	q.Mode = match.ModeExact
	if subset {
		q.Mode = match.ModeSubset
	}
	return q, nil
}

// JumbleResult is the circle of free letters, the found strip printed under
// it, and the entries that complete the jumble.
type JumbleResult struct {
	Grid     layout.Grid
	Found    string
	Residual pool.Pool
	Results  []match.Result
}

// Jumble lays out the free letters and finds the entries that use them.
func (s *Solver) Jumble(ctx context.Context, q *JumbleQuery) (*JumbleResult, error) {
	spec := q.Found
	if q.search != nil {
		spec = q.search
	}
	residual := q.Residual
	results, err := s.scan(ctx, spec, match.Options{Pool: &residual, Mode: q.Mode})
	if err != nil {
		return nil, err
	}
	return &JumbleResult{
		Grid:     layout.RenderWith(q.Residual, layout.Options{SingleRowMax: s.settings.SingleRowMax}),
		Found:    layout.RenderFound(q.Found),
		Residual: q.Residual,
		Results:  results,
	}, nil
}

// Anagram returns the entries that use exactly the given letters, spaces
// ignored, in dictionary order.
func (s *Solver) Anagram(letters string) ([]string, error) {
	p, err := pool.Build(letters)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, fmt.Errorf("%w: no letters to anagram", pool.ErrInvalidAlphabet)
	}
	return s.dict.Anagrams(p.Letters()), nil
}

// Synonyms lists the thesaurus entries of target.
func (s *Solver) Synonyms(target string) ([]string, error) {
	if err := s.checkTarget(target); err != nil {
		return nil, err
	}
	return s.thes.Lookup(target)
}

// Define returns the definitions of word.
func (s *Solver) Define(word string) ([]string, error) {
	if s.defs == nil {
		return nil, fmt.Errorf("%w for %q: no definitions loaded", definitions.ErrNoDefinition, word)
	}
	return s.defs.Lookup(word)
}

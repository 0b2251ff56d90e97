// Package thesaurus holds the related-word table used to narrow lookups to
// synonyms of a target word.
package thesaurus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrUnknownTerm is returned when the target word has no thesaurus line.
var ErrUnknownTerm = errors.New("unknown thesaurus term")

type related struct {
	words []string
	set   map[string]struct{}
}

// Thesaurus maps a head word to the entries related to it. Heads and related
// entries are stored lowercased with single spaces between words.
type Thesaurus struct {
	trie  *patricia.Trie
	heads int
}

func New() *Thesaurus {
	return &Thesaurus{trie: patricia.NewTrie()}
}

// Add appends words to the related set of head. Repeated heads are merged and
// duplicates dropped, keeping first-seen order.
func (t *Thesaurus) Add(head string, words ...string) {
	key := utils.NormalizeEntry(head)
	if key == "" {
		return
	}

	var rel *related
	if item := t.trie.Get(patricia.Prefix(key)); item != nil {
		rel = item.(*related)
	} else {
		rel = &related{set: make(map[string]struct{})}
		t.trie.Insert(patricia.Prefix(key), rel)
		t.heads++
	}

	for _, w := range words {
		w = utils.NormalizeEntry(w)
		if w == "" || w == key {
			continue
		}
		if _, ok := rel.set[w]; ok {
			continue
		}
		rel.set[w] = struct{}{}
		rel.words = append(rel.words, w)
	}
}

// Load reads a thesaurus file, one "head,word,word,..." line per head.
func Load(path string) (*Thesaurus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open thesaurus %s: %w", path, err)
	}
	defer file.Close()

	t := New()
	if err := t.Read(file); err != nil {
		return nil, fmt.Errorf("failed to read thesaurus %s: %w", path, err)
	}
	log.Debugf("Loaded thesaurus %s: %d head words", path, t.Len())
	return t, nil
}

// Read adds every line of r. Lines without a comma are skipped.
func (t *Thesaurus) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			log.Debugf("Skipping thesaurus line %d: no related words", lineNum)
			continue
		}
		t.Add(fields[0], fields[1:]...)
	}
	return scanner.Err()
}

// Len is the number of head words.
func (t *Thesaurus) Len() int {
	return t.heads
}

func (t *Thesaurus) get(target string) (*related, error) {
	key := utils.NormalizeEntry(target)
	item := t.trie.Get(patricia.Prefix(key))
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerm, target)
	}
	return item.(*related), nil
}

// Has reports whether target is a head word.
func (t *Thesaurus) Has(target string) bool {
	_, err := t.get(target)
	return err == nil
}

// Lookup returns the related entries of target in file order.
func (t *Thesaurus) Lookup(target string) ([]string, error) {
	rel, err := t.get(target)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), rel.words...), nil
}

// Related reports whether entry belongs to the related set of target. The
// comparison is on the whole entry and ignores case.
func (t *Thesaurus) Related(entry, target string) (bool, error) {
	rel, err := t.get(target)
	if err != nil {
		return false, err
	}
	_, ok := rel.set[utils.NormalizeEntry(entry)]
	return ok, nil
}

// Filter keeps the results whose entry is related to target, in order.
func (t *Thesaurus) Filter(results []match.Result, target string) ([]match.Result, error) {
	rel, err := t.get(target)
	if err != nil {
		return nil, err
	}
	kept := results[:0:0]
	for _, r := range results {
		if _, ok := rel.set[utils.NormalizeEntry(r.Entry)]; ok {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

// FilterEntries is Filter for plain entries.
func (t *Thesaurus) FilterEntries(entries []string, target string) ([]string, error) {
	rel, err := t.get(target)
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, e := range entries {
		if _, ok := rel.set[utils.NormalizeEntry(e)]; ok {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

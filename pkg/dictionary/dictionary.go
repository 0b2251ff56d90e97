// Package dictionary loads the word and phrase lists and indexes them for
// anagram and prefix queries.
package dictionary

import (
	"sort"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is an ordered, de-duplicated list of lowercase entries. It is
// read-only once built and safe for concurrent use.
type Dictionary struct {
	entries []string
	// sorted letters -> entry indices, ascending
	signatures *patricia.Trie
	// letters without spaces -> entry indices, ascending
	prefixes *patricia.Trie
}

// New normalizes entries, drops invalid ones and duplicates, and builds the
// indexes. Order of first appearance is kept.
func New(entries []string) *Dictionary {
	d := &Dictionary{
		entries:    make([]string, 0, len(entries)),
		signatures: patricia.NewTrie(),
		prefixes:   patricia.NewTrie(),
	}

	filter := utils.NewEntryFilter()
	for _, raw := range entries {
		entry := utils.NormalizeEntry(raw)
		if !utils.IsEntry(entry) {
			log.Debugf("Skipping invalid entry %q", raw)
			continue
		}
		if !filter.ShouldInclude(entry) {
			continue
		}
		d.add(entry)
	}
	return d
}

func (d *Dictionary) add(entry string) {
	i := len(d.entries)
	d.entries = append(d.entries, entry)
	appendIndex(d.signatures, utils.Signature(entry), i)
	appendIndex(d.prefixes, utils.StripSpaces(entry), i)
}

func appendIndex(trie *patricia.Trie, key string, i int) {
	k := patricia.Prefix(key)
	if item := trie.Get(k); item != nil {
		trie.Set(k, append(item.([]int), i))
		return
	}
	trie.Insert(k, []int{i})
}

// Entries returns the entry list. Callers must not modify it.
func (d *Dictionary) Entries() []string {
	return d.entries
}

// Len is the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entry returns the i-th entry.
func (d *Dictionary) Entry(i int) string {
	return d.entries[i]
}

// Contains reports whether entry is in the dictionary, ignoring case and
// extra whitespace.
func (d *Dictionary) Contains(entry string) bool {
	entry = utils.NormalizeEntry(entry)
	item := d.prefixes.Get(patricia.Prefix(utils.StripSpaces(entry)))
	if item == nil {
		return false
	}
	for _, i := range item.([]int) {
		if d.entries[i] == entry {
			return true
		}
	}
	return false
}

// Anagrams returns every entry using exactly the letters of letters, spaces
// ignored, in dictionary order.
func (d *Dictionary) Anagrams(letters string) []string {
	item := d.signatures.Get(patricia.Prefix(utils.Signature(letters)))
	if item == nil {
		return nil
	}
	idx := item.([]int)
	out := make([]string, len(idx))
	for n, i := range idx {
		out[n] = d.entries[i]
	}
	return out
}

// WithPrefix returns the sorted indices of entries whose letters, spaces
// removed, start with prefix.
func (d *Dictionary) WithPrefix(prefix string) []int {
	var out []int
	err := d.prefixes.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		out = append(out, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting prefix index: %v", err)
		return nil
	}
	sort.Ints(out)
	return out
}

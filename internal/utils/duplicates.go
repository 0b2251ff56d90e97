package utils

// EntryFilter drops repeated dictionary entries while loading several lists.
// Entries are compared after NormalizeEntry.
type EntryFilter struct {
	seen map[string]bool
}

// NewEntryFilter creates a filter that already rejects the given entries.
func NewEntryFilter(exclude ...string) *EntryFilter {
	seen := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		seen[NormalizeEntry(e)] = true
	}
	return &EntryFilter{seen: seen}
}

// ShouldInclude reports whether entry is new and records it.
func (f *EntryFilter) ShouldInclude(entry string) bool {
	key := NormalizeEntry(entry)
	if f.seen[key] {
		return false
	}
	f.seen[key] = true
	return true
}

// Len is the number of distinct entries seen so far.
func (f *EntryFilter) Len() int {
	return len(f.seen)
}

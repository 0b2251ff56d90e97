package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
)

const (
	// MinLevel is the everyday word list, MaxLevel the one with every oddity.
	MinLevel = 1
	MaxLevel = 3

	PhrasesFile     = "phrases.txt"
	ThesaurusFile   = "thesaurus.txt"
	DefinitionsFile = "definitions.txt"
)

// ErrInvalidLevel is returned for obscurity levels outside MinLevel..MaxLevel.
var ErrInvalidLevel = errors.New("invalid word obscurity level")

// WordsFile names the word list of an obscurity level.
func WordsFile(level int) string {
	return fmt.Sprintf("words_%d.txt", level)
}

// ListInfo describes a word list found in the data directory.
type ListInfo struct {
	Level    int
	Filename string
	Size     int64
}

// LoaderStats reports what the last Load read.
type LoaderStats struct {
	Files      []string
	Entries    int
	Skipped    int
	Duplicates int
}

// Loader reads one obscurity level plus, optionally, the phrase list.
type Loader struct {
	dirPath string
	level   int
	phrases bool
	stats   LoaderStats
	log     *log.Logger
}

// NewLoader creates a loader for dirPath. Level is validated by Load.
func NewLoader(dirPath string, level int, phrases bool) *Loader {
	return &Loader{
		dirPath: dirPath,
		level:   level,
		phrases: phrases,
		log:     logger.New("dict"),
	}
}

// GetAvailable scans the directory for words_N.txt lists, sorted by level.
func (l *Loader) GetAvailable() ([]ListInfo, error) {
	files, err := filepath.Glob(filepath.Join(l.dirPath, "words_*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for word lists: %w", err)
	}

	var lists []ListInfo
	for _, file := range files {
		idStr := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(file), "words_"), ".txt")
		level, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		info, err := os.Stat(file)
		if err != nil {
			l.log.Warnf("Failed to stat word list %s: %v", file, err)
			continue
		}
		lists = append(lists, ListInfo{Level: level, Filename: file, Size: info.Size()})
	}

	sort.Slice(lists, func(i, j int) bool {
		return lists[i].Level < lists[j].Level
	})
	return lists, nil
}

// Load reads the word list of the configured level, then the phrase list
// when enabled, and builds the dictionary. A missing phrase list is only a
// warning; a missing word list is an error.
func (l *Loader) Load() (*Dictionary, error) {
	if l.level < MinLevel || l.level > MaxLevel {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidLevel, l.level, MinLevel, MaxLevel)
	}
	l.stats = LoaderStats{}

	filter := utils.NewEntryFilter()
	var entries []string

	wordsPath := filepath.Join(l.dirPath, WordsFile(l.level))
	words, err := l.readFile(wordsPath, filter)
	if err != nil {
		return nil, err
	}
	entries = append(entries, words...)

	if l.phrases {
		phrasesPath := filepath.Join(l.dirPath, PhrasesFile)
		phrases, err := l.readFile(phrasesPath, filter)
		switch {
		case errors.Is(err, os.ErrNotExist):
			l.log.Warnf("No phrase list at %s, continuing with single words", phrasesPath)
		case err != nil:
			return nil, err
		default:
			entries = append(entries, phrases...)
		}
	}

	d := New(entries)
	l.stats.Entries = d.Len()
	l.log.Debugf("Dictionary loaded: %d entries from %v (%d skipped, %d duplicates)",
		l.stats.Entries, l.stats.Files, l.stats.Skipped, l.stats.Duplicates)
	return d, nil
}

func (l *Loader) readFile(path string, filter *utils.EntryFilter) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	entries, stats, err := ReadEntries(file, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	l.stats.Files = append(l.stats.Files, filepath.Base(path))
	l.stats.Skipped += stats.Skipped
	l.stats.Duplicates += stats.Duplicates
	return entries, nil
}

// Stats returns the counts of the last Load.
func (l *Loader) Stats() LoaderStats {
	return l.stats
}

// ReadEntries reads one entry per line, normalized. Blank lines and lines
// starting with '#' are ignored; lines that are not letters and single spaces
// are skipped and counted. filter may be nil.
func ReadEntries(r io.Reader, filter *utils.EntryFilter) ([]string, LoaderStats, error) {
	var stats LoaderStats
	var entries []string

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry := utils.NormalizeEntry(line)
		if !utils.IsEntry(entry) {
			log.Debugf("Skipping line %d: %q is not a word or phrase", lineNum, line)
			stats.Skipped++
			continue
		}
		if filter != nil && !filter.ShouldInclude(entry) {
			stats.Duplicates++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}
	stats.Entries = len(entries)
	return entries, stats, nil
}

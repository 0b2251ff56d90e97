// Package definitions looks up dictionary definitions for the -d flag. Two
// sources are understood: the plain "word|definition|definition" text file
// and the wordset JSON dump.
package definitions

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// ErrNoDefinition is returned when a word has no definition in any source.
var ErrNoDefinition = errors.New("no definition found")

// Definitions maps a normalized word to its definitions in load order.
type Definitions struct {
	defs map[string][]string
}

func New() *Definitions {
	return &Definitions{defs: make(map[string][]string)}
}

// Add records a definition for word. Empty and repeated definitions are ignored.
func (d *Definitions) Add(word, def string) {
	key := utils.NormalizeEntry(word)
	def = capitalize(strings.TrimSpace(def))
	if key == "" || def == "" {
		return
	}
	for _, existing := range d.defs[key] {
		if existing == def {
			return
		}
	}
	d.defs[key] = append(d.defs[key], def)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Lookup returns every definition of word.
func (d *Definitions) Lookup(word string) ([]string, error) {
	defs, ok := d.defs[utils.NormalizeEntry(word)]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoDefinition, word)
	}
	return append([]string(nil), defs...), nil
}

// Len is the number of defined words.
func (d *Definitions) Len() int {
	return len(d.defs)
}

// Merge adds every definition of other.
func (d *Definitions) Merge(other *Definitions) {
	for word, defs := range other.defs {
		for _, def := range defs {
			d.Add(word, def)
		}
	}
}

// ReadText reads "word|definition|..." lines.
func (d *Definitions) ReadText(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		for _, def := range parts[1:] {
			d.Add(parts[0], def)
		}
	}
	return scanner.Err()
}

// ReadWordset reads a wordset dump: an object keyed by word whose values
// carry "word" and a "meanings" array of objects with a "def" field.
func (d *Definitions) ReadWordset(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid wordset JSON")
	}
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		word := value.Get("word").String()
		if word == "" {
			word = key.String()
		}
		for _, def := range value.Get("meanings.#.def").Array() {
			d.Add(word, def.String())
		}
		return true
	})
	return nil
}

// Load reads each file into one set of definitions, picking the reader from
// the detected format.
func Load(paths ...string) (*Definitions, error) {
	d := New()
	for _, path := range paths {
		part, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		d.Merge(part)
		log.Debugf("Loaded %d definitions from %s, %d words in total", part.Len(), path, d.Len())
	}
	return d, nil
}

func loadFile(path string) (*Definitions, error) {
	format, err := dictionary.DetectFileFormat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect definitions format: %w", err)
	}
	d := New()

	switch format {
	case dictionary.FormatWordset:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read wordset %s: %w", path, err)
		}
		if err := d.ReadWordset(data); err != nil {
			return nil, fmt.Errorf("failed to parse wordset %s: %w", path, err)
		}
	case dictionary.FormatDefinitions:
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open definitions %s: %w", path, err)
		}
		defer file.Close()
		if err := d.ReadText(file); err != nil {
			return nil, fmt.Errorf("failed to read definitions %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s is a %s file, not definitions", path, format)
	}
	return d, nil
}

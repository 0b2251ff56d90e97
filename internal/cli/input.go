// Package cli handles terminal output and the interactive letter removal mode.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
)

// quitCommand ends a remove session.
const quitCommand = "."

// RemoveHandler crosses letters out of a word as they are typed, so a
// solver can track which letters of an anagram are still unused.
// A blank line brings the word back.
type RemoveHandler struct {
	in       io.Reader
	out      io.Writer
	original string
	current  string
}

// NewRemoveHandler starts a session on word. Spaces are dropped and letters
// shown in capitals.
func NewRemoveHandler(word string, in io.Reader, out io.Writer) *RemoveHandler {
	w := strings.ToUpper(utils.StripSpaces(word))
	return &RemoveHandler{
		in:       in,
		out:      out,
		original: w,
		current:  w,
	}
}

// Current returns the letters not yet crossed out.
func (h *RemoveHandler) Current() string {
	return h.current
}

// Start runs the loop until every letter is gone, "." is entered or
// input ends.
func (h *RemoveHandler) Start() error {
	fmt.Fprintln(h.out, "Type letters to remove them, Enter on a blank line to reset, '.' to exit")
	reader := bufio.NewReader(h.in)

	for h.current != "" {
		fmt.Fprintf(h.out, "%s > ", h.current)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		done := err == io.EOF
		line = strings.TrimSpace(line)

		switch {
		case line == quitCommand:
			fmt.Fprintln(h.out)
			return nil
		case line == "" && done:
			fmt.Fprintln(h.out)
			return nil
		case line == "":
			h.current = h.original
		default:
			h.handleInput(line)
		}
		if done {
			break
		}
	}
	fmt.Fprintln(h.out)
	return nil
}

// handleInput removes the first occurrence of every letter of line.
// Letters that are not left are reported and skipped.
func (h *RemoveHandler) handleInput(line string) {
	for _, r := range strings.ToUpper(utils.StripSpaces(line)) {
		pos := strings.IndexRune(h.current, r)
		if pos < 0 {
			log.Warnf("Letter '%c' is not left in %s", r, h.current)
			continue
		}
		h.current = h.current[:pos] + h.current[pos+1:]
	}
}

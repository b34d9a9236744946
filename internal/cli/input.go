// Package cli implements a debug/test shell over a Spellchecker: read a
// line from stdin, check it, print the result.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lexigraph/spellkit/internal/utils"
	"github.com/lexigraph/spellkit/pkg/spellchecker"
)

// InputHandler reads lines from stdin and checks each one against a
// Spellchecker, printing misspellings and their suggestions.
type InputHandler struct {
	checker      *spellchecker.Spellchecker
	requestCount int
}

// NewInputHandler builds an InputHandler around an already-loaded
// Spellchecker.
func NewInputHandler(checker *spellchecker.Spellchecker) *InputHandler {
	return &InputHandler{checker: checker}
}

// Start begins the interface loop: prompt, read a line, check it, print
// the result. Loop terminates if an error occurs while reading stdin.
func (h *InputHandler) Start() error {
	log.Print("spellkit CLI [debug]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a line and press Enter to check it (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		h.handleLine(line)
	}
}

// handleLine checks a single line and prints a summary of any
// misspellings found.
func (h *InputHandler) handleLine(line string) {
	h.requestCount++
	result := h.checker.Check(line)

	if result.Success {
		log.Printf("OK: %s word(s), no errors", utils.FormatWithCommas(result.WordCount))
		return
	}

	log.Printf("%d/%s word(s) misspelled:", len(result.Errors), utils.FormatWithCommas(result.WordCount))
	for _, e := range result.Errors {
		word := fmt.Sprintf("\033[38;5;203m%s\033[0m", e.Word)
		if len(e.Suggestions) == 0 {
			log.Printf("  %-20s (pos %3d) no suggestions", word, e.Position)
			continue
		}
		log.Printf("  %-20s (pos %3d) try: %s", word, e.Position, strings.Join(e.Suggestions, ", "))
	}
}

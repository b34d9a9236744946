// Package spellchecker orchestrates tokenization, dictionary lookups,
// and the suggestion pipeline into per-word and per-document results.
package spellchecker

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lexigraph/spellkit/internal/logger"
	"github.com/lexigraph/spellkit/internal/utils"
	"github.com/lexigraph/spellkit/pkg/config"
	"github.com/lexigraph/spellkit/pkg/dictionary"
	"github.com/lexigraph/spellkit/pkg/spellerr"
	"github.com/lexigraph/spellkit/pkg/suggest"
)

// Spellchecker wraps a loaded Dictionary and the suggestion count used
// for incorrect words. It owns the dictionary for its whole lifetime;
// callers never mutate the dictionary from another goroutine while a
// check is in flight.
type Spellchecker struct {
	dict           dictionary.Dictionary
	maxSuggestions int
}

// NewSpellchecker builds a Spellchecker over dict, seeding pipeline
// defaults from cfg. A nil cfg falls back to config.DefaultConfig(),
// mirroring the teacher's NewServer(completer, cfg, configPath) shape.
func NewSpellchecker(dict dictionary.Dictionary, cfg *config.Config) *Spellchecker {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	suggest.Configure(
		suggest.Weights{Distance: cfg.Pipeline.DistanceWeight, Confidence: cfg.Pipeline.ConfidenceWeight},
		cfg.Pipeline.EditMaxDistance,
		phoneticAlgorithmFor(cfg.Pipeline.PhoneticAlgorithm),
		cfg.Pipeline.KeyboardMaxDistance,
		cfg.Pipeline.NgramSize,
		cfg.Pipeline.NgramMinSimilarity,
		cfg.Dict.AccelThreshold,
	)
	return &Spellchecker{dict: dict, maxSuggestions: cfg.Dict.MaxSuggestions}
}

// phoneticAlgorithmFor maps the config's string knob to a
// suggest.Algorithm, defaulting to Soundex for any unrecognized value.
func phoneticAlgorithmFor(name string) suggest.Algorithm {
	if name == "metaphone" {
		return suggest.MetaphoneAlgorithm
	}
	return suggest.SoundexAlgorithm
}

// Correct reports whether word is found in the dictionary. An empty
// word is always incorrect.
func (s *Spellchecker) Correct(word string) bool {
	if word == "" {
		return false
	}
	return s.dict.Contains(word)
}

// Suggest returns ranked suggestions for word. Dictionary backends
// store and rank against the case-folded form, so the original
// capitalization pattern of word is reapplied onto each suggestion
// (e.g. "Teh" -> "The", "TEH" -> "THE"), mirroring the teacher's
// ApplyCapitals idiom for restoring a query's case onto its results.
// Pure-repeat junk like "aaaa" skips pipeline work entirely, matching
// the teacher's isRepetitive threshold bump in its Complete path.
func (s *Spellchecker) Suggest(word string) []string {
	if utils.IsRepetitive(word) {
		return nil
	}
	lower, capInfo := utils.GetCapitalDetails(word)
	suggestions := s.dict.Suggest(lower, s.maxSuggestions)
	utils.CapitalizeWords(suggestions, capInfo)
	return suggestions
}

// CheckWord checks a single word in isolation, outside any document
// position.
func (s *Spellchecker) CheckWord(word string) WordResult {
	if s.Correct(word) {
		return CorrectWord(word, 0)
	}
	return IncorrectWord(word, 0, s.Suggest(word))
}

// Check tokenizes text, checks every token, and collects incorrect
// results in textual order.
func (s *Spellchecker) Check(text string) DocumentResult {
	tokens := Tokenize(text)
	var errs []WordResult
	for _, tok := range tokens {
		if s.Correct(tok.Text) {
			continue
		}
		errs = append(errs, IncorrectWord(tok.Text, tok.Position, s.Suggest(tok.Text)))
	}
	return DocumentResult{
		Success:   len(errs) == 0,
		Errors:    errs,
		WordCount: len(tokens),
	}
}

// CheckWithLogger is the ambient variant of Check that threads a
// *log.Logger for load/IO diagnostics, mirroring the teacher's
// log-everywhere idiom without changing Check's pure result.
func (s *Spellchecker) CheckWithLogger(text string, lg *log.Logger) DocumentResult {
	if lg == nil {
		lg = logger.Default("spellchecker")
	}
	result := s.Check(text)
	lg.Debugf("checked %d tokens, %d errors", result.WordCount, len(result.Errors))
	return result
}

// CheckFile reads path as UTF-8 text and delegates to Check, attaching
// the path to the result. A missing file raises DictionaryNotFound,
// matching the "dictionary/file not found" error named for check_file.
func (s *Spellchecker) CheckFile(path string) (DocumentResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentResult{}, spellerr.NotFound(path, err)
	}
	result := s.Check(string(data))
	result.File = path
	return result, nil
}

// CheckDirectory enumerates files under dir matching the shell glob
// pattern and checks each one.
func (s *Spellchecker) CheckDirectory(dir string, pattern string) ([]DocumentResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, spellerr.NotFound(dir, err)
	}
	var results []DocumentResult
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, spellerr.BadConfig("invalid glob pattern: " + pattern)
		}
		if !matched {
			continue
		}
		result, err := s.CheckFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

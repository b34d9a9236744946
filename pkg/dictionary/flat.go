package dictionary

import (
	"bufio"
	"io"
	"strings"

	"github.com/lexigraph/spellkit/pkg/suggest"
)

// wordStore is the hash-set-plus-insertion-order-vector shared by the
// flat and custom backends: a case-policy-aware set for membership,
// with a parallel slice preserving insertion order for Enumerate.
type wordStore struct {
	caseSensitive bool
	languageCode  string
	locale        string
	metadata      map[string]string
	index         map[string]bool
	order         []string
	accel         *suggest.Accelerator
}

func newWordStore(caseSensitive bool, languageCode, locale string, metadata map[string]string) *wordStore {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &wordStore{
		caseSensitive: caseSensitive,
		languageCode:  languageCode,
		locale:        locale,
		metadata:      metadata,
		index:         make(map[string]bool),
	}
}

func (s *wordStore) key(word string) string {
	if s.caseSensitive {
		return word
	}
	return fold(word)
}

func (s *wordStore) add(word string) bool {
	k := s.key(word)
	if s.index[k] {
		return false
	}
	s.index[k] = true
	s.order = append(s.order, k)
	return true
}

func (s *wordStore) remove(word string) bool {
	k := s.key(word)
	if !s.index[k] {
		return false
	}
	delete(s.index, k)
	for i, w := range s.order {
		if w == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *wordStore) contains(word string) bool {
	return s.index[s.key(word)]
}

func (s *wordStore) enumerate() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *wordStore) wordsWithPrefix(prefix string) []string {
	p := s.key(prefix)
	var out []string
	for _, w := range s.order {
		if strings.HasPrefix(w, p) {
			out = append(out, w)
		}
	}
	return out
}

func (s *wordStore) wordsMatching(pattern string) []string {
	var out []string
	for _, w := range s.order {
		if matchGlob(pattern, w) {
			out = append(out, w)
		}
	}
	return out
}

func (s *wordStore) size() int  { return len(s.order) }
func (s *wordStore) empty() bool { return len(s.order) == 0 }

func (s *wordStore) stats() Stats {
	return Stats{WordCount: len(s.order)}
}

// populateAccel (re)builds the store's candidate-narrowing accelerator
// from its current word list. Called once after a bulk load; Add/Remove
// afterward leave the accelerator stale until the next full repopulation,
// an accepted trade-off since both backends are predominantly load-once.
func (s *wordStore) populateAccel() {
	if s.accel == nil {
		s.accel = suggest.NewAccelerator()
	}
	s.accel.Populate(s.enumerate())
}

// readWordList reads a flat word-list stream: blank lines and lines
// beginning with '#' are skipped, surrounding whitespace is trimmed from
// every other line.
func readWordList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FlatDictionary is backend (i): a plain word list with no flags and no
// affixes.
type FlatDictionary struct {
	store *wordStore
}

// LoadFlatWordList builds a FlatDictionary from a UTF-8 text stream.
func LoadFlatWordList(r io.Reader, languageCode string, caseSensitive bool) (*FlatDictionary, error) {
	words, err := readWordList(r)
	if err != nil {
		return nil, err
	}
	store := newWordStore(caseSensitive, languageCode, "", nil)
	for _, w := range words {
		store.add(w)
	}
	store.populateAccel()
	return &FlatDictionary{store: store}, nil
}

func (d *FlatDictionary) Contains(word string) bool             { return d.store.contains(word) }
func (d *FlatDictionary) Enumerate() []string                   { return d.store.enumerate() }
func (d *FlatDictionary) Add(word string, _ ...string) bool     { return d.store.add(word) }
func (d *FlatDictionary) Remove(word string) bool                { return d.store.remove(word) }
func (d *FlatDictionary) Size() int                              { return d.store.size() }
func (d *FlatDictionary) Empty() bool                            { return d.store.empty() }
func (d *FlatDictionary) WordsWithPrefix(prefix string) []string { return d.store.wordsWithPrefix(prefix) }
func (d *FlatDictionary) WordsMatching(pattern string) []string  { return d.store.wordsMatching(pattern) }
func (d *FlatDictionary) LanguageCode() string                   { return d.store.languageCode }
func (d *FlatDictionary) Locale() string                         { return d.store.locale }
func (d *FlatDictionary) Metadata() map[string]string            { return d.store.metadata }
func (d *FlatDictionary) Stats() Stats                           { return d.store.stats() }

// Suggest delegates to the suggestion pipeline's default strategies,
// narrowing through the store's accelerator once the dictionary is
// large enough to cross the configured threshold.
func (d *FlatDictionary) Suggest(word string, maxSuggestions int) []string {
	return suggest.GenerateAuto(d, word, maxSuggestions, d.store.accel).Words()
}

// CustomDictionary is backend (ii): an in-memory list built from a
// caller-supplied iterable, mutable after construction.
type CustomDictionary struct {
	store *wordStore
}

// NewCustomDictionary builds a CustomDictionary seeded with words.
func NewCustomDictionary(words []string, languageCode string, caseSensitive bool) *CustomDictionary {
	store := newWordStore(caseSensitive, languageCode, "", nil)
	for _, w := range words {
		store.add(w)
	}
	store.populateAccel()
	return &CustomDictionary{store: store}
}

func (d *CustomDictionary) Contains(word string) bool             { return d.store.contains(word) }
func (d *CustomDictionary) Enumerate() []string                   { return d.store.enumerate() }
func (d *CustomDictionary) Add(word string, _ ...string) bool     { return d.store.add(word) }
func (d *CustomDictionary) Remove(word string) bool                { return d.store.remove(word) }
func (d *CustomDictionary) Size() int                              { return d.store.size() }
func (d *CustomDictionary) Empty() bool                            { return d.store.empty() }
func (d *CustomDictionary) WordsWithPrefix(prefix string) []string { return d.store.wordsWithPrefix(prefix) }
func (d *CustomDictionary) WordsMatching(pattern string) []string  { return d.store.wordsMatching(pattern) }
func (d *CustomDictionary) LanguageCode() string                   { return d.store.languageCode }
func (d *CustomDictionary) Locale() string                         { return d.store.locale }
func (d *CustomDictionary) Metadata() map[string]string            { return d.store.metadata }
func (d *CustomDictionary) Stats() Stats                           { return d.store.stats() }

// Suggest narrows through the store's accelerator the same way
// FlatDictionary does.
func (d *CustomDictionary) Suggest(word string, maxSuggestions int) []string {
	return suggest.GenerateAuto(d, word, maxSuggestions, d.store.accel).Words()
}

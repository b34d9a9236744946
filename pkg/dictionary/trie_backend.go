package dictionary

import (
	"io"

	"github.com/lexigraph/spellkit/pkg/suggest"
	"github.com/lexigraph/spellkit/pkg/trie"
)

// TrieDictionary is backend (iv): a word list stored in a prefix trie
// rather than a hash set, so it can answer prefix queries directly and
// give Suggest a head start via Trie.Suggestions before falling back to
// the generic edit-distance ranker.
type TrieDictionary struct {
	tr            *trie.Trie
	caseSensitive bool
	languageCode  string
	locale        string
	metadata      map[string]string
	count         int
	accel         *suggest.Accelerator
}

// LoadTrieWordList builds a TrieDictionary from a UTF-8 text stream,
// using the same comment/blank-line policy as the flat format.
func LoadTrieWordList(r io.Reader, languageCode string, caseSensitive bool) (*TrieDictionary, error) {
	words, err := readWordList(r)
	if err != nil {
		return nil, err
	}
	d := &TrieDictionary{
		tr:           trie.New(),
		caseSensitive: caseSensitive,
		languageCode: languageCode,
		metadata:     map[string]string{},
	}
	for _, w := range words {
		d.Add(w)
	}
	d.accel = suggest.NewAccelerator()
	d.accel.Populate(d.Enumerate())
	return d, nil
}

func (d *TrieDictionary) key(word string) string {
	if d.caseSensitive {
		return word
	}
	return fold(word)
}

func (d *TrieDictionary) Contains(word string) bool {
	return d.tr.Contains(d.key(word))
}

func (d *TrieDictionary) Enumerate() []string {
	var out []string
	it := d.tr.EachWord()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, e.Word)
	}
	return out
}

func (d *TrieDictionary) Add(word string, _ ...string) bool {
	k := d.key(word)
	if d.tr.Contains(k) {
		return false
	}
	d.tr.Insert(k, nil)
	d.count++
	return true
}

func (d *TrieDictionary) Remove(word string) bool {
	if d.tr.Delete(d.key(word)) {
		d.count--
		return true
	}
	return false
}

func (d *TrieDictionary) Size() int  { return d.count }
func (d *TrieDictionary) Empty() bool { return d.count == 0 }

func (d *TrieDictionary) WordsWithPrefix(prefix string) []string {
	return d.tr.WordsWithPrefix(d.key(prefix))
}

func (d *TrieDictionary) WordsMatching(pattern string) []string {
	var out []string
	for _, w := range d.Enumerate() {
		if matchGlob(pattern, w) {
			out = append(out, w)
		}
	}
	return out
}

func (d *TrieDictionary) LanguageCode() string        { return d.languageCode }
func (d *TrieDictionary) Locale() string               { return d.locale }
func (d *TrieDictionary) Metadata() map[string]string { return d.metadata }
func (d *TrieDictionary) Stats() Stats                { return Stats{WordCount: d.count} }

// Suggest uses Trie.Suggestions first (candidates sharing the longest
// matched prefix of word), then spends any remaining budget on the
// generic edit-distance ranker over the full vocabulary.
func (d *TrieDictionary) Suggest(word string, maxSuggestions int) []string {
	prefixHits := d.tr.Suggestions(d.key(word), maxSuggestions)
	if len(prefixHits) >= maxSuggestions {
		return prefixHits
	}
	remaining := maxSuggestions - len(prefixHits)
	ranked := suggest.GenerateAuto(d, word, remaining, d.accel).Words()

	seen := make(map[string]bool, len(prefixHits))
	out := make([]string, 0, len(prefixHits)+len(ranked))
	for _, w := range prefixHits {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, w := range ranked {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

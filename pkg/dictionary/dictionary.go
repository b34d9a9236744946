// Package dictionary implements the four Dictionary backend variants:
// flat word list, in-memory custom list, Hunspell .dic+.aff with affix
// expansion, and a trie-backed word list. All four share the Dictionary
// contract below.
package dictionary

import (
	"path"
	"strings"
)

// Stats reports read-only counts about a loaded dictionary, useful for
// diagnostics.
type Stats struct {
	WordCount     int
	FlagCount     int
	AffixRuleCount int
}

// Dictionary is the shared contract every backend variant implements.
type Dictionary interface {
	// Contains reports exact membership, subject to the backend's case
	// policy.
	Contains(word string) bool
	// Enumerate returns every stored word.
	Enumerate() []string
	// Suggest returns an ordered list of candidate words for word,
	// bounded to maxSuggestions. Backends may narrow candidates
	// internally before delegating to the pipeline's default ranker;
	// final ranking is always pkg/suggest's responsibility.
	Suggest(word string, maxSuggestions int) []string
	// Add inserts word (with optional flags, meaningful only to the
	// Hunspell backend) and reports whether it was newly added.
	Add(word string, flags ...string) bool
	// Remove deletes word and reports whether it was present.
	Remove(word string) bool
	// Size returns the number of stored words.
	Size() int
	// Empty reports whether the dictionary holds no words.
	Empty() bool
	// WordsWithPrefix returns every stored word beginning with prefix.
	WordsWithPrefix(prefix string) []string
	// WordsMatching returns every stored word matching a shell-style
	// glob pattern ('*' and '?').
	WordsMatching(pattern string) []string
	// LanguageCode returns the dictionary's declared language, e.g. "en-US".
	LanguageCode() string
	// Locale returns an optional, more specific locale tag.
	Locale() string
	// Metadata returns the dictionary's immutable metadata mapping.
	Metadata() map[string]string
	// Stats reports word/flag/affix-rule counts.
	Stats() Stats
}

// fold applies the case-insensitive comparison policy: ASCII lowercase.
// Dictionaries decide for themselves whether to call this at all.
func fold(s string) string {
	return strings.ToLower(s)
}

// matchGlob reports whether word matches a '*'/'?' shell-style pattern.
func matchGlob(pattern, word string) bool {
	ok, err := path.Match(pattern, word)
	return err == nil && ok
}

// Package suggest implements the spelling-suggestion pipeline: a set of
// independent strategies (edit-distance, phonetic, keyboard-proximity,
// n-gram) fanned out and merged by a Composite into one deterministically
// ranked, deduplicated, bounded SuggestionSet.
package suggest

import (
	"sort"
	"strings"
)

// WordSource is the minimal view of a dictionary a suggestion strategy
// needs: membership and full enumeration. pkg/dictionary's backends all
// satisfy this structurally; suggest never imports pkg/dictionary, so
// the dependency only runs in the other direction.
type WordSource interface {
	Contains(word string) bool
	Enumerate() []string
}

// Weights controls the combined-score ranking formula:
// distance*(1-min(d,5)/5) + confidence*confidence.
type Weights struct {
	Distance   float64
	Confidence float64
}

// DefaultWeights matches the pipeline defaults.
var DefaultWeights = Weights{Distance: 0.3, Confidence: 0.7}

// Suggestion is the immutable result of one strategy's candidate. Two
// suggestions are considered equal by case-folded word.
type Suggestion struct {
	Word       string
	Distance   int
	Confidence float64
	Source     string
	Metadata   map[string]string
}

func foldWord(w string) string {
	return strings.ToLower(w)
}

func combinedScore(w Weights, distance int, confidence float64) float64 {
	d := distance
	if d > 5 {
		d = 5
	}
	return w.Distance*(1-float64(d)/5.0) + w.Confidence*confidence
}

// SuggestionSet is a bounded, ordered collection. Every mutation re-sorts
// by the ranking key, deduplicates by case-folded word, and truncates to
// maxSize — the invariant is established eagerly, not lazily at read time.
type SuggestionSet struct {
	items   []Suggestion
	maxSize int
	weights Weights
}

// NewSuggestionSet returns an empty set bounded to maxSize entries.
func NewSuggestionSet(maxSize int, weights Weights) *SuggestionSet {
	return &SuggestionSet{maxSize: maxSize, weights: weights}
}

// Add inserts s and re-establishes the set invariant.
func (s *SuggestionSet) Add(sugg Suggestion) {
	s.items = append(s.items, sugg)
	s.reestablish()
}

// AddAll inserts every suggestion in suggs and re-establishes the
// invariant once, rather than once per element.
func (s *SuggestionSet) AddAll(suggs []Suggestion) {
	s.items = append(s.items, suggs...)
	s.reestablish()
}

// Merge folds other's contents into s in place and returns s, matching
// the ranking-key order that would result from constructing one set from
// the union of both.
func (s *SuggestionSet) Merge(other *SuggestionSet) *SuggestionSet {
	if other == nil {
		return s
	}
	s.items = append(s.items, other.items...)
	s.reestablish()
	return s
}

func (s *SuggestionSet) reestablish() {
	sort.SliceStable(s.items, func(i, j int) bool {
		a, b := s.items[i], s.items[j]
		scoreA := combinedScore(s.weights, a.Distance, a.Confidence)
		scoreB := combinedScore(s.weights, b.Distance, b.Confidence)
		if scoreA != scoreB {
			return scoreA > scoreB
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return foldWord(a.Word) < foldWord(b.Word)
	})

	seen := make(map[string]bool, len(s.items))
	deduped := s.items[:0]
	for _, it := range s.items {
		key := foldWord(it.Word)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, it)
	}
	s.items = deduped

	if s.maxSize > 0 && len(s.items) > s.maxSize {
		s.items = s.items[:s.maxSize]
	}
}

// Len returns the number of suggestions currently held.
func (s *SuggestionSet) Len() int {
	return len(s.items)
}

// Items returns the materialized, ordered view of the set. Callers must
// not mutate the returned slice's elements' Metadata maps.
func (s *SuggestionSet) Items() []Suggestion {
	return s.items
}

// Words returns just the ranked word strings, discarding distance/
// confidence/source — used by callers (like a Dictionary backend's
// Suggest method) that only need the ranked word list.
func (s *SuggestionSet) Words() []string {
	out := make([]string, len(s.items))
	for i, it := range s.items {
		out[i] = it.Word
	}
	return out
}

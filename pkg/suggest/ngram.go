package suggest

import "strings"

// ngramCounts returns the multiset of n-grams in s as a count map. Words
// shorter than n contribute the whole word as a single "gram".
func ngramCounts(s string, n int) map[string]int {
	runes := []rune(s)
	counts := make(map[string]int)
	if len(runes) < n {
		counts[s]++
		return counts
	}
	for i := 0; i+n <= len(runes); i++ {
		counts[string(runes[i:i+n])]++
	}
	return counts
}

// weightedJaccard computes the generalized (weighted) Jaccard similarity
// between two n-gram multisets: sum of per-gram minimums over sum of
// per-gram maximums, across the union of grams present in either.
func weightedJaccard(a, b map[string]int) float64 {
	seen := make(map[string]bool, len(a)+len(b))
	var inter, union float64
	for g := range a {
		seen[g] = true
	}
	for g := range b {
		seen[g] = true
	}
	for g := range seen {
		ca, cb := a[g], b[g]
		if ca < cb {
			inter += float64(ca)
			union += float64(cb)
		} else {
			inter += float64(cb)
			union += float64(ca)
		}
	}
	if union == 0 {
		return 0
	}
	return inter / union
}

// NgramStrategy ranks dictionary words by weighted-Jaccard similarity of
// their n-gram multisets against the query's.
type NgramStrategy struct {
	N             int
	MinSimilarity float64
}

func NewNgramStrategy(n int, minSimilarity float64) *NgramStrategy {
	return &NgramStrategy{N: n, MinSimilarity: minSimilarity}
}

func (s *NgramStrategy) Source() string { return "ngram" }

func (s *NgramStrategy) Handles(ctx *Context) bool {
	return !ctx.Dictionary.Contains(ctx.Word)
}

func (s *NgramStrategy) Generate(ctx *Context) *SuggestionSet {
	out := NewSuggestionSet(ctx.MaxResults, DefaultWeights)
	minSim := s.MinSimilarity
	if v, ok := ctx.Options["ngram_min_similarity"].(float64); ok {
		minSim = v
	}
	query := strings.ToLower(ctx.Word)
	queryGrams := ngramCounts(query, s.N)

	for _, candidate := range candidateWords(ctx) {
		sim := weightedJaccard(queryGrams, ngramCounts(strings.ToLower(candidate), s.N))
		if sim < minSim {
			continue
		}
		// A query never suggests itself via n-gram: a perfect-similarity
		// tie rounds its integer distance to zero, and that case is
		// discarded rather than surfaced as a near-duplicate.
		distance := int((1 - sim) * 10)
		if distance == 0 {
			continue
		}
		out.Add(Suggestion{
			Word:       candidate,
			Distance:   distance,
			Confidence: sim,
			Source:     s.Source(),
		})
	}
	return out
}

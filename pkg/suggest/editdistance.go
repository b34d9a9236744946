package suggest

// Levenshtein computes the minimum number of single-character
// insertions, deletions, and substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// EditDistanceStrategy ranks dictionary words within MaxDistance edits of
// the query.
type EditDistanceStrategy struct {
	MaxDistance int
}

// NewEditDistanceStrategy builds the strategy with the given max
// distance (spec default 2).
func NewEditDistanceStrategy(maxDistance int) *EditDistanceStrategy {
	return &EditDistanceStrategy{MaxDistance: maxDistance}
}

func (s *EditDistanceStrategy) Source() string { return "edit_distance" }

// Handles returns true for any word not already in the dictionary —
// Generate (the top-level facade) already short-circuits the in-dictionary
// case, but Composite may be driven directly, so this strategy re-checks.
func (s *EditDistanceStrategy) Handles(ctx *Context) bool {
	return !ctx.Dictionary.Contains(ctx.Word)
}

// Generate computes Levenshtein distance against every candidate
// (candidates may be pre-narrowed by an accelerator upstream via
// ctx.Options["candidates"]) and keeps those within 0 < d <= MaxDistance.
func (s *EditDistanceStrategy) Generate(ctx *Context) *SuggestionSet {
	out := NewSuggestionSet(ctx.MaxResults, DefaultWeights)
	for _, candidate := range candidateWords(ctx) {
		d := Levenshtein(ctx.Word, candidate)
		if d == 0 || d > s.MaxDistance {
			continue
		}
		out.Add(Suggestion{
			Word:       candidate,
			Distance:   d,
			Confidence: 1.0 / float64(1+d),
			Source:     s.Source(),
		})
	}
	return out
}

// candidateWords returns the candidate pool the edit-distance and n-gram
// strategies scan: the accelerator-narrowed set when the caller
// populated one, otherwise the dictionary's full enumeration. The
// phonetic strategy deliberately never calls this — see its Generate.
func candidateWords(ctx *Context) []string {
	if ctx.Options != nil {
		if narrowed, ok := ctx.Options["candidates"].([]string); ok {
			return narrowed
		}
	}
	return ctx.Dictionary.Enumerate()
}

package suggest

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Accelerator is an optional prefix index, filled by Populate, over a
// dictionary's full word list, built on go-patricia's compressed radix
// trie. It exists purely to narrow the candidate pool the edit-distance
// and n-gram strategies scan before ranking — it must never be mistaken
// for pkg/trie.Trie, which is the core §4.1 structure with its own
// insertion-order and set-operation contract; this is a second,
// independent structure used only inside the suggestion pipeline.
//
// Words are bucketed by their first two (case-folded) letters. A lookup
// never scans only the query's own bucket: it unions every bucket
// within maxDistance single-character edits of the query's bucket key,
// since a candidate reachable from the query within maxDistance edits
// overall can differ from it by at most maxDistance edits in its first
// two letters too. This keeps the prefilter a true superset of what an
// unaccelerated scan would find — narrowing shrinks scan cost, it never
// drops a reachable candidate — which is why it's gated behind
// config.Dict.AccelThreshold rather than always on.
type Accelerator struct {
	mu        sync.RWMutex
	trie      *patricia.Trie
	populated bool
}

// NewAccelerator returns an empty, unpopulated accelerator.
func NewAccelerator() *Accelerator {
	return &Accelerator{trie: patricia.NewTrie()}
}

// accelAlphabet is the character set substitution/insertion draws from
// when expanding a bucket neighborhood, matching the tokenizer's
// word-byte rule (ASCII letters plus the apostrophe contractions use).
const accelAlphabet = "abcdefghijklmnopqrstuvwxyz'"

func bucketKey(word string) string {
	lower := strings.ToLower(word)
	runes := []rune(lower)
	if len(runes) >= 2 {
		return string(runes[:2])
	}
	return lower
}

// Populate indexes every word in words under its bucket key. Safe to
// call once per dictionary load; re-populating an already-populated
// accelerator rebuilds it from scratch.
func (a *Accelerator) Populate(words []string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.trie = patricia.NewTrie()
	for _, w := range words {
		key := bucketKey(w) + "\x00" + w
		a.trie.Insert(patricia.Prefix(key), true)
	}
	a.populated = true
	log.Debugf("suggest: accelerator populated with %d words", len(words))
}

// editNeighbors returns every bucket key reachable from key by exactly
// one substitution, deletion, or insertion drawn from accelAlphabet,
// truncated back down to a bucket key.
func editNeighbors(key string) []string {
	runes := []rune(key)
	var out []string

	for i := range runes {
		for _, c := range accelAlphabet {
			if c == runes[i] {
				continue
			}
			out = append(out, bucketKey(string(runes[:i])+string(c)+string(runes[i+1:])))
		}
	}
	for i := range runes {
		out = append(out, bucketKey(string(runes[:i])+string(runes[i+1:])))
	}
	for i := 0; i <= len(runes); i++ {
		for _, c := range accelAlphabet {
			out = append(out, bucketKey(string(runes[:i])+string(c)+string(runes[i:])))
		}
	}
	return out
}

// bucketNeighborhood returns every bucket key within maxDistance
// single-character edits of key, including key itself.
func bucketNeighborhood(key string, maxDistance int) []string {
	seen := map[string]bool{key: true}
	frontier := []string{key}
	for d := 0; d < maxDistance; d++ {
		var next []string
		for _, k := range frontier {
			for _, n := range editNeighbors(k) {
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	return out
}

// Candidates returns the union of every bucket within maxDistance edits
// of word's own bucket, deduplicated. Returns nil if the accelerator has
// not been populated yet.
func (a *Accelerator) Candidates(word string, maxDistance int) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.populated {
		return nil
	}
	seenWords := make(map[string]bool)
	var out []string
	for _, key := range bucketNeighborhood(bucketKey(word), maxDistance) {
		err := a.trie.VisitSubtree(patricia.Prefix(key), func(p patricia.Prefix, _ patricia.Item) error {
			full := string(p)
			idx := strings.IndexByte(full, 0)
			if idx < 0 {
				return nil
			}
			w := full[idx+1:]
			if !seenWords[w] {
				seenWords[w] = true
				out = append(out, w)
			}
			return nil
		})
		if err != nil {
			log.Errorf("suggest: accelerator subtree scan failed: %v", err)
			return nil
		}
	}
	return out
}

// GenerateWithAccelerator behaves like Generate, but when the
// dictionary's enumeration exceeds threshold and accel is non-nil, the
// edit-distance and n-gram strategies scan accel's distance-bounded
// candidate union (within maxDistance edits of the query's bucket)
// instead of the full vocabulary. Keyboard-proximity generates its own
// candidate variants rather than scanning the vocabulary, so narrowing
// has nothing to act on there; phonetic always scans the full
// vocabulary regardless, since its codes routinely collapse words whose
// first two letters differ from the query's.
func GenerateWithAccelerator(ws WordSource, word string, maxResults int, strategies []Strategy, weights Weights, accel *Accelerator, threshold int, maxDistance int) *SuggestionSet {
	if word == "" || ws.Contains(word) {
		return NewSuggestionSet(maxResults, weights)
	}
	if strategies == nil {
		strategies = DefaultStrategies()
	}
	ctx := &Context{Word: word, Dictionary: ws, MaxResults: maxResults}
	if accel != nil && len(ws.Enumerate()) > threshold {
		if candidates := accel.Candidates(word, maxDistance); candidates != nil {
			ctx.Options = map[string]any{"candidates": candidates}
		}
	}
	return NewComposite(strategies...).Generate(ctx, maxResults, weights)
}

// GenerateAuto is GenerateWithAccelerator using the package-level
// defaults (DefaultWeights, DefaultStrategies, the accel threshold and
// edit-distance bound Configure last set), for dictionary backends that
// own an Accelerator but don't otherwise need strategy/weight overrides.
func GenerateAuto(ws WordSource, word string, maxResults int, accel *Accelerator) *SuggestionSet {
	return GenerateWithAccelerator(ws, word, maxResults, nil, DefaultWeights, accel, defaultStrategyParams.accelThreshold, defaultStrategyParams.editMaxDistance)
}

package suggest

import "strings"

// usQwertyNeighbors is the fixed US QWERTY adjacency table, embedded
// verbatim as spec requires: for each lowercase letter, the set of keys
// within one physical key of it.
var usQwertyNeighbors = map[byte]string{
	'q': "wa",
	'w': "qeas",
	'e': "wrds",
	'r': "etdf",
	't': "ryfg",
	'y': "tugh",
	'u': "yihj",
	'i': "uojk",
	'o': "ipkl",
	'p': "ol",
	'a': "qwsz",
	's': "awedxz",
	'd': "serfcx",
	'f': "drtgvc",
	'g': "ftyhbv",
	'h': "gyujnb",
	'j': "huikmn",
	'k': "jiolm",
	'l': "kop",
	'z': "asx",
	'x': "zsdc",
	'c': "xdfv",
	'v': "cfgb",
	'b': "vghn",
	'n': "bhjm",
	'm': "njk",
}

// KeyboardProximityStrategy suggests words reachable from the query by
// substituting, deleting, or inserting adjacent-key characters, up to
// MaxDistance edits.
type KeyboardProximityStrategy struct {
	MaxDistance int
}

func NewKeyboardProximityStrategy(maxDistance int) *KeyboardProximityStrategy {
	return &KeyboardProximityStrategy{MaxDistance: maxDistance}
}

func (s *KeyboardProximityStrategy) Source() string { return "keyboard_proximity" }

func (s *KeyboardProximityStrategy) Handles(ctx *Context) bool {
	return !ctx.Dictionary.Contains(ctx.Word)
}

func (s *KeyboardProximityStrategy) Generate(ctx *Context) *SuggestionSet {
	out := NewSuggestionSet(ctx.MaxResults, DefaultWeights)
	seen := map[string]bool{strings.ToLower(ctx.Word): true}
	frontier := []string{ctx.Word}

	for depth := 1; depth <= s.MaxDistance; depth++ {
		var next []string
		for _, w := range frontier {
			for _, variant := range keyboardVariants(w) {
				key := strings.ToLower(variant)
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, variant)
				if ctx.Dictionary.Contains(variant) {
					d := Levenshtein(ctx.Word, variant)
					if d == 0 {
						continue
					}
					out.Add(Suggestion{
						Word:       variant,
						Distance:   d,
						Confidence: 1.0 / float64(1+d),
						Source:     s.Source(),
					})
				}
			}
		}
		frontier = next
	}
	return out
}

// keyboardVariants generates every one-edit substitution, deletion, and
// neighbour-insertion of word.
func keyboardVariants(word string) []string {
	var variants []string
	lower := strings.ToLower(word)
	runes := []rune(word)

	for i, r := range runes {
		lr := []rune(lower)[i]
		neighbors, ok := usQwertyNeighbors[byte(lr)]
		if !ok {
			continue
		}
		for _, n := range neighbors {
			// substitution
			replaced := make([]rune, len(runes))
			copy(replaced, runes)
			replaced[i] = matchCase(r, n)
			variants = append(variants, string(replaced))
			// insertion after position i
			inserted := make([]rune, 0, len(runes)+1)
			inserted = append(inserted, runes[:i+1]...)
			inserted = append(inserted, matchCase(r, n))
			inserted = append(inserted, runes[i+1:]...)
			variants = append(variants, string(inserted))
		}
		// deletion of position i
		if len(runes) > 1 {
			deleted := make([]rune, 0, len(runes)-1)
			deleted = append(deleted, runes[:i]...)
			deleted = append(deleted, runes[i+1:]...)
			variants = append(variants, string(deleted))
		}
	}
	return variants
}

func matchCase(original rune, replacement rune) rune {
	if original >= 'A' && original <= 'Z' {
		return replacement - ('a' - 'A')
	}
	return replacement
}

package suggest

import "strings"

// Algorithm selects which phonetic code the phonetic strategy computes.
type Algorithm int

const (
	SoundexAlgorithm Algorithm = iota
	MetaphoneAlgorithm
)

var soundexCodes = map[rune]byte{
	'B': '1', 'F': '1', 'P': '1', 'V': '1',
	'C': '2', 'G': '2', 'J': '2', 'K': '2', 'Q': '2', 'S': '2', 'X': '2', 'Z': '2',
	'D': '3', 'T': '3',
	'L': '4',
	'M': '5', 'N': '5',
	'R': '6',
}

// Soundex encodes word per the standard table: the first letter is kept
// verbatim, remaining consonants are mapped to a digit, vowels and H/W
// are silent (code 0), consecutive duplicate codes collapse to one,
// zeros are dropped, and the result is padded with zeros to length 4.
func Soundex(word string) string {
	runes := []rune(strings.ToUpper(word))
	if len(runes) == 0 {
		return ""
	}

	first := runes[0]
	lastCode, ok := soundexCodes[first]
	if !ok {
		lastCode = '0'
	}
	var codes []byte
	for _, r := range runes[1:] {
		code, ok := soundexCodes[r]
		if !ok {
			code = '0'
		}
		if code != lastCode {
			codes = append(codes, code)
		}
		lastCode = code
	}

	out := make([]byte, 0, 4)
	out = append(out, byte(first))
	for _, c := range codes {
		if c == '0' {
			continue
		}
		out = append(out, c)
		if len(out) == 4 {
			break
		}
	}
	for len(out) < 4 {
		out = append(out, '0')
	}
	return string(out)
}

// Metaphone implements the consonant/vowel rule set from spec: B, C
// (context-sensitive X/K), D (DG[IEY]->J else T), F, G (GH/GN handling),
// H (silent unless initial), J, K (silent after N), L, M, N, P (PH->F),
// Q->K, R, S (SH->X, SIO/SIA->X), T (TIO/TIA->X, TH->0), V->F, W/Y
// (initial only), X->KS, Z->S; vowels are kept only at the start.
// Truncated to 4 characters.
func Metaphone(word string) string {
	runes := []rune(strings.ToUpper(word))
	n := len(runes)
	var out []rune

	at := func(i int) rune {
		if i < 0 || i >= n {
			return 0
		}
		return runes[i]
	}

	for i := 0; i < n && len(out) < 4; i++ {
		c := runes[i]
		next := at(i + 1)
		next2 := at(i + 2)
		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			if i == 0 {
				out = append(out, c)
			}
		case 'B':
			out = append(out, 'B')
		case 'C':
			switch {
			case next == 'I' && next2 == 'A':
				out = append(out, 'X')
			case next == 'H':
				out = append(out, 'X')
				i++
			case next == 'I' || next == 'E' || next == 'Y':
				out = append(out, 'S')
			default:
				out = append(out, 'K')
			}
		case 'D':
			if next == 'G' && (next2 == 'I' || next2 == 'E' || next2 == 'Y') {
				out = append(out, 'J')
				i++
			} else {
				out = append(out, 'T')
			}
		case 'F':
			out = append(out, 'F')
		case 'G':
			switch {
			case next == 'H':
				i++
			case next == 'N':
				// silent G before N, N itself is processed next iteration.
			case next == 'I' || next == 'E' || next == 'Y':
				out = append(out, 'J')
			default:
				out = append(out, 'K')
			}
		case 'H':
			if i == 0 {
				out = append(out, 'H')
			}
		case 'J':
			out = append(out, 'J')
		case 'K':
			if at(i-1) != 'N' {
				out = append(out, 'K')
			}
		case 'L':
			out = append(out, 'L')
		case 'M':
			out = append(out, 'M')
		case 'N':
			out = append(out, 'N')
		case 'P':
			if next == 'H' {
				out = append(out, 'F')
				i++
			} else {
				out = append(out, 'P')
			}
		case 'Q':
			out = append(out, 'K')
		case 'R':
			out = append(out, 'R')
		case 'S':
			switch {
			case next == 'H':
				out = append(out, 'X')
				i++
			case next == 'I' && (next2 == 'O' || next2 == 'A'):
				out = append(out, 'X')
			default:
				out = append(out, 'S')
			}
		case 'T':
			switch {
			case next == 'I' && (next2 == 'O' || next2 == 'A'):
				out = append(out, 'X')
			case next == 'H':
				out = append(out, '0')
				i++
			default:
				out = append(out, 'T')
			}
		case 'V':
			out = append(out, 'F')
		case 'W', 'Y':
			if i == 0 {
				out = append(out, c)
			}
		case 'X':
			out = append(out, 'K', 'S')
		case 'Z':
			out = append(out, 'S')
		}
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return string(out)
}

func phoneticCode(algo Algorithm, word string) string {
	if algo == MetaphoneAlgorithm {
		return Metaphone(word)
	}
	return Soundex(word)
}

// PhoneticStrategy suggests dictionary words sharing the query's
// phonetic code (within a Levenshtein tolerance of 2, per spec).
type PhoneticStrategy struct {
	Algorithm Algorithm
}

func NewPhoneticStrategy(algo Algorithm) *PhoneticStrategy {
	return &PhoneticStrategy{Algorithm: algo}
}

func (s *PhoneticStrategy) Source() string { return "phonetic" }

func (s *PhoneticStrategy) Handles(ctx *Context) bool {
	return !ctx.Dictionary.Contains(ctx.Word)
}

func (s *PhoneticStrategy) Generate(ctx *Context) *SuggestionSet {
	out := NewSuggestionSet(ctx.MaxResults, DefaultWeights)
	algo := s.Algorithm
	if v, ok := ctx.Options["phonetic_algorithm"].(Algorithm); ok {
		algo = v
	}
	queryCode := phoneticCode(algo, ctx.Word)
	if queryCode == "" {
		return out
	}
	// Always scans the full vocabulary, never the accelerator-narrowed
	// candidate set: phonetic codes collapse differing first/second
	// letters onto the same code (e.g. "f"/"ph"), which is exactly what
	// the first-two-letter bucket would discard.
	for _, candidate := range ctx.Dictionary.Enumerate() {
		if phoneticCode(algo, candidate) != queryCode {
			continue
		}
		d := Levenshtein(ctx.Word, candidate)
		if d == 0 || d > 2 {
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

package dictionary

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lexigraph/spellkit/pkg/affix"
	"github.com/lexigraph/spellkit/pkg/spellerr"
	"github.com/lexigraph/spellkit/pkg/suggest"
)

// HunspellDictionary is backend (iii): a case-folded hash from word to
// flag set, plus PFX/SFX tables keyed by flag, supporting affix
// expansion per the reverse-apply algorithm in spec §4.3.
type HunspellDictionary struct {
	caseSensitive bool
	languageCode  string
	locale        string
	metadata      map[string]string
	flagMode      affix.FlagMode
	pfx           map[string][]*affix.Rule
	sfx           map[string][]*affix.Rule
	words         map[string][]string // stem -> flags
	order         []string
}

// LoadHunspellDictionary parses affSrc (the .aff configuration) then
// dicSrc (the .dic word/flagstring list) and returns the resulting
// dictionary. affPath/dicPath are only used to annotate structured
// parse errors with a file name and line number.
func LoadHunspellDictionary(affSrc io.Reader, affPath string, dicSrc io.Reader, dicPath string, languageCode string, caseSensitive bool) (*HunspellDictionary, error) {
	affFile, err := affix.Parse(affSrc, affPath)
	if err != nil {
		return nil, err
	}

	d := &HunspellDictionary{
		caseSensitive: caseSensitive,
		languageCode:  languageCode,
		metadata:      map[string]string{},
		flagMode:      affFile.FlagMode,
		pfx:           affFile.Prefixes,
		sfx:           affFile.Suffixes,
		words:         make(map[string][]string),
	}

	if err := d.loadDic(dicSrc, dicPath); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *HunspellDictionary) loadDic(r io.Reader, path string) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	sawCountHint := false

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !sawCountHint {
			// First non-blank line is a decimal word-count hint; it may be
			// wrong, so it is read and discarded rather than trusted.
			sawCountHint = true
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
			// Not actually a count hint: fall through and treat this line
			// as the first word entry.
		}

		word, flagstring, _ := strings.Cut(line, "/")
		var flags []string
		if flagstring != "" {
			decoded, err := affix.DecodeFlagString(d.flagMode, flagstring)
			if err != nil {
				return spellerr.BadFormat(path, lineNum, err.Error())
			}
			flags = decoded
		}
		d.addStem(word, flags)
	}
	if err := scanner.Err(); err != nil {
		return spellerr.Runtime("failed reading dic file", err)
	}
	return nil
}

func (d *HunspellDictionary) key(word string) string {
	if d.caseSensitive {
		return word
	}
	return fold(word)
}

func (d *HunspellDictionary) addStem(word string, flags []string) bool {
	k := d.key(word)
	if _, present := d.words[k]; present {
		return false
	}
	d.words[k] = flags
	d.order = append(d.order, k)
	return true
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Contains implements the three-step affix-query algorithm: direct hit,
// single-rule reverse-expansion (SFX then PFX), then cross-product
// composition tried in both undo orders.
func (d *HunspellDictionary) Contains(word string) bool {
	k := d.key(word)
	if _, ok := d.words[k]; ok {
		return true
	}

	for _, rules := range d.sfx {
		for _, r := range rules {
			if stem, ok := r.Undo(k); ok {
				if flags, present := d.words[stem]; present && hasFlag(flags, r.Flag) {
					return true
				}
			}
		}
	}
	for _, rules := range d.pfx {
		for _, r := range rules {
			if stem, ok := r.Undo(k); ok {
				if flags, present := d.words[stem]; present && hasFlag(flags, r.Flag) {
					return true
				}
			}
		}
	}

	// SFX-then-PFX undo order: surface was built stem -> PFX -> SFX, so
	// undoing peels the suffix first, then the prefix.
	for _, sfxRules := range d.sfx {
		for _, rs := range sfxRules {
			if !rs.CrossProduct {
				continue
			}
			mid, ok := rs.Undo(k)
			if !ok {
				continue
			}
			for _, pfxRules := range d.pfx {
				for _, rp := range pfxRules {
					if !rp.CrossProduct {
						continue
					}
					stem, ok := rp.Undo(mid)
					if !ok {
						continue
					}
					if flags, present := d.words[stem]; present && hasFlag(flags, rs.Flag) && hasFlag(flags, rp.Flag) {
						return true
					}
				}
			}
		}
	}

	// PFX-then-SFX undo order: surface was built stem -> SFX -> PFX.
	for _, pfxRules := range d.pfx {
		for _, rp := range pfxRules {
			if !rp.CrossProduct {
				continue
			}
			mid, ok := rp.Undo(k)
			if !ok {
				continue
			}
			for _, sfxRules := range d.sfx {
				for _, rs := range sfxRules {
					if !rs.CrossProduct {
						continue
					}
					stem, ok := rs.Undo(mid)
					if !ok {
						continue
					}
					if flags, present := d.words[stem]; present && hasFlag(flags, rs.Flag) && hasFlag(flags, rp.Flag) {
						return true
					}
				}
			}
		}
	}

	return false
}

func (d *HunspellDictionary) Enumerate() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *HunspellDictionary) Add(word string, flags ...string) bool {
	return d.addStem(word, flags)
}

func (d *HunspellDictionary) Remove(word string) bool {
	k := d.key(word)
	if _, present := d.words[k]; !present {
		return false
	}
	delete(d.words, k)
	for i, w := range d.order {
		if w == k {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

func (d *HunspellDictionary) Size() int  { return len(d.order) }
func (d *HunspellDictionary) Empty() bool { return len(d.order) == 0 }

func (d *HunspellDictionary) WordsWithPrefix(prefix string) []string {
	p := d.key(prefix)
	var out []string
	for _, w := range d.order {
		if strings.HasPrefix(w, p) {
			out = append(out, w)
		}
	}
	return out
}

func (d *HunspellDictionary) WordsMatching(pattern string) []string {
	var out []string
	for _, w := range d.order {
		if matchGlob(pattern, w) {
			out = append(out, w)
		}
	}
	return out
}

func (d *HunspellDictionary) LanguageCode() string        { return d.languageCode }
func (d *HunspellDictionary) Locale() string               { return d.locale }
func (d *HunspellDictionary) Metadata() map[string]string { return d.metadata }

func (d *HunspellDictionary) Stats() Stats {
	ruleCount := 0
	flagSet := make(map[string]bool)
	for flag, rules := range d.pfx {
		flagSet[flag] = true
		ruleCount += len(rules)
	}
	for flag, rules := range d.sfx {
		flagSet[flag] = true
		ruleCount += len(rules)
	}
	return Stats{WordCount: len(d.order), FlagCount: len(flagSet), AffixRuleCount: ruleCount}
}

// Suggest narrows candidates to prefixLen = max(len(word)-1, 2) before
// ranking, matching the Hunspell suggest heuristic named as an Open
// Question: this is an internal optimization only, never a substitute
// for the pipeline's own ranking once candidates are gathered.
func (d *HunspellDictionary) Suggest(word string, maxSuggestions int) []string {
	prefixLen := len(word) - 1
	if prefixLen < 2 {
		prefixLen = 2
	}
	prefix := word
	if len(prefix) > prefixLen {
		prefix = prefix[:prefixLen]
	}
	narrowed := d.WordsWithPrefix(prefix)
	if len(narrowed) == 0 {
		narrowed = d.Enumerate()
	}
	src := &narrowedSource{dict: d, candidates: narrowed}
	return suggest.Generate(src, word, maxSuggestions, nil, suggest.DefaultWeights).Words()
}

// narrowedSource adapts a pre-filtered candidate slice into a
// suggest.WordSource, so backend-level candidate narrowing composes
// with the shared ranking pipeline without duplicating its logic.
type narrowedSource struct {
	dict       Dictionary
	candidates []string
}

func (n *narrowedSource) Contains(word string) bool { return n.dict.Contains(word) }
func (n *narrowedSource) Enumerate() []string        { return n.candidates }

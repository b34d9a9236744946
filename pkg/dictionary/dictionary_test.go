package dictionary

import (
	"strings"
	"testing"

	"github.com/lexigraph/spellkit/pkg/suggest"
)

func TestFlatDictionaryLoadAndContains(t *testing.T) {
	src := "# comment\nhello\nworld\n\nruby\ntest\ncode\n"
	d, err := LoadFlatWordList(strings.NewReader(src), "en-US", false)
	if err != nil {
		t.Fatalf("LoadFlatWordList: %v", err)
	}
	if d.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", d.Size())
	}
	if !d.Contains("Hello") {
		t.Error("expected case-insensitive match for Hello")
	}
	if d.Contains("wrold") {
		t.Error("wrold was never inserted")
	}
}

func TestFlatDictionaryCaseSensitive(t *testing.T) {
	d, err := LoadFlatWordList(strings.NewReader("Ruby\n"), "en-US", true)
	if err != nil {
		t.Fatalf("LoadFlatWordList: %v", err)
	}
	if d.Contains("ruby") {
		t.Error("case-sensitive dictionary should not fold ruby to Ruby")
	}
	if !d.Contains("Ruby") {
		t.Error("expected exact-case match")
	}
}

func TestCustomDictionaryAddRemove(t *testing.T) {
	d := NewCustomDictionary([]string{"cat", "dog"}, "en-US", false)
	if added := d.Add("cat"); added {
		t.Error("cat already present, Add should report false")
	}
	if added := d.Add("bird"); !added {
		t.Error("bird is new, Add should report true")
	}
	if !d.Remove("dog") {
		t.Error("Remove(dog) should report true")
	}
	if d.Contains("dog") {
		t.Error("dog should be gone after Remove")
	}
}

func TestTrieDictionaryPrefixAndSuggest(t *testing.T) {
	d, err := LoadTrieWordList(strings.NewReader("hello\nhelp\nheld\n"), "en-US", false)
	if err != nil {
		t.Fatalf("LoadTrieWordList: %v", err)
	}
	prefixed := d.WordsWithPrefix("hel")
	if len(prefixed) != 3 {
		t.Fatalf("WordsWithPrefix(hel) = %v, want 3 entries", prefixed)
	}
	if !d.Contains("hello") {
		t.Error("expected hello to be contained")
	}
	suggestions := d.Suggest("helo", 5)
	found := false
	for _, s := range suggestions {
		if s == "hello" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(helo) = %v, want to contain hello", suggestions)
	}
}

// TestHunspellCrossProductComposition is the literal spec scenario:
// run/AB, PFX A (0 re .) cross=Y, SFX B (0 ning .) cross=Y.
func TestHunspellCrossProductComposition(t *testing.T) {
	aff := "FLAG char\nPFX A Y 1\nPFX A 0 re .\n\nSFX B Y 1\nSFX B 0 ning .\n"
	dic := "1\nrun/AB\n"

	d, err := LoadHunspellDictionary(strings.NewReader(aff), "test.aff", strings.NewReader(dic), "test.dic", "en-US", false)
	if err != nil {
		t.Fatalf("LoadHunspellDictionary: %v", err)
	}

	if !d.Contains("running") {
		t.Error("expected running to be contained via SFX B")
	}
	if !d.Contains("rerunning") {
		t.Error("expected rerunning to be contained via PFX A + SFX B composition")
	}
	if d.Contains("runs") {
		t.Error("runs should not be contained, no rule produces it")
	}
}

func TestHunspellStatsCountsRulesAndFlags(t *testing.T) {
	aff := "PFX A Y 1\nPFX A 0 re .\n\nSFX B Y 1\nSFX B 0 ning .\n"
	dic := "1\nrun/AB\n"
	d, err := LoadHunspellDictionary(strings.NewReader(aff), "test.aff", strings.NewReader(dic), "test.dic", "en-US", false)
	if err != nil {
		t.Fatalf("LoadHunspellDictionary: %v", err)
	}
	stats := d.Stats()
	if stats.WordCount != 1 {
		t.Errorf("WordCount = %d, want 1", stats.WordCount)
	}
	if stats.FlagCount != 2 {
		t.Errorf("FlagCount = %d, want 2", stats.FlagCount)
	}
	if stats.AffixRuleCount != 2 {
		t.Errorf("AffixRuleCount = %d, want 2", stats.AffixRuleCount)
	}
}

// TestSuggestUsesAcceleratorBelowThreshold forces accel narrowing on
// even a tiny dictionary (threshold 0) and confirms Suggest still finds
// the expected candidate through the accelerator's bucket narrowing.
func TestSuggestUsesAcceleratorBelowThreshold(t *testing.T) {
	suggest.Configure(suggest.DefaultWeights, 2, suggest.SoundexAlgorithm, 2, 3, 0.2, 0)
	defer suggest.Configure(suggest.DefaultWeights, 2, suggest.SoundexAlgorithm, 2, 3, 0.2, 2000)

	d, err := LoadFlatWordList(strings.NewReader("hello\nhelp\nheld\nheap\nworld\n"), "en-US", false)
	if err != nil {
		t.Fatalf("LoadFlatWordList: %v", err)
	}
	got := d.Suggest("helo", 5)
	found := false
	for _, s := range got {
		if s == "hello" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(helo) = %v, want to contain hello", got)
	}
}

func TestWordsMatchingGlob(t *testing.T) {
	d, err := LoadFlatWordList(strings.NewReader("cat\ncar\ncow\ndog\n"), "en-US", false)
	if err != nil {
		t.Fatalf("LoadFlatWordList: %v", err)
	}
	got := d.WordsMatching("c?t")
	if len(got) != 1 || got[0] != "cat" {
		t.Errorf("WordsMatching(c?t) = %v, want [cat]", got)
	}
}

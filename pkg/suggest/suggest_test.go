package suggest

import "testing"

// wordSet is a minimal WordSource used only by this package's tests.
type wordSet struct {
	words []string
	set   map[string]bool
}

func newWordSet(words ...string) *wordSet {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return &wordSet{words: words, set: set}
}

func (w *wordSet) Contains(word string) bool { return w.set[word] }
func (w *wordSet) Enumerate() []string       { return w.words }

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"helo", "hello", 1},
	}
	for _, c := range cases {
		if got := Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSoundexRobertRupert(t *testing.T) {
	if got := Soundex("Robert"); got != "R163" {
		t.Errorf("Soundex(Robert) = %q, want R163", got)
	}
	if got := Soundex("Rupert"); got != "R163" {
		t.Errorf("Soundex(Rupert) = %q, want R163", got)
	}
}

// TestSoundexDropsSecondLetterSharingFirstLettersCode is the standard
// table's collapsing rule applied to the first letter itself: "Pfister"
// collapses P and F (both code 1) into one digit, giving P236, not P123.
func TestSoundexDropsSecondLetterSharingFirstLettersCode(t *testing.T) {
	if got := Soundex("Pfister"); got != "P236" {
		t.Errorf("Soundex(Pfister) = %q, want P236", got)
	}
}

func TestSuggestionSetInvariants(t *testing.T) {
	set := NewSuggestionSet(3, DefaultWeights)
	set.AddAll([]Suggestion{
		{Word: "held", Distance: 2, Confidence: 0.33},
		{Word: "HELD", Distance: 1, Confidence: 0.5}, // dup by case-folded word
		{Word: "hello", Distance: 1, Confidence: 0.5},
		{Word: "help", Distance: 2, Confidence: 0.33},
		{Word: "heap", Distance: 2, Confidence: 0.33},
	})
	if set.Len() > 3 {
		t.Fatalf("Len() = %d, exceeds max_size 3", set.Len())
	}
	seen := map[string]bool{}
	for _, it := range set.Items() {
		key := foldWord(it.Word)
		if seen[key] {
			t.Fatalf("duplicate case-folded word %q in set", key)
		}
		seen[key] = true
	}
}

func TestPipelineRankingScenario(t *testing.T) {
	dict := newWordSet("hello", "help", "held", "heap", "world")
	set := Generate(dict, "helo", 10, nil, DefaultWeights)
	items := set.Items()
	if len(items) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if items[0].Word != "hello" {
		t.Errorf("first suggestion = %q, want hello", items[0].Word)
	}
	for _, it := range items {
		if it.Word == "world" {
			t.Error("world should not appear in suggestions for helo")
		}
	}
	rest := map[string]bool{}
	for _, it := range items[1:] {
		rest[it.Word] = true
	}
	for _, w := range []string{"help", "held", "heap"} {
		if !rest[w] {
			t.Errorf("expected %q among the distance-2 suggestions, got %v", w, items)
		}
	}
}

func TestGenerateShortCircuitsOnDictionaryHit(t *testing.T) {
	dict := newWordSet("hello", "world")
	set := Generate(dict, "hello", 10, nil, DefaultWeights)
	if set.Len() != 0 {
		t.Errorf("expected empty set for a word already in the dictionary, got %d", set.Len())
	}
}

func TestNgramDiscardsZeroDistanceSelfMatch(t *testing.T) {
	dict := newWordSet("test")
	strat := NewNgramStrategy(3, 0.2)
	ctx := &Context{Word: "test", Dictionary: dict, MaxResults: 10}
	set := strat.Generate(ctx)
	if set.Len() != 0 {
		t.Errorf("expected n-gram strategy to discard the query's own exact match, got %v", set.Items())
	}
}

package trie

import (
	"reflect"
	"testing"
)

func TestInsertContains(t *testing.T) {
	tr := New()
	tr.Insert("hello", nil)
	tr.Insert("help", nil)

	if !tr.Contains("hello") {
		t.Error("expected hello to be contained")
	}
	if tr.Contains("hell") {
		t.Error("hell was never inserted as a word, should not be contained")
	}
	if !tr.HasPrefix("hell") {
		t.Error("hell is a prefix of inserted words")
	}
	if tr.HasPrefix("xyz") {
		t.Error("xyz is not a prefix of anything inserted")
	}
}

func TestInsertWordCountIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("cat", 1)
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
	tr.Insert("cat", 2)
	if tr.Len() != 1 {
		t.Fatalf("re-inserting should not grow count, got %d", tr.Len())
	}
	payload, ok := tr.Payload("cat")
	if !ok || payload != 2 {
		t.Fatalf("expected overwritten payload 2, got %v, %v", payload, ok)
	}
}

func TestEmptyStringInsertMarksRoot(t *testing.T) {
	tr := New()
	tr.Insert("", nil)
	if !tr.Contains("") {
		t.Error("expected empty string to be contained after insert")
	}
}

func TestWordsWithPrefixOrder(t *testing.T) {
	tr := New()
	// insert in a deliberately non-lexicographic order
	for _, w := range []string{"dog", "cat", "car", "can", "bat"} {
		tr.Insert(w, nil)
	}
	got := tr.WordsWithPrefix("ca")
	want := []string{"cat", "car", "can"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordsWithPrefix(ca) = %v, want %v (insertion order)", got, want)
	}
}

func TestSuggestionsFallsBackToLongestMatchedPrefix(t *testing.T) {
	tr := New()
	for _, w := range []string{"hello", "help", "held"} {
		tr.Insert(w, nil)
	}
	got := tr.Suggestions("helz", 10)
	want := []string{"hello", "help", "held"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(helz) = %v, want %v", got, want)
	}
}

func TestSuggestionsRespectsMax(t *testing.T) {
	tr := New()
	for _, w := range []string{"aa", "ab", "ac", "ad"} {
		tr.Insert(w, nil)
	}
	got := tr.Suggestions("a", 2)
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 results, got %v", got)
	}
}

func TestEachWordIteratorExhausts(t *testing.T) {
	tr := New()
	words := []string{"a", "ab", "abc"}
	for _, w := range words {
		tr.Insert(w, nil)
	}
	it := tr.EachWord()
	var seen []string
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		seen = append(seen, e.Word)
	}
	if !reflect.DeepEqual(seen, words) {
		t.Errorf("EachWord order = %v, want %v", seen, words)
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator should keep returning ok=false")
	}
}

func TestMergeIntersectUnion(t *testing.T) {
	a := New()
	a.Insert("cat", nil)
	a.Insert("dog", nil)

	b := New()
	b.Insert("dog", nil)
	b.Insert("bird", nil)

	merged := New()
	merged.Merge(a)
	merged.Merge(b)
	for _, w := range []string{"cat", "dog", "bird"} {
		if !merged.Contains(w) {
			t.Errorf("merged trie missing %q", w)
		}
	}

	inter := a.Intersect(b)
	if inter.Len() != 1 || !inter.Contains("dog") {
		t.Errorf("expected intersection to contain only dog, got len=%d", inter.Len())
	}

	union := a.Union(b)
	if union.Len() != 3 {
		t.Errorf("expected union of 3 distinct words, got %d", union.Len())
	}
}

func TestDelete(t *testing.T) {
	tr := New()
	tr.Insert("cat", nil)
	tr.Insert("catalog", nil)
	if !tr.Delete("cat") {
		t.Fatal("expected Delete(cat) to report true")
	}
	if tr.Contains("cat") {
		t.Error("cat should no longer be contained after Delete")
	}
	if !tr.Contains("catalog") {
		t.Error("catalog should remain contained, cat's node is still on its path")
	}
	if tr.Delete("cat") {
		t.Error("second Delete(cat) should report false, already removed")
	}
}

func TestFreezeBlocksMutation(t *testing.T) {
	tr := New()
	tr.Insert("cat", nil)
	tr.Freeze()
	tr.Insert("dog", nil)
	if tr.Contains("dog") {
		t.Error("insert after freeze should be a no-op")
	}
}

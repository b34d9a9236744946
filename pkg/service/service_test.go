package service

import (
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lexigraph/spellkit/pkg/config"
	"github.com/lexigraph/spellkit/pkg/dictionary"
	"github.com/lexigraph/spellkit/pkg/spellchecker"
)

// TestCheckRequestRoundTrip encodes a CheckRequest with msgpack, decodes
// it back into a raw map the way Service does, and verifies the
// resulting DocumentResult matches calling Spellchecker.Check directly.
func TestCheckRequestRoundTrip(t *testing.T) {
	dict, err := dictionary.LoadFlatWordList(strings.NewReader("hello\nworld\nruby\ntest\ncode\n"), "en-US", false)
	if err != nil {
		t.Fatalf("LoadFlatWordList: %v", err)
	}
	checker := spellchecker.NewSpellchecker(dict, config.DefaultConfig())

	req := CheckRequest{Op: "check", Text: "Hello wrold"}
	encoded, err := msgpack.Marshal(&req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]interface{}
	if err := msgpack.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	text, _ := raw["text"].(string)
	if text != req.Text {
		t.Fatalf("decoded text = %q, want %q", text, req.Text)
	}

	direct := checker.Check(req.Text)
	viaWire := checker.Check(text)
	if direct.Success != viaWire.Success || direct.WordCount != viaWire.WordCount || len(direct.Errors) != len(viaWire.Errors) {
		t.Fatalf("wire-decoded check diverged from direct check: %+v vs %+v", direct, viaWire)
	}
}

// TestSuggestRequestRoundTrip mirrors TestCheckRequestRoundTrip: encodes a
// SuggestRequest with msgpack, decodes it back into the raw map Service
// actually dispatches on, and verifies the resulting suggestions match
// calling Spellchecker.Suggest directly.
func TestSuggestRequestRoundTrip(t *testing.T) {
	dict, err := dictionary.LoadFlatWordList(strings.NewReader("hello\nworld\nruby\ntest\ncode\n"), "en-US", false)
	if err != nil {
		t.Fatalf("LoadFlatWordList: %v", err)
	}
	checker := spellchecker.NewSpellchecker(dict, config.DefaultConfig())

	req := SuggestRequest{Op: "suggest", Word: "wrold", Max: 3}
	encoded, err := msgpack.Marshal(&req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]interface{}
	if err := msgpack.Unmarshal(encoded, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	word, _ := raw["word"].(string)
	if word != req.Word {
		t.Fatalf("decoded word = %q, want %q", word, req.Word)
	}

	direct := checker.Suggest(req.Word)
	viaWire := checker.Suggest(word)
	if len(direct) != len(viaWire) {
		t.Fatalf("wire-decoded suggest diverged from direct suggest: %v vs %v", direct, viaWire)
	}
	for i := range direct {
		if direct[i] != viaWire[i] {
			t.Errorf("suggestion[%d] = %q, want %q", i, viaWire[i], direct[i])
		}
	}
}

func TestSuggestResponseEncoding(t *testing.T) {
	resp := SuggestResponse{Suggestions: []string{"world", "word"}}
	encoded, err := msgpack.Marshal(&resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded SuggestResponse
	if err := msgpack.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Suggestions) != 2 || decoded.Suggestions[0] != "world" {
		t.Errorf("decoded = %v, want [world word]", decoded.Suggestions)
	}
}

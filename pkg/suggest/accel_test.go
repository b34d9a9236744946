package suggest

import "testing"

func TestAcceleratorNarrowsByFirstTwoLetters(t *testing.T) {
	accel := NewAccelerator()
	accel.Populate([]string{"hello", "help", "held", "heap", "world"})

	got := accel.Candidates("helo", 0)
	want := map[string]bool{"hello": true, "help": true, "held": true, "heap": true}
	if len(got) != len(want) {
		t.Fatalf("Candidates(helo, 0) = %v, want exactly %v", got, want)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("unexpected candidate %q for bucket 'he'", w)
		}
	}
}

// TestAcceleratorCrossesFirstLetterWithinDistance is the fix for the
// dropped first-letter-substitution case: "cat" buckets under "ca",
// which is one edit from "ka" ("kat"'s bucket), so a maxDistance-1
// lookup must still surface it even though the literal buckets differ.
func TestAcceleratorCrossesFirstLetterWithinDistance(t *testing.T) {
	accel := NewAccelerator()
	accel.Populate([]string{"cat", "bat", "dog"})

	got := accel.Candidates("kat", 1)
	found := false
	for _, w := range got {
		if w == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("Candidates(kat, 1) = %v, want to contain cat", got)
	}
}

func TestAcceleratorUnpopulatedReturnsNil(t *testing.T) {
	accel := NewAccelerator()
	if got := accel.Candidates("anything", 2); got != nil {
		t.Errorf("expected nil candidates before Populate, got %v", got)
	}
}

func TestGenerateWithAcceleratorParity(t *testing.T) {
	dict := newWordSet("hello", "help", "held", "heap", "world")
	accel := NewAccelerator()
	accel.Populate(dict.words)

	withAccel := GenerateWithAccelerator(dict, "helo", 10, nil, DefaultWeights, accel, 0, 2)
	without := Generate(dict, "helo", 10, nil, DefaultWeights)

	wa, wo := withAccel.Words(), without.Words()
	if len(wa) != len(wo) {
		t.Fatalf("accelerated result %v differs in length from unaccelerated %v", wa, wo)
	}
	for i := range wa {
		if wa[i] != wo[i] {
			t.Errorf("accelerated[%d] = %q, unaccelerated[%d] = %q, want identical ranked order", i, wa[i], i, wo[i])
		}
	}
}

// TestGenerateWithAcceleratorParityFirstLetterTypo is the SPEC_FULL.md
// §8 "byte-for-byte identical" property exercised on a first-letter
// substitution: the accelerated scan must not silently drop "cat" just
// because it buckets differently from the query.
func TestGenerateWithAcceleratorParityFirstLetterTypo(t *testing.T) {
	dict := newWordSet("cat", "bat", "dog", "car", "cap")
	accel := NewAccelerator()
	accel.Populate(dict.words)

	withAccel := GenerateWithAccelerator(dict, "kat", 10, nil, DefaultWeights, accel, 0, 2)
	without := Generate(dict, "kat", 10, nil, DefaultWeights)

	wa, wo := withAccel.Words(), without.Words()
	if len(wa) != len(wo) {
		t.Fatalf("accelerated result %v differs in length from unaccelerated %v", wa, wo)
	}
	for i := range wa {
		if wa[i] != wo[i] {
			t.Errorf("accelerated[%d] = %q, unaccelerated[%d] = %q, want identical ranked order", i, wa[i], i, wo[i])
		}
	}
}

package passcomp

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestEntropySegmentationConcatenatesToInput(t *testing.T) {
	sl := mustLoadSmartlist(t, "hello\nworld\n")
	pwd := []byte("helloworld123")
	res := sl.Entropy(pwd)

	var got []byte
	for _, seg := range res.Segments {
		got = append(got, seg...)
	}
	if !bytes.Equal(got, pwd) {
		t.Fatalf("segments do not concatenate back to input: got %q, want %q", got, pwd)
	}
}

func TestEntropyCostConsistency(t *testing.T) {
	sl := mustLoadSmartlist(t, "hello\nworld\n")
	pwd := []byte("helloworld")
	res := sl.Entropy(pwd)

	var want float64
	for _, seg := range res.Segments {
		rank, ok := sl.Rank(seg)
		if !ok {
			t.Fatalf("segment %q is not a key of the smartlist", seg)
		}
		want += math.Log2(float64(rank))
	}
	if !almostEqual(res.Cost, want) {
		t.Fatalf("Cost = %v, want %v (sum of segment costs)", res.Cost, want)
	}
}

func TestEntropyTotalityOverArbitraryBytes(t *testing.T) {
	sl := mustLoadSmartlist(t, "a\n")
	pwd := []byte{0x00, 0xFF, 0x7F, 'z', 0x80}
	res := sl.Entropy(pwd)
	if math.IsInf(res.Cost, 1) {
		t.Fatalf("expected a finite cost for arbitrary bytes, got +Inf")
	}
}

func TestEntropyEmptyPassword(t *testing.T) {
	sl := mustLoadSmartlist(t, "a\n")
	res := sl.Entropy(nil)
	if res.Cost != 0 {
		t.Fatalf("Cost for empty password = %v, want 0", res.Cost)
	}
	if len(res.Segments) != 0 {
		t.Fatalf("Segments for empty password = %v, want empty", res.Segments)
	}
}

func TestEntropyPrefersKnownTokenOverSingleBytes(t *testing.T) {
	// "helloworld" at rank 1 costs log2(1) = 0, strictly cheaper than any
	// single-byte cover of the same span, so the solver must use it whole.
	sl := mustLoadSmartlist(t, "helloworld\n123\n")
	res := sl.Entropy([]byte("helloworld123!"))
	if len(res.Segments) != 3 {
		t.Fatalf("expected a 3-segment cover (helloworld, 123, !), got %d segments: %v",
			len(res.Segments), segmentsAsStrings(res.Segments))
	}
	if string(res.Segments[0]) != "helloworld" || string(res.Segments[1]) != "123" || string(res.Segments[2]) != "!" {
		t.Fatalf("unexpected segmentation: %v", segmentsAsStrings(res.Segments))
	}
}

func TestEntropyLongestMatchFirstTieBreak(t *testing.T) {
	// Ranks: zero=1, a=2, b=3, f4=4, f5=5, ab=6. Since log2(x*y) ==
	// log2(x)+log2(y), rank(ab)==rank(a)*rank(b) makes the one-segment
	// cover ["ab"] and the two-segment cover ["a","b"] exactly tied on
	// cost. Longest-match-first must prefer the single two-byte token.
	sl := mustLoadSmartlist(t, "zero\na\nb\nf4\nf5\nab\n")
	res := sl.Entropy([]byte("ab"))
	if len(res.Segments) != 1 || string(res.Segments[0]) != "ab" {
		t.Fatalf("expected longest-match-first to choose a single segment \"ab\", got %v",
			segmentsAsStrings(res.Segments))
	}
}

func TestSummarizeBundlesBothModels(t *testing.T) {
	sl := mustLoadSmartlist(t, "hello\n")
	pwd := []byte("hello1")
	sum := sl.Summarize(pwd)
	if !almostEqual(sum.CharsetCost, MaskCost(pwd)) {
		t.Fatalf("Summarize.CharsetCost mismatch")
	}
	if sum.CharsetMask != MaskString(pwd) {
		t.Fatalf("Summarize.CharsetMask mismatch")
	}
	if sum.HybridMask == "" {
		t.Fatalf("Summarize.HybridMask must not be empty")
	}
}

func TestHybridMaskStringWrapsMultiByteTokens(t *testing.T) {
	sl := mustLoadSmartlist(t, "hello\n")
	res := sl.Entropy([]byte("hello1"))
	mask := res.HybridMaskString()
	if !strings.Contains(mask, "<hello>") {
		t.Fatalf("expected hybrid mask to wrap the multi-byte token, got %q", mask)
	}
}

func segmentsAsStrings(segs [][]byte) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = string(s)
	}
	return out
}

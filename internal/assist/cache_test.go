package assist

import "testing"

func TestCacheHitIsStable(t *testing.T) {
	c := NewCache()

	if _, ok := c.Explanation(0); ok {
		t.Fatal("empty cache should miss")
	}

	c.PutExplanation(0, Explanation{QuestionID: "1", Text: "because"})
	got, ok := c.Explanation(0)
	if !ok || got.Text != "because" {
		t.Fatalf("got %+v, ok=%v", got, ok)
	}

	// A second read returns the same payload; nothing is consumed.
	again, ok := c.Explanation(0)
	if !ok || again.Text != "because" {
		t.Fatal("cache entry must survive repeated reads")
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	c := NewCache()
	c.PutExplanation(1, Explanation{Text: "one"})
	c.PutExample(1, Example{Answer: "x"})

	if _, ok := c.Explanation(2); ok {
		t.Error("explanation leaked across indices")
	}
	if _, ok := c.Example(2); ok {
		t.Error("example leaked across indices")
	}
}

func TestFallbackExplanationIsCachedToo(t *testing.T) {
	c := NewCache()
	c.PutExplanation(3, Explanation{Text: "sorry", Fallback: true})

	got, ok := c.Explanation(3)
	if !ok {
		t.Fatal("fallback payload must be cached")
	}
	if !got.Fallback {
		t.Error("fallback flag lost")
	}
}

func TestClearExampleBeforeRegeneration(t *testing.T) {
	c := NewCache()
	c.PutExample(0, Example{Answer: "old"})

	c.ClearExample(0)
	if _, ok := c.Example(0); ok {
		t.Fatal("cleared slot must be empty even if regeneration later fails")
	}

	// Explanations are untouched by example clears.
	c.PutExplanation(0, Explanation{Text: "keep"})
	c.ClearExample(0)
	if _, ok := c.Explanation(0); !ok {
		t.Error("explanation removed by ClearExample")
	}
}

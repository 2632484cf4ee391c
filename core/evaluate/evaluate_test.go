// core/evaluate/evaluate_test.go
package evaluate

import (
	"testing"
)

func TestEvaluateCharacterLevel(t *testing.T) {
	ev := New(Config{})
	res, err := ev.Evaluate("cat", "cot")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.CharCounts.Substitute != 1 || res.CharCounts.Equal != 2 {
		t.Fatalf("bad char counts: %+v", res.CharCounts)
	}
	if got := res.CER(); got != 1.0/3.0 {
		t.Fatalf("CER = %v, want 1/3", got)
	}
	a := res.CharTable.Lookup("a")
	if a == nil || a.Substitutions["o"] != 1 {
		t.Fatalf("char table missing substitution: %+v", a)
	}
}

func TestEvaluateWordLevel(t *testing.T) {
	ev := New(Config{})
	res, err := ev.Evaluate("the quick fox", "the slow fox jumped")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.WordCounts.Substitute != 1 || res.WordCounts.Insert != 1 || res.WordCounts.Equal != 2 {
		t.Fatalf("bad word counts: %+v", res.WordCounts)
	}
	if got := res.WER(); got != 2.0/3.0 {
		t.Fatalf("WER = %v, want 2/3", got)
	}
	q := res.WordTable.Lookup("quick")
	if q == nil || q.Substitutions["slow"] != 1 {
		t.Fatalf("word table missing substitution: %+v", q)
	}
}

func TestEvaluateNormalize(t *testing.T) {
	ev := New(Config{Normalize: true})
	res, err := ev.Evaluate("Hello, World!", "hello world")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.WER() != 0 || res.CER() != 0 {
		t.Fatalf("normalized identical transcripts should have zero error rates: CER=%v WER=%v", res.CER(), res.WER())
	}
	if res.Reference != "hello world" {
		t.Fatalf("normalized reference = %q", res.Reference)
	}
}

func TestEvaluateEmptySides(t *testing.T) {
	ev := New(Config{})
	res, err := ev.Evaluate("", "ab")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.CharCounts.Insert != 2 || res.CER() != 0 {
		t.Fatalf("empty reference: counts=%+v CER=%v", res.CharCounts, res.CER())
	}
	res, err = ev.Evaluate("ab", "")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.CharCounts.Delete != 2 || res.CER() != 1.0 {
		t.Fatalf("empty hypothesis: counts=%+v CER=%v", res.CharCounts, res.CER())
	}
}

// Private per-record tables must be mergeable into batch totals.
func TestEvaluateTablesMerge(t *testing.T) {
	ev := New(Config{})
	r1, err := ev.Evaluate("cat", "cot")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := ev.Evaluate("ab", "b")
	if err != nil {
		t.Fatal(err)
	}
	if err := r1.CharTable.Merge(r2.CharTable); err != nil {
		t.Fatalf("merge: %v", err)
	}
	a := r1.CharTable.Lookup("a")
	if a.ReferenceCount != 2 || a.DeleteCount != 1 || a.Substitutions["o"] != 1 {
		t.Fatalf("merged entry for a: %+v", a)
	}
}

// core/editstats/snapshot_test.go
package editstats

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSanitizeSubstitutionScenario(t *testing.T) {
	tb := buildTable(t, [2]string{"cat", "cot"})
	if err := tb.Derive(); err != nil {
		t.Fatalf("derive: %v", err)
	}
	snap := Sanitize(tb)

	if len(snap) != 4 {
		t.Fatalf("want 4 symbols, got %d", len(snap))
	}
	c := snap["c"]
	if c.ReferenceCount != 1 || c.HypothesisCount != 1 || c.InsertCount != 0 || c.Substitutions != nil {
		t.Fatalf("bad snapshot for c: %+v", c)
	}
	a := snap["a"]
	if a.ReferenceCount != 1 || a.HypothesisCount != 0 {
		t.Fatalf("bad counts for a: %+v", a)
	}
	if sub, ok := a.Substitutions["o"]; !ok || sub.Count != 1 || sub.Rate != 1.0 {
		t.Fatalf("bad substitution for a: %+v", a.Substitutions)
	}
	o := snap["o"]
	if o.ReferenceCount != 0 || o.HypothesisCount != 1 || o.Substitutions != nil {
		t.Fatalf("bad snapshot for o: %+v", o)
	}
}

func TestSanitizeDeleteScenario(t *testing.T) {
	tb := buildTable(t, [2]string{"ab", "b"})
	if err := tb.Derive(); err != nil {
		t.Fatalf("derive: %v", err)
	}
	snap := Sanitize(tb)
	a := snap["a"]
	if a.ReferenceCount != 1 || a.DeleteCount != 1 || a.DeleteRate != 1.0 {
		t.Fatalf("bad snapshot for a: %+v", a)
	}
	b := snap["b"]
	if b.ReferenceCount != 1 || b.HypothesisCount != 1 || b.DeleteCount != 0 {
		t.Fatalf("bad snapshot for b: %+v", b)
	}
}

func TestSanitizeInsertScenario(t *testing.T) {
	tb := buildTable(t, [2]string{"b", "ab"})
	if err := tb.Derive(); err != nil {
		t.Fatalf("derive: %v", err)
	}
	snap := Sanitize(tb)
	a := snap["a"]
	if a.HypothesisCount != 1 || a.InsertCount != 1 || a.InsertRate != 1.0 {
		t.Fatalf("bad snapshot for a: %+v", a)
	}
}

func TestSanitizeDoesNotMutate(t *testing.T) {
	tb := buildTable(t, [2]string{"cat", "cot"})
	if err := tb.Derive(); err != nil {
		t.Fatalf("derive: %v", err)
	}
	before := raw(tb)
	_ = Sanitize(tb)
	if len(raw(tb)) != len(before) {
		t.Fatal("sanitize mutated the source table")
	}
	if a := tb.Lookup("a"); a.Substitutions["o"] != 1 {
		t.Fatal("sanitize mutated substitution counts")
	}
}

// Zero-valued optional fields must vanish from the wire; occurrence counts
// must not, even at zero.
func TestSnapshotJSONOmission(t *testing.T) {
	tb := buildTable(t, [2]string{"cat", "cot"})
	if err := tb.Derive(); err != nil {
		t.Fatalf("derive: %v", err)
	}
	buf, err := json.Marshal(Sanitize(tb))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(buf)
	for _, banned := range []string{`"insert"`, `"delete"`, `"insert_rate"`, `"delete_rate"`} {
		if strings.Contains(s, banned) {
			t.Errorf("zero field %s present in %s", banned, s)
		}
	}
	if !strings.Contains(s, `"reference_ct":0`) {
		t.Errorf("zero reference_ct for inserted symbol must stay on the wire: %s", s)
	}
	if !strings.Contains(s, `"substitute":{"o":{"ct":1,"rate":1}}`) {
		t.Errorf("missing substitution block: %s", s)
	}
}

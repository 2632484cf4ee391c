// core/editstats/snapshot.go
package editstats

// Snapshot is the compact serializable view of a table. Fields tagged
// omitempty drop from the wire when zero; ReferenceCount and
// HypothesisCount always serialize, even at zero, since they are the
// normalizing denominators and their absence would read as "never seen".
type Snapshot[S comparable] map[S]EntrySnapshot[S]

// EntrySnapshot is one symbol's compact view.
type EntrySnapshot[S comparable] struct {
	ReferenceCount  int                        `json:"reference_ct"`
	HypothesisCount int                        `json:"hypothesis_ct"`
	InsertCount     int                        `json:"insert,omitempty"`
	InsertRate      float64                    `json:"insert_rate,omitempty"`
	DeleteCount     int                        `json:"delete,omitempty"`
	DeleteRate      float64                    `json:"delete_rate,omitempty"`
	Substitutions   map[S]SubstitutionSnapshot `json:"substitute,omitempty"`
}

// SubstitutionSnapshot pairs one substitution target's count with its
// derived rate.
type SubstitutionSnapshot struct {
	Count int     `json:"ct"`
	Rate  float64 `json:"rate"`
}

// Sanitize builds the compact view of t. It fills a fresh structure rather
// than deleting from the table during iteration, so t stays intact and
// shared entries are never mutated.
func Sanitize[S comparable](t *Table[S]) Snapshot[S] {
	out := make(Snapshot[S], len(t.entries))
	for s, e := range t.entries {
		es := EntrySnapshot[S]{
			ReferenceCount:  e.ReferenceCount,
			HypothesisCount: e.HypothesisCount,
			InsertCount:     e.InsertCount,
			InsertRate:      e.InsertRate,
			DeleteCount:     e.DeleteCount,
			DeleteRate:      e.DeleteRate,
		}
		if len(e.Substitutions) > 0 {
			subs := make(map[S]SubstitutionSnapshot, len(e.Substitutions))
			for tgt, n := range e.Substitutions {
				if n == 0 {
					continue
				}
				subs[tgt] = SubstitutionSnapshot{Count: n, Rate: e.SubstitutionRates[tgt]}
			}
			if len(subs) > 0 {
				es.Substitutions = subs
			}
		}
		out[s] = es
	}
	return out
}

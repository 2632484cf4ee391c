// core/editstats/derive.go
package editstats

// Derive computes the rate fields from the raw counts and marks the table
// finalized. It runs at most once per table, after every Accumulate and
// Merge for the batch has completed. A zero denominator yields rate 0
// (documented convention: "never seen" reads as rate zero, not NaN).
func (t *Table[S]) Derive() error {
	if t.derived {
		return ErrDerived
	}
	t.derived = true
	for _, e := range t.entries {
		if e.HypothesisCount > 0 {
			e.InsertRate = float64(e.InsertCount) / float64(e.HypothesisCount)
		}
		if e.ReferenceCount > 0 {
			e.DeleteRate = float64(e.DeleteCount) / float64(e.ReferenceCount)
		}
		if len(e.Substitutions) > 0 {
			// ReferenceCount > 0 whenever any substitution was counted.
			e.SubstitutionRates = make(map[S]float64, len(e.Substitutions))
			for tgt, n := range e.Substitutions {
				e.SubstitutionRates[tgt] = float64(n) / float64(e.ReferenceCount)
			}
		}
	}
	return nil
}

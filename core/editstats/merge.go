// core/editstats/merge.go
package editstats

// Merge folds src's raw counts into t: pointwise sums over the union of
// symbols, substitutions summed per (symbol, target) pair. Merge is
// associative and commutative with the empty table as identity, so partial
// tables built by independent workers combine losslessly in any order.
// Both operands must still be underived.
func (t *Table[S]) Merge(src *Table[S]) error {
	if t.derived || src.derived {
		return ErrDerived
	}
	for s, se := range src.entries {
		e := t.entry(s)
		e.ReferenceCount += se.ReferenceCount
		e.HypothesisCount += se.HypothesisCount
		e.InsertCount += se.InsertCount
		e.DeleteCount += se.DeleteCount
		for tgt, n := range se.Substitutions {
			e.Substitutions[tgt] += n
		}
	}
	return nil
}

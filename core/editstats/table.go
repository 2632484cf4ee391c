// core/editstats/table.go
package editstats

import (
	"errors"
	"fmt"

	"asrstat-core/align"
)

// ErrDerived is returned when counts would be mutated after Derive. Rates
// are not additive, so a derived table can no longer Accumulate or Merge.
var ErrDerived = errors.New("editstats: table already derived")

// Entry holds the accumulated statistics for one symbol. Substitutions maps
// each hypothesis symbol this one was confused with to a count. The rate
// fields stay zero until Derive runs on the owning table.
type Entry[S comparable] struct {
	ReferenceCount  int
	HypothesisCount int
	InsertCount     int
	DeleteCount     int
	Substitutions   map[S]int

	InsertRate        float64
	DeleteRate        float64
	SubstitutionRates map[S]float64
}

// Table maps symbols to their edit statistics. The zero value is not
// usable; call New.
type Table[S comparable] struct {
	entries map[S]*Entry[S]
	derived bool
}

// New returns an empty table (the identity element for Merge).
func New[S comparable]() *Table[S] {
	return &Table[S]{entries: make(map[S]*Entry[S])}
}

// entry returns the stats for s, creating a zero-valued entry on first use.
// All entry creation funnels through here.
func (t *Table[S]) entry(s S) *Entry[S] {
	e, ok := t.entries[s]
	if !ok {
		e = &Entry[S]{Substitutions: make(map[S]int)}
		t.entries[s] = e
	}
	return e
}

// Len returns the number of symbols seen so far.
func (t *Table[S]) Len() int { return len(t.entries) }

// Lookup returns the entry for s, or nil if the symbol was never seen.
func (t *Table[S]) Lookup(s S) *Entry[S] { return t.entries[s] }

// Derived reports whether Derive has run on this table.
func (t *Table[S]) Derived() bool { return t.derived }

// Accumulate folds one aligned record into the table. Every reference token
// bumps its symbol's ReferenceCount and every hypothesis token its
// HypothesisCount; insert/delete/substitute chunks additionally bump the
// matching edit counter. Chunks are validated against the sequences first
// and a malformed alignment fails the whole call without touching counts.
func (t *Table[S]) Accumulate(ref, hyp []S, chunks []align.Chunk) error {
	if t.derived {
		return ErrDerived
	}
	if err := align.Validate(chunks, len(ref), len(hyp)); err != nil {
		return fmt.Errorf("editstats: %w", err)
	}
	for _, c := range chunks {
		switch c.Type {
		case align.OpInsert:
			for _, h := range hyp[c.HypStart:c.HypEnd] {
				e := t.entry(h)
				e.HypothesisCount++
				e.InsertCount++
			}
		case align.OpDelete:
			for _, r := range ref[c.RefStart:c.RefEnd] {
				e := t.entry(r)
				e.ReferenceCount++
				e.DeleteCount++
			}
		case align.OpSubstitute:
			for i := 0; i < c.RefEnd-c.RefStart; i++ {
				r, h := ref[c.RefStart+i], hyp[c.HypStart+i]
				re := t.entry(r)
				re.ReferenceCount++
				re.Substitutions[h]++
				t.entry(h).HypothesisCount++
			}
		case align.OpEqual:
			for i := 0; i < c.RefEnd-c.RefStart; i++ {
				t.entry(ref[c.RefStart+i]).ReferenceCount++
				t.entry(hyp[c.HypStart+i]).HypothesisCount++
			}
		}
	}
	return nil
}

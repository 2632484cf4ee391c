// core/evaluate/evaluate.go
package evaluate

import (
	"asrstat-core/align"
	"asrstat-core/editstats"
	"asrstat-core/tokenize"
)

// Config holds evaluation parameters.
type Config struct {
	Normalize bool // lowercase + strip punctuation before tokenizing
}

// Evaluator turns (reference, hypothesis) pairs into per-record edit
// statistics at character and word granularity.
type Evaluator struct {
	cfg Config
}

// New creates a new Evaluator.
func New(c Config) *Evaluator { return &Evaluator{cfg: c} }

// Result carries one record's alignment outcome at both granularities.
// CharTable and WordTable are private partial tables owned by this record;
// callers fold them into batch totals with Merge and must not Derive them.
//
// Index, Audio, SourceFile, and Row identify the record's origin; they are
// filled by the caller, not by Evaluate.
type Result struct {
	Index      int
	Audio      string
	SourceFile string
	Row        int

	Reference  string // post-normalization, as aligned
	Hypothesis string

	CharChunks []align.Chunk
	WordChunks []align.Chunk
	CharCounts align.Counts
	WordCounts align.Counts
	CharRefLen int
	CharHypLen int
	WordRefLen int
	WordHypLen int

	CharTable *editstats.Table[string]
	WordTable *editstats.Table[string]
}

// CER is the record's character error rate (0 for an empty reference).
func (r Result) CER() float64 { return r.CharCounts.ErrorRate(r.CharRefLen) }

// WER is the record's word error rate (0 for an empty reference).
func (r Result) WER() float64 { return r.WordCounts.ErrorRate(r.WordRefLen) }

// Evaluate aligns hypothesis against reference at character and word
// granularity and accumulates both alignments into fresh tables.
func (e *Evaluator) Evaluate(reference, hypothesis string) (Result, error) {
	ref, hyp := reference, hypothesis
	if e.cfg.Normalize {
		ref = tokenize.Normalize(ref)
		hyp = tokenize.Normalize(hyp)
	}
	res := Result{
		Reference:  ref,
		Hypothesis: hyp,
		CharTable:  editstats.New[string](),
		WordTable:  editstats.New[string](),
	}

	refChars, hypChars := tokenize.Characters(ref), tokenize.Characters(hyp)
	res.CharChunks = align.Sequences(refChars, hypChars)
	res.CharCounts = align.CountOps(res.CharChunks)
	res.CharRefLen, res.CharHypLen = len(refChars), len(hypChars)
	if err := res.CharTable.Accumulate(refChars, hypChars, res.CharChunks); err != nil {
		return res, err
	}

	refWords, hypWords := tokenize.Words(ref), tokenize.Words(hyp)
	res.WordChunks = align.Sequences(refWords, hypWords)
	res.WordCounts = align.CountOps(res.WordChunks)
	res.WordRefLen, res.WordHypLen = len(refWords), len(hypWords)
	if err := res.WordTable.Accumulate(refWords, hypWords, res.WordChunks); err != nil {
		return res, err
	}
	return res, nil
}

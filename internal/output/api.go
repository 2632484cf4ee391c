// internal/output/api.go
package output

import (
	"asrstat-core/editstats"
	"asrstat-core/evaluate"
	"asrstat/pkg/api"
)

// ToAPIRecord converts one record's evaluation to the stable wire schema.
func ToAPIRecord(r evaluate.Result) api.RecordStatsV1 {
	return api.RecordStatsV1{
		Index:      r.Index,
		Audio:      r.Audio,
		SourceFile: r.SourceFile,
		RefChars:   r.CharRefLen,
		HypChars:   r.CharHypLen,
		RefWords:   r.WordRefLen,
		HypWords:   r.WordHypLen,
		CharSub:    r.CharCounts.Substitute,
		CharIns:    r.CharCounts.Insert,
		CharDel:    r.CharCounts.Delete,
		WordSub:    r.WordCounts.Substitute,
		WordIns:    r.WordCounts.Insert,
		WordDel:    r.WordCounts.Delete,
		CER:        r.CER(),
		WER:        r.WER(),
	}
}

// ToAPITable converts a sanitized snapshot to the stable wire schema.
func ToAPITable(snap editstats.Snapshot[string]) map[string]api.EntryV1 {
	out := make(map[string]api.EntryV1, len(snap))
	for sym, e := range snap {
		entry := api.EntryV1{
			ReferenceCount:  e.ReferenceCount,
			HypothesisCount: e.HypothesisCount,
			InsertCount:     e.InsertCount,
			InsertRate:      e.InsertRate,
			DeleteCount:     e.DeleteCount,
			DeleteRate:      e.DeleteRate,
		}
		if len(e.Substitutions) > 0 {
			entry.Substitutions = make(map[string]api.SubstituteV1, len(e.Substitutions))
			for tgt, s := range e.Substitutions {
				entry.Substitutions[tgt] = api.SubstituteV1{Count: s.Count, Rate: s.Rate}
			}
		}
		out[sym] = entry
	}
	return out
}

// internal/output/json.go
package output

import (
	"io"

	"asrstat-core/editstats"
	"asrstat-core/evaluate"
	"asrstat/internal/jsonutil"
	"asrstat/pkg/api"
)

// WriteRecordsJSON writes record results as one indented JSON array.
func WriteRecordsJSON(w io.Writer, list []evaluate.Result) error {
	out := make([]api.RecordStatsV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return jsonutil.EncodePretty(w, out)
}

// BuildReport assembles the aggregate ReportV1 from the batch totals and
// the two sanitized tables.
func BuildReport(records, refChars, hypChars, refWords, hypWords int, chars, words editstats.Snapshot[string]) api.ReportV1 {
	return api.ReportV1{
		Records:    records,
		RefChars:   refChars,
		HypChars:   hypChars,
		RefWords:   refWords,
		HypWords:   hypWords,
		Characters: ToAPITable(chars),
		Words:      ToAPITable(words),
	}
}

// WriteReport writes the aggregate report as indented JSON.
func WriteReport(w io.Writer, rep api.ReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}

// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"asrstat-core/evaluate"
)

// TSVHeader is the canonical header row for text/TSV per-record output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "index\taudio\tsource_file\tref_chars\thyp_chars\tref_words\thyp_words\tchar_sub\tchar_ins\tchar_del\tword_sub\tword_ins\tword_del\tcer\twer"

func writeRow(w io.Writer, r evaluate.Result) error {
	_, err := fmt.Fprintf(
		w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.4f\t%.4f\n",
		r.Index, r.Audio, r.SourceFile,
		r.CharRefLen, r.CharHypLen, r.WordRefLen, r.WordHypLen,
		r.CharCounts.Substitute, r.CharCounts.Insert, r.CharCounts.Delete,
		r.WordCounts.Substitute, r.WordCounts.Insert, r.WordCounts.Delete,
		r.CER(), r.WER(),
	)
	return err
}

// WriteTSV writes record results as a tab-delimited table.
func WriteTSV(w io.Writer, list []evaluate.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

// StreamTSV streams record results from a channel to the writer.
func StreamTSV(w io.Writer, in <-chan evaluate.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRow(w, r); err != nil {
			return err
		}
	}
	return nil
}

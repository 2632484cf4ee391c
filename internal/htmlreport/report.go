// internal/htmlreport/report.go
package htmlreport

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"asrstat-core/evaluate"
)

//go:embed report.tmpl
var reportTmpl string

var tmpl = template.Must(template.New("report").Parse(reportTmpl))

type cellView struct {
	Class string
	Ref   string
	Hyp   string
}

type recordView struct {
	Index      int
	Audio      string
	Reference  string
	Hypothesis string
	CER        string
	WER        string
	Cells      []cellView
}

type reportView struct {
	Records []recordView
}

// segment slices [start,end) out of rs, with spaces shown as underscores
// so chunk boundaries around whitespace stay visible.
func segment(rs []rune, start, end int) string {
	return strings.ReplaceAll(string(rs[start:end]), " ", "_")
}

// Render writes the per-record character-alignment visualization. Callers
// pass results in the order rows should appear.
func Render(w io.Writer, results []evaluate.Result) error {
	view := reportView{Records: make([]recordView, 0, len(results))}
	for _, r := range results {
		ref, hyp := []rune(r.Reference), []rune(r.Hypothesis)
		rv := recordView{
			Index:      r.Index,
			Audio:      r.Audio,
			Reference:  r.Reference,
			Hypothesis: r.Hypothesis,
			CER:        fmt.Sprintf("%.4f", r.CER()),
			WER:        fmt.Sprintf("%.4f", r.WER()),
			Cells:      make([]cellView, 0, len(r.CharChunks)),
		}
		for _, c := range r.CharChunks {
			rv.Cells = append(rv.Cells, cellView{
				Class: string(c.Type),
				Ref:   segment(ref, c.RefStart, c.RefEnd),
				Hyp:   segment(hyp, c.HypStart, c.HypEnd),
			})
		}
		view.Records = append(view.Records, rv)
	}
	return tmpl.Execute(w, view)
}

// internal/htmlreport/report_test.go
package htmlreport

import (
	"bytes"
	"strings"
	"testing"

	"asrstat-core/evaluate"
)

func evalRecord(t *testing.T, idx int, ref, hyp string) evaluate.Result {
	t.Helper()
	res, err := evaluate.New(evaluate.Config{}).Evaluate(ref, hyp)
	if err != nil {
		t.Fatalf("evaluate %q/%q: %v", ref, hyp, err)
	}
	res.Index = idx
	return res
}

func TestRenderChunkClasses(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []evaluate.Result{evalRecord(t, 0, "cat", "cot")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		`class="equal"`,
		`class="substitute"`,
		"Reference: cat",
		"Hypothesis: cot",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestRenderSpacesAsUnderscores(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []evaluate.Result{evalRecord(t, 0, "a cat", "a bat")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "a_") {
		t.Fatalf("spaces should render as underscores inside cells:\n%s", buf.String())
	}
}

func TestRenderEscapesMarkup(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []evaluate.Result{evalRecord(t, 0, "<b>", "<i>")})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "<b>") {
		t.Fatal("reference markup not escaped")
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "0 records") {
		t.Fatalf("empty report should still render: %s", buf.String())
	}
}

// internal/records/reader_test.go
package records

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func collect(t *testing.T, paths ...string) []Record {
	t.Helper()
	var out []Record
	if err := ForEach(context.Background(), paths, func(r Record) error {
		out = append(out, r)
		return nil
	}); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	return out
}

func TestForEachBasic(t *testing.T) {
	p := write(t, "in.csv", "reference,hypothesis\ncat,cot\nab,b\n")
	recs := collect(t, p)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Reference != "cat" || recs[0].Hypothesis != "cot" || recs[0].Row != 2 {
		t.Fatalf("bad first record: %+v", recs[0])
	}
	if recs[1].Index != 1 {
		t.Fatalf("bad index: %+v", recs[1])
	}
}

func TestForEachAudioColumn(t *testing.T) {
	p := write(t, "in.csv", "reference,hypothesis,audio\ncat,cot,clip1.wav\n")
	recs := collect(t, p)
	if len(recs) != 1 || recs[0].Audio != "clip1.wav" {
		t.Fatalf("audio column not carried: %+v", recs)
	}
}

func TestForEachQuotedFields(t *testing.T) {
	p := write(t, "in.csv", "reference,hypothesis\n\"hello, there\",\"hello there\"\n")
	recs := collect(t, p)
	if len(recs) != 1 || recs[0].Reference != "hello, there" {
		t.Fatalf("quoted field mangled: %+v", recs)
	}
}

func TestForEachGlobalIndexAcrossFiles(t *testing.T) {
	p1 := write(t, "a.csv", "reference,hypothesis\ncat,cot\n")
	p2 := write(t, "b.csv", "reference,hypothesis\nab,b\n")
	recs := collect(t, p1, p2)
	if len(recs) != 2 || recs[1].Index != 1 || recs[1].SourceFile != p2 {
		t.Fatalf("global indexing broken: %+v", recs)
	}
}

func TestForEachGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.csv.gz")
	fh, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte("reference,hypothesis\ncat,cot\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}
	recs := collect(t, p)
	if len(recs) != 1 || recs[0].Reference != "cat" {
		t.Fatalf("gzip input broken: %+v", recs)
	}
}

func TestForEachBadHeader(t *testing.T) {
	for _, data := range []string{
		"",
		"ref,hyp\ncat,cot\n",
		"reference,hypothesis,speaker\ncat,cot,x\n",
	} {
		p := write(t, "bad.csv", data)
		err := ForEach(context.Background(), []string{p}, func(Record) error { return nil })
		if !errors.Is(err, ErrHeader) {
			t.Errorf("data %q: err=%v, want ErrHeader", data, err)
		}
	}
}

func TestForEachBadShape(t *testing.T) {
	p := write(t, "bad.csv", "reference,hypothesis\nonlyref\n")
	err := ForEach(context.Background(), []string{p}, func(Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("shape error should name the row, got %v", err)
	}
}

func TestForEachMissingFile(t *testing.T) {
	err := ForEach(context.Background(), []string{"no-such-file.csv"}, func(Record) error { return nil })
	if err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestForEachVisitErrorStops(t *testing.T) {
	p := write(t, "in.csv", "reference,hypothesis\na,b\nc,d\n")
	boom := errors.New("boom")
	calls := 0
	err := ForEach(context.Background(), []string{p}, func(Record) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) || calls != 1 {
		t.Fatalf("visit error not propagated promptly: err=%v calls=%d", err, calls)
	}
}

func TestForEachContextCancel(t *testing.T) {
	p := write(t, "in.csv", "reference,hypothesis\na,b\nc,d\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEach(ctx, []string{p}, func(Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

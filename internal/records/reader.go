// internal/records/reader.go
package records

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Record is one (reference, hypothesis) pair read from a CSV input. Audio
// is the optional third column, carried through to per-record outputs but
// ignored by the stats engine.
type Record struct {
	Index      int    // 0-based position across all inputs
	SourceFile string
	Row        int // 1-based CSV row in its source file (header is row 1)
	Reference  string
	Hypothesis string
	Audio      string
}

// ErrHeader is returned when an input's header row is not one of the two
// accepted forms.
var ErrHeader = errors.New(`header must be "reference,hypothesis" or "reference,hypothesis,audio"`)

func validHeader(h []string) bool {
	if len(h) < 2 || len(h) > 3 || h[0] != "reference" || h[1] != "hypothesis" {
		return false
	}
	return len(h) == 2 || h[2] == "audio"
}

// ForEach streams records from the given CSV paths in order, assigning a
// global index across files, and calls visit for each. The first error
// stops the stream, whether it came from open, parse, header, shape,
// cancellation, or visit.
func ForEach(ctx context.Context, paths []string, visit func(Record) error) error {
	idx := 0
	for _, p := range paths {
		if err := forEachFile(ctx, p, &idx, visit); err != nil {
			return err
		}
	}
	return nil
}

func forEachFile(ctx context.Context, path string, idx *int, visit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	r := csv.NewReader(bufio.NewReader(rc))
	r.FieldsPerRecord = -1 // shape checked per row for a better message

	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: %w", path, ErrHeader)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !validHeader(header) {
		return fmt.Errorf("%s: %w", path, ErrHeader)
	}

	for row := 2; ; row++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fields, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if len(fields) < 2 || len(fields) > 3 {
			return fmt.Errorf("%s row %d: want 2 or 3 fields, got %d", path, row, len(fields))
		}
		rec := Record{
			Index:      *idx,
			SourceFile: path,
			Row:        row,
			Reference:  fields[0],
			Hypothesis: fields[1],
		}
		if len(fields) == 3 {
			rec.Audio = fields[2]
		}
		*idx++
		if err := visit(rec); err != nil {
			return err
		}
	}
}

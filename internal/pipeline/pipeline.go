// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"asrstat-core/editstats"
	"asrstat-core/evaluate"
	"asrstat/internal/records"
)

// Config controls the record pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Totals are the batch-level tables folded from every record's private
// tables, plus token totals for the report header. Raw counts only; the
// caller runs Derive once after the pipeline drains.
type Totals struct {
	Records  int
	RefChars int
	HypChars int
	RefWords int
	HypWords int
	Chars    *editstats.Table[string]
	Words    *editstats.Table[string]
}

// ForEachRecord reads records from csvFiles, evaluates them on a worker
// pool, folds each record's partial tables into the returned totals, and
// streams evaluate.Results to visit. Visit runs on a single goroutine but
// sees results in completion order; callers wanting record order sort by
// Result.Index. A failing record aborts the batch rather than producing
// a silently incomplete table; the error names its source file and row.
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	csvFiles []string,
	ev Evaluator,
	visit func(evaluate.Result) error,
) (Totals, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	totals := Totals{
		Chars: editstats.New[string](),
		Words: editstats.New[string](),
	}

	type outcome struct {
		res evaluate.Result
		err error
	}
	jobs := make(chan records.Record, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Workers: each record evaluated into tables only it owns.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					res, err := ev.Evaluate(rec.Reference, rec.Hypothesis)
					if err != nil {
						err = fmt.Errorf("%s row %d: %w", rec.SourceFile, rec.Row, err)
					}
					res.Index = rec.Index
					res.Audio = rec.Audio
					res.SourceFile = rec.SourceFile
					res.Row = rec.Row
					select {
					case results <- outcome{res: res, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: the only goroutine that touches the batch tables.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for o := range results {
			if cerr != nil {
				continue
			}
			if o.err != nil {
				cerr = o.err
				continue
			}
			if err := totals.Chars.Merge(o.res.CharTable); err != nil {
				cerr = err
				continue
			}
			if err := totals.Words.Merge(o.res.WordTable); err != nil {
				cerr = err
				continue
			}
			totals.Records++
			totals.RefChars += o.res.CharRefLen
			totals.HypChars += o.res.CharHypLen
			totals.RefWords += o.res.WordRefLen
			totals.HypWords += o.res.WordHypLen
			if err := visit(o.res); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

	// Feed work.
	rerr := records.ForEach(ctx, csvFiles, func(rec records.Record) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- rec:
			return nil
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return totals, ctx.Err()
	}
	if rerr != nil {
		return totals, rerr
	}
	return totals, cerr
}

// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"asrstat-core/editstats"
	"asrstat-core/evaluate"
	"asrstat/internal/cli"
	"asrstat/internal/cmdutil"
	"asrstat/internal/htmlreport"
	"asrstat/internal/output"
	"asrstat/internal/pipeline"
	"asrstat/internal/runutil"
	"asrstat/internal/version"
	"asrstat/internal/writers"
	"asrstat/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("asrstat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "asrstat version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	threads := runutil.EffectiveThreads(opts.Threads)

	ev := evaluate.New(evaluate.Config{Normalize: opts.Normalize})

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// The per-record stream owns stdout unless the aggregate report was
	// asked for on stdout too; then the report wins and the stream is
	// suppressed.
	var resCh chan<- evaluate.Result
	var writeErr <-chan error
	if opts.JSON != "-" {
		resCh, writeErr = writers.StartRecordWriter(outw, opts.Output, opts.Sort, opts.Header, runutil.ChannelDepth(threads))
	}

	var kept []evaluate.Result

	totals, runErr := pipeline.ForEachRecord(ctx, pipeline.Config{Threads: threads}, opts.Inputs, ev,
		func(r evaluate.Result) error {
			if opts.HTML != "" {
				kept = append(kept, r)
			}
			if resCh == nil {
				return nil
			}
			select {
			case resCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	if resCh != nil {
		close(resCh)
		if werr := <-writeErr; writers.IsBrokenPipe(werr) {
			return 0
		} else if werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return 3
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, runErr)
		return 3
	}

	if totals.Records == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no records found in %d input file(s)", len(opts.Inputs))
	}

	if err := totals.Chars.Derive(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := totals.Words.Derive(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.JSON != "" {
		rep := output.BuildReport(totals.Records,
			totals.RefChars, totals.HypChars, totals.RefWords, totals.HypWords,
			editstats.Sanitize(totals.Chars), editstats.Sanitize(totals.Words))
		if opts.JSON == "-" {
			if err := output.WriteReport(outw, rep); err != nil && !writers.IsBrokenPipe(err) {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
		} else if err := writeReportFile(opts.JSON, rep); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if opts.HTML != "" {
		sort.Slice(kept, func(i, j int) bool { return kept[i].Index < kept[j].Index })
		if err := writeHTMLFile(opts.HTML, kept); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func writeReportFile(path string, rep api.ReportV1) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteReport(f, rep); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeHTMLFile(path string, results []evaluate.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := htmlreport.Render(f, results); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

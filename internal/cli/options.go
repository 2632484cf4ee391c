// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"asrstat/internal/cliutil"
	"asrstat/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs []string // CSV file(s); "-" is stdin

	// Reports
	JSON string // aggregate JSON report path ("-" for stdout)
	HTML string // HTML alignment report path

	// Per-record stream
	Output string // text | json | jsonl
	Sort   bool
	Header bool // true unless --no-header

	// Evaluation
	Normalize bool

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-symbol error statistics for ASR transcripts

Reads CSV records (header "reference,hypothesis" or
"reference,hypothesis,audio"), aligns each hypothesis against its
reference at character and word level, and aggregates confusion tables.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments (after glob expansion) are extra input files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var inputs stringSlice
	fs.Var(&inputs, "input", "input CSV file (repeatable or '-') [*]")
	fs.Var(&inputs, "i", "input CSV file (shorthand)")

	fs.StringVar(&opt.JSON, "json", "", "write aggregate JSON report to file ('-' for stdout)")
	fs.StringVar(&opt.JSON, "j", "", "aggregate JSON report (shorthand)")
	fs.StringVar(&opt.HTML, "html", "", "write HTML alignment report to file")
	fs.StringVar(&opt.HTML, "H", "", "HTML alignment report (shorthand)")

	fs.StringVar(&opt.Output, "output", "text", "per-record output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort per-record output by record index for determinism [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Normalize, "normalize", false, "lowercase and strip punctuation before comparing [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	extra, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = append([]string(inputs), extra...)
	opt.Header = !noHeader

	// Validation
	if len(opt.Inputs) == 0 {
		return opt, errors.New("provide at least one input CSV (--input or positional)")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

// internal/writers/records.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"asrstat-core/evaluate"
	"asrstat/internal/jsonlutil"
	"asrstat/internal/output"
)

func sortResults(list []evaluate.Result) {
	sort.Slice(list, func(i, j int) bool { return list[i].Index < list[j].Index })
}

// StartRecordWriter spins up a writer goroutine for per-record results.
// Text and json buffer and sort by record index when sortOut is set; jsonl
// always streams in arrival order.
func StartRecordWriter(out io.Writer, format string, sortOut, header bool, bufSize int) (chan<- evaluate.Result, <-chan error) {
	if format == output.FormatJSONL {
		return jsonlutil.Start[evaluate.Result](out, bufSize,
			func(enc *json.Encoder, r evaluate.Result) error {
				return enc.Encode(output.ToAPIRecord(r))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan evaluate.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []evaluate.Result
			for r := range in {
				buf = append(buf, r)
			}
			if sortOut {
				sortResults(buf)
			}
			err = output.WriteRecordsJSON(out, buf)

		case output.FormatText:
			if sortOut {
				var buf []evaluate.Result
				for r := range in {
					buf = append(buf, r)
				}
				sortResults(buf)
				err = output.WriteTSV(out, buf, header)
			} else {
				err = output.StreamTSV(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so senders never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

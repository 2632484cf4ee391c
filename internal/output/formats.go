// internal/output/formats.go
package output

// Output format identifiers shared by the CLI and writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ValidFormat reports whether f is a recognized per-record output format.
func ValidFormat(f string) bool {
	return f == FormatText || f == FormatJSON || f == FormatJSONL
}

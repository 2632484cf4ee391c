// Package writers turns evaluated records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV/JSON/JSONL).
//   - The stats core stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers

// Package editstats accumulates per-symbol confusion statistics from
// alignments between reference and hypothesis token sequences. It is
// generic over the symbol type so character and word tables share one
// implementation.
//
// Lifecycle: a Table grows via Accumulate (one call per record) and Merge
// (combining independently built partial tables), is finalized by a single
// Derive pass that fills rate fields, and is exported via Sanitize. Merge is
// defined over raw counts only; derived tables refuse further mutation.
//
// External outputs must not depend on the internal shape here; stable wire
// types live elsewhere.
package editstats

// Package pipeline streams CSV records through an Evaluator with a worker
// pool, folds every record's private tables into batch totals, and calls a
// visit callback per record.
//
// Workers never share tables; merging happens only in the collector, so
// Derive can run exactly once on the final fold. The only contract to
// implement is Evaluator (Evaluate), which keeps the pipeline swappable
// and testable.
package pipeline

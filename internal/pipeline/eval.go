// internal/pipeline/eval.go
package pipeline

import "asrstat-core/evaluate"

// Evaluator is the minimal capability the pipeline needs.
// Any evaluator (including fakes in tests) can satisfy this.
type Evaluator interface {
	Evaluate(reference, hypothesis string) (evaluate.Result, error)
}

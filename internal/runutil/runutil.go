// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the worker count for the evaluation pool.
// Zero or a negative value means "use every CPU".
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ChannelDepth sizes the buffered channel feeding a writer goroutine so
// a full worker pool can run ahead of a slow consumer.
func ChannelDepth(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}

package arrowprime

import "runtime"

// DefaultChunkSize is the number of slots handed to a worker at once.
const DefaultChunkSize = 4096

// number of slots a worker scans between checks of its context
const cancelCheckInterval = 256

// ParallelOptions controls how the parallel evaluators split a column.
// The zero value uses one worker per available CPU.
type ParallelOptions struct {
	Workers   int
	ChunkSize int
}

func (o ParallelOptions) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func (o ParallelOptions) chunkSize() int {
	if o.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

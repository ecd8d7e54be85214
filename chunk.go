package blit

import (
	"fmt"
	"runtime"
)

// DefaultChunkRows is the rows-per-chunk used by the zero ChunkPolicy.
// It is a tuning constant, not a correctness requirement: large enough that
// dispatch overhead stays small against the row copies, small enough to keep
// typical sprite heights split across several workers.
const DefaultChunkRows = 128

type chunkMode uint8

const (
	chunkByRows chunkMode = iota
	chunkByThreads
	chunkByCount
)

// ChunkPolicy selects how CopyParallel sizes its units of work. The three
// constructors express the same decision from different directions (a fixed
// number of rows per chunk, a target worker count, or a target chunk count);
// all reduce to a single rows-per-chunk value.
//
// The zero value chunks by DefaultChunkRows.
type ChunkPolicy struct {
	mode chunkMode
	n    int
}

// ChunkRows chunks the copy into groups of exactly n rows (the last chunk
// may be shorter). n < 1 is treated as 1.
func ChunkRows(n int) ChunkPolicy {
	return ChunkPolicy{mode: chunkByRows, n: max(n, 1)}
}

// ChunkThreads sizes chunks so that the copy splits across t workers,
// capped at GOMAXPROCS. t < 1 is treated as 1.
func ChunkThreads(t int) ChunkPolicy {
	return ChunkPolicy{mode: chunkByThreads, n: max(t, 1)}
}

// ChunkCount splits the copy into c chunks. c < 1 is treated as 1.
func ChunkCount(c int) ChunkPolicy {
	return ChunkPolicy{mode: chunkByCount, n: max(c, 1)}
}

// chunkSize resolves the policy against a decomposition height, always
// returning at least 1.
func (p ChunkPolicy) chunkSize(height int) int {
	var size int
	switch p.mode {
	case chunkByThreads:
		size = height / min(p.n, runtime.GOMAXPROCS(0))
	case chunkByCount:
		size = height / p.n
	default:
		size = p.n
		if size == 0 {
			// Zero value.
			size = DefaultChunkRows
		}
	}
	return max(size, 1)
}

// String returns a human-readable form of the policy.
func (p ChunkPolicy) String() string {
	switch p.mode {
	case chunkByThreads:
		return fmt.Sprintf("ChunkThreads(%d)", p.n)
	case chunkByCount:
		return fmt.Sprintf("ChunkCount(%d)", p.n)
	default:
		if p.n == 0 {
			return fmt.Sprintf("ChunkRows(%d) (default)", DefaultChunkRows)
		}
		return fmt.Sprintf("ChunkRows(%d)", p.n)
	}
}

package blit

import "github.com/gogpu/blit/internal/parallel"

// Copy writes one source row into each row slot, in increasing row order.
// src must hold Rows()*RowBytes() bytes of row-major pixel data; anything
// shorter is rejected with ErrSrcTooSmall before any byte moves. An empty
// decomposition is a no-op.
func (s *RowSlots) Copy(src []byte) error {
	if len(s.rows) == 0 {
		return nil
	}
	if len(src) < len(s.rows)*s.rowBytes {
		return ErrSrcTooSmall
	}
	for y, row := range s.rows {
		copy(row, src[y*s.rowBytes:(y+1)*s.rowBytes])
	}
	return nil
}

// CopyParallel is Copy with the row slots partitioned into contiguous chunks
// that are copied concurrently on the shared worker pool. The destination
// contents are byte-for-byte identical to Copy's under every policy; slots
// are disjoint, so chunk completion order cannot be observed.
//
// When the whole decomposition fits in a single chunk the copy runs inline;
// dispatching one task buys nothing.
func (s *RowSlots) CopyParallel(src []byte, policy ChunkPolicy) error {
	n := len(s.rows)
	if n == 0 {
		return nil
	}
	if len(src) < n*s.rowBytes {
		return ErrSrcTooSmall
	}

	size := policy.chunkSize(n)
	if size >= n {
		return s.Copy(src)
	}

	work := make([]func(), 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		lo, hi := start, min(start+size, n)
		work = append(work, func() {
			for y := lo; y < hi; y++ {
				copy(s.rows[y], src[y*s.rowBytes:(y+1)*s.rowBytes])
			}
		})
	}

	logger().Debug("parallel copy", "rows", n, "rowBytes", s.rowBytes,
		"chunkRows", size, "chunks", len(work))
	parallel.Shared().ExecuteAll(work)
	return nil
}

package blit

// RowSlots is a decomposition of a destination region into one mutable byte
// range per source row. Slot y covers exactly the destination bytes that
// source row y will land on; distinct slots never overlap, which is what
// makes copying chunks of them concurrently safe without a lock.
//
// A decomposition may be retained and copied into repeatedly (one per sprite
// per animation frame is the intended pattern); it stays valid as long as the
// destination buffer is not reallocated. While a copy through it is running,
// no other access to the addressed region may occur.
type RowSlots struct {
	rows     [][]byte
	rowBytes int
}

// Slots decomposes dst into row slots for receiving a srcSize source placed
// at pos. dstSize describes dst's pixel dimensions and stride is the bytes
// per pixel shared by both images.
//
// The placement must already be in bounds and the source extent must fit;
// run an unclipped placement through Clip first. Failures are reported
// before any offset is computed:
//
//   - ErrInvalidStride: stride < 1.
//   - ErrOutOfBounds: pos outside dstSize, or pos plus srcSize overhangs it.
//   - ErrDstTooSmall: dst holds fewer bytes than dstSize and stride imply
//     for the rows being touched.
//
// A zero-area srcSize yields a valid empty decomposition.
func Slots(dst []byte, pos Position, dstSize, srcSize Size, stride int) (*RowSlots, error) {
	if stride < 1 {
		return nil, ErrInvalidStride
	}
	rowBytes := srcSize.W * stride
	if srcSize.Empty() {
		return &RowSlots{rowBytes: max(rowBytes, 0)}, nil
	}
	if !pos.Inside(dstSize) {
		return nil, ErrOutOfBounds
	}
	if pos.X+srcSize.W > dstSize.W || pos.Y+srcSize.H > dstSize.H {
		return nil, ErrOutOfBounds
	}

	// Checking the last byte the copy will touch makes every subslice below
	// infallible.
	end := Index(pos.X, pos.Y+srcSize.H-1, dstSize.W, stride) + rowBytes
	if end > len(dst) {
		return nil, ErrDstTooSmall
	}

	rows := make([][]byte, srcSize.H)
	for y := range rows {
		off := Index(pos.X, pos.Y+y, dstSize.W, stride)
		rows[y] = dst[off : off+rowBytes : off+rowBytes]
	}
	return &RowSlots{rows: rows, rowBytes: rowBytes}, nil
}

// Rows returns the number of row slots.
func (s *RowSlots) Rows() int {
	return len(s.rows)
}

// RowBytes returns the byte length of each slot, which is also the byte
// length of one source row.
func (s *RowSlots) RowBytes() int {
	return s.rowBytes
}

package blit

// Clip adjusts a requested placement so that copying srcSize pixels at the
// result stays inside a dstSize destination. The placement may be negative on
// either axis; srcSize is reduced in place by however much of the source
// falls outside, and the returned Position is the non-negative placement to
// copy at.
//
// A source that ends up with zero width or height is a legitimate outcome
// meaning "nothing lands in the destination"; the copy routines treat it as
// a no-op. Clipping an already-clipped placement against the same bounds
// changes nothing.
func Clip(pos SignedPosition, dstSize Size, srcSize *Size) Position {
	// The whole source lies off the top or left edge.
	if pos.X+srcSize.W < 0 || pos.Y+srcSize.H < 0 {
		*srcSize = Size{}
		return Position{}
	}

	var out Position
	if pos.X < 0 {
		srcSize.W = max(srcSize.W+pos.X, 0)
	} else {
		out.X = pos.X
	}
	if pos.Y < 0 {
		srcSize.H = max(srcSize.H+pos.Y, 0)
	} else {
		out.Y = pos.Y
	}

	// A placement at or beyond the far edges leaves nothing to copy.
	if !out.Inside(dstSize) {
		*srcSize = Size{}
		return Position{}
	}

	// Shrink the remaining extent to fit. out is inside dstSize, so both
	// subtractions are positive.
	srcSize.W = min(srcSize.W, dstSize.W-out.X)
	srcSize.H = min(srcSize.H, dstSize.H-out.Y)
	return out
}

package blit

// Blit copies a srcSize source image onto dst at pos in one call:
// admissibility check, row decomposition, sequential copy. It returns false,
// with dst untouched, if the placement or either buffer fails validation;
// run an unclipped placement through Clip first.
//
// A zero-area source is a successful no-op. For repeated copies of
// same-shaped data, decompose once with Slots and reuse the result instead.
func Blit(src []byte, srcSize Size, dst []byte, pos Position, dstSize Size, stride int) bool {
	slots, err := Slots(dst, pos, dstSize, srcSize, stride)
	if err != nil {
		logger().Debug("blit skipped", "err", err,
			"x", pos.X, "y", pos.Y, "w", srcSize.W, "h", srcSize.H)
		return false
	}
	if err := slots.Copy(src); err != nil {
		logger().Debug("blit skipped", "err", err)
		return false
	}
	return true
}

// BlitParallel is Blit with the copy chunked across the shared worker pool
// according to policy. Output is identical to Blit; only wall-clock time
// differs, and only for sources tall enough to split.
func BlitParallel(src []byte, srcSize Size, dst []byte, pos Position, dstSize Size, stride int, policy ChunkPolicy) bool {
	slots, err := Slots(dst, pos, dstSize, srcSize, stride)
	if err != nil {
		logger().Debug("blit skipped", "err", err,
			"x", pos.X, "y", pos.Y, "w", srcSize.W, "h", srcSize.H)
		return false
	}
	if err := slots.CopyParallel(src, policy); err != nil {
		logger().Debug("blit skipped", "err", err)
		return false
	}
	return true
}

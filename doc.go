// Package blit copies rectangular regions between flat byte buffers of
// row-major pixel data, without per-pixel color testing.
//
// # Overview
//
// blit is a compositing primitive for the GoGPU ecosystem: it moves one
// image's bytes into a region of a larger image (framebuffers, texture
// atlases, sprite sheets) a whole row at a time. Pixel formats are opaque;
// everything is parameterized by a per-pixel stride in bytes, so the same
// code serves grayscale, RGB, RGBA, and floating-point buffers.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	dstSize := blit.Size{W: 1920, H: 1080}
//	srcSize := blit.Size{W: 512, H: 512}
//
//	// Clip a placement that may hang off the destination's edges.
//	pos := blit.Clip(blit.SignedPosition{X: -8, Y: -8}, dstSize, &srcSize)
//
//	// One-shot copy.
//	blit.Blit(src, srcSize, dst, pos, dstSize, blit.RGBA)
//
// # Reusing a decomposition
//
// Repeated copies of same-shaped data (a sprite drawn every animation frame)
// should decompose once and copy many times, amortizing the index
// arithmetic:
//
//	slots, err := blit.Slots(dst, pos, dstSize, srcSize, blit.RGBA)
//	if err != nil {
//		// placement out of bounds, or a buffer is too small
//	}
//	for range frames {
//		slots.Copy(frame)
//	}
//
// # Parallel copies
//
// Tall copies can be chunked across a shared worker pool. Every chunk writes
// a disjoint set of destination rows, so the result is byte-for-byte the
// same as the sequential copy:
//
//	slots.CopyParallel(frame, blit.ChunkThreads(4))
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. A placement
// is where the source's top-left corner lands in the destination.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

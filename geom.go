package blit

// Size is a rectangular extent in pixels.
type Size struct {
	W, H int
}

// SizeOf derives a Size from a flat pixel buffer, a known width, and a
// per-pixel stride in bytes. The height is however many complete rows the
// buffer holds; trailing bytes that do not fill a row are ignored.
// Returns the zero Size if w or stride is not positive.
func SizeOf(buf []byte, w, stride int) Size {
	if w <= 0 || stride <= 0 {
		return Size{}
	}
	return Size{W: w, H: (len(buf) / stride) / w}
}

// Clip returns s reduced so that it fits within other.
func (s Size) Clip(other Size) Size {
	return Size{W: min(s.W, other.W), H: min(s.H, other.H)}
}

// Empty reports whether the size covers zero pixels.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Bytes returns the number of bytes a buffer of this size occupies at the
// given per-pixel stride.
func (s Size) Bytes(stride int) int {
	return s.W * s.H * stride
}

// Position is an (x, y) pixel position inside a destination image.
// Positions produced by Clip are always non-negative; a Position constructed
// directly by the caller is validated by Inside before any index arithmetic.
type Position struct {
	X, Y int
}

// Inside reports whether p is a valid placement within bounds.
func (p Position) Inside(bounds Size) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < bounds.W && p.Y < bounds.H
}

// SignedPosition is a requested placement that may be partially or fully off
// the top or left edge of the destination. It is only ever an input to Clip;
// everything downstream operates on the non-negative Position Clip returns.
type SignedPosition struct {
	X, Y int
}

// Rect is a placement plus extent, for callers that carry the destination
// sub-region as a single value.
type Rect struct {
	X, Y, W, H int
}

// Start returns the byte offset of the rectangle's top-left pixel in a flat
// buffer whose row pitch equals the rectangle's own width.
func (r Rect) Start(stride int) int {
	return (r.X + r.Y*r.W) * stride
}

// Pos returns the rectangle's placement.
func (r Rect) Pos() Position {
	return Position{X: r.X, Y: r.Y}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Index converts a pixel position, a row width, and a per-pixel stride into
// an offset in a flat byte buffer. Pure arithmetic, no bounds checking;
// callers must have validated x < w.
func Index(x, y, w, stride int) int {
	return (x + y*w) * stride
}

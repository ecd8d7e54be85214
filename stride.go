package blit

// Per-pixel stride values for common pixel formats. A stride is just the
// number of bytes one pixel occupies; any positive value works, these are
// the ones that come up in practice.
const (
	// Grayscale is a single 1-byte channel.
	Grayscale = 1

	// RGB is three 1-byte channels: red, green, blue.
	RGB = 3

	// RGBA is four 1-byte channels: red, green, blue, alpha.
	RGBA = 4

	// RGBFloat is three 4-byte float32 channels: red, green, blue.
	RGBFloat = 12

	// RGBAFloat is four 4-byte float32 channels: red, green, blue, alpha.
	RGBAFloat = 16
)

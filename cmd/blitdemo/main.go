// Command blitdemo composites a grid of sprites into a framebuffer with the
// blit package and writes the result as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/blit"
)

func main() {
	var (
		width   = flag.Int("width", 640, "framebuffer width")
		height  = flag.Int("height", 360, "framebuffer height")
		sprite  = flag.Int("sprite", 96, "sprite edge length")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dstSize := blit.Size{W: *width, H: *height}
	dst := make([]byte, dstSize.Bytes(blit.RGBA))
	fill(dst, [4]byte{24, 24, 32, 255})

	// Scatter sprites across the framebuffer, including placements hanging
	// off every edge so clipping is visible in the output.
	placements := []blit.SignedPosition{
		{X: -*sprite / 3, Y: -*sprite / 3},
		{X: *width / 4, Y: *height / 4},
		{X: *width / 2, Y: *height / 8},
		{X: *width - *sprite/2, Y: *height / 2},
		{X: *width / 8, Y: *height - *sprite/2},
		{X: *width / 2, Y: *height / 2},
	}
	colors := [][4]byte{
		{230, 80, 80, 255},
		{80, 200, 120, 255},
		{90, 120, 230, 255},
		{240, 200, 80, 255},
		{200, 90, 200, 255},
		{80, 210, 210, 255},
	}

	for i, want := range placements {
		src := makeSprite(*sprite, colors[i%len(colors)])
		srcSize := blit.SizeOf(src, *sprite, blit.RGBA)

		pos := blit.Clip(want, dstSize, &srcSize)
		if srcSize.Empty() {
			continue
		}
		if ok := blit.BlitParallel(src, srcSize, dst, pos, dstSize, blit.RGBA, blit.ChunkThreads(4)); !ok {
			log.Fatalf("blit at (%d,%d) failed", pos.X, pos.Y)
		}
	}

	if err := savePNG(*output, dst, *width, *height); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// makeSprite builds an RGBA square with a darker border so sprite edges and
// clipped edges are distinguishable.
func makeSprite(edge int, c [4]byte) []byte {
	buf := make([]byte, edge*edge*blit.RGBA)
	border := [4]byte{c[0] / 2, c[1] / 2, c[2] / 2, 255}
	for y := 0; y < edge; y++ {
		for x := 0; x < edge; x++ {
			px := c
			if x < 2 || y < 2 || x >= edge-2 || y >= edge-2 {
				px = border
			}
			copy(buf[blit.Index(x, y, edge, blit.RGBA):], px[:])
		}
	}
	return buf
}

// fill sets every pixel of an RGBA buffer to one color.
func fill(buf []byte, c [4]byte) {
	for i := 0; i < len(buf); i += blit.RGBA {
		copy(buf[i:], c[:])
	}
}

// savePNG writes a flat RGBA buffer as a PNG file.
func savePNG(path string, pix []byte, w, h int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	img := &image.RGBA{Pix: pix, Stride: w * blit.RGBA, Rect: image.Rect(0, 0, w, h)}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

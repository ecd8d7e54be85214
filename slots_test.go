package blit

import (
	"bytes"
	"errors"
	"testing"
)

// TestSlots_Disjoint verifies, over a grid of shapes and placements, that
// every row slot receives exactly its own bytes: filling slot y with the
// marker y+1 must mark rowBytes destination bytes per slot and nothing else.
func TestSlots_Disjoint(t *testing.T) {
	strides := []int{Grayscale, RGB, RGBA, RGBFloat, RGBAFloat}
	shapes := []struct {
		dst, src Size
		pos      Position
	}{
		{Size{64, 64}, Size{32, 17}, Position{2, 12}},
		{Size{64, 64}, Size{64, 64}, Position{0, 0}},
		{Size{64, 64}, Size{1, 64}, Position{63, 0}},
		{Size{64, 64}, Size{64, 1}, Position{0, 63}},
		{Size{7, 5}, Size{3, 4}, Position{4, 1}},
	}

	for _, stride := range strides {
		for _, sh := range shapes {
			dst := make([]byte, sh.dst.Bytes(stride))
			slots, err := Slots(dst, sh.pos, sh.dst, sh.src, stride)
			if err != nil {
				t.Fatalf("Slots(%+v, %+v, %+v, stride=%d): %v", sh.pos, sh.dst, sh.src, stride, err)
			}
			if slots.Rows() != sh.src.H {
				t.Fatalf("Rows() = %d, want %d", slots.Rows(), sh.src.H)
			}
			if slots.RowBytes() != sh.src.W*stride {
				t.Fatalf("RowBytes() = %d, want %d", slots.RowBytes(), sh.src.W*stride)
			}

			for y, row := range slots.rows {
				for i := range row {
					if row[i] != 0 {
						t.Fatalf("slot %d overlaps an already-marked slot (stride %d, shape %+v)", y, stride, sh)
					}
					row[i] = byte(y + 1)
				}
			}

			// Every marked byte must sit exactly where the decomposition
			// contract places it.
			marked := 0
			for i, b := range dst {
				if b == 0 {
					continue
				}
				marked++
				y := int(b) - 1
				off := Index(sh.pos.X, sh.pos.Y+y, sh.dst.W, stride)
				if i < off || i >= off+slots.RowBytes() {
					t.Fatalf("byte %d marked by slot %d lies outside that slot's range [%d,%d)",
						i, y, off, off+slots.RowBytes())
				}
			}
			if want := sh.src.H * sh.src.W * stride; marked != want {
				t.Fatalf("marked %d destination bytes, want %d", marked, want)
			}
		}
	}
}

// TestSlots_OutOfBounds verifies inadmissible placements are refused.
func TestSlots_OutOfBounds(t *testing.T) {
	dstSize := Size{W: 64, H: 64}
	dst := make([]byte, dstSize.Bytes(RGB))
	srcSize := Size{W: 32, H: 17}

	bad := []Position{
		{X: 64, Y: 0},
		{X: 0, Y: 64},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 100, Y: 100},
		{X: 40, Y: 0}, // 40+32 overhangs the right edge
		{X: 0, Y: 50}, // 50+17 overhangs the bottom edge
	}

	for _, pos := range bad {
		if _, err := Slots(dst, pos, dstSize, srcSize, RGB); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Slots at (%d,%d): err = %v, want ErrOutOfBounds", pos.X, pos.Y, err)
		}
	}
}

// TestSlots_DstTooSmall verifies a destination buffer shorter than its
// declared size is refused instead of decomposed.
func TestSlots_DstTooSmall(t *testing.T) {
	dstSize := Size{W: 64, H: 64}
	srcSize := Size{W: 32, H: 17}

	// One byte short of the last byte the copy would touch.
	end := Index(2, 12+17-1, dstSize.W, RGB) + 32*RGB
	dst := make([]byte, end-1)

	if _, err := Slots(dst, Position{X: 2, Y: 12}, dstSize, srcSize, RGB); !errors.Is(err, ErrDstTooSmall) {
		t.Errorf("err = %v, want ErrDstTooSmall", err)
	}

	// Exactly long enough is fine even if dstSize.Bytes would claim more.
	dst = make([]byte, end)
	if _, err := Slots(dst, Position{X: 2, Y: 12}, dstSize, srcSize, RGB); err != nil {
		t.Errorf("err = %v, want nil for exactly-sized buffer", err)
	}
}

// TestSlots_InvalidStride verifies stride validation.
func TestSlots_InvalidStride(t *testing.T) {
	dst := make([]byte, 64*64*RGB)
	for _, stride := range []int{0, -1} {
		if _, err := Slots(dst, Position{}, Size{64, 64}, Size{32, 17}, stride); !errors.Is(err, ErrInvalidStride) {
			t.Errorf("stride %d: err = %v, want ErrInvalidStride", stride, err)
		}
	}
}

// TestSlots_ZeroExtent verifies a zero-area source decomposes to an empty,
// copyable result.
func TestSlots_ZeroExtent(t *testing.T) {
	dst := make([]byte, 64*64*RGB)

	for _, src := range []Size{{}, {W: 32}, {H: 17}} {
		slots, err := Slots(dst, Position{X: 2, Y: 12}, Size{64, 64}, src, RGB)
		if err != nil {
			t.Fatalf("Slots with src %+v: %v", src, err)
		}
		if slots.Rows() != 0 {
			t.Errorf("Rows() = %d, want 0 for src %+v", slots.Rows(), src)
		}
		if err := slots.Copy(nil); err != nil {
			t.Errorf("Copy into empty decomposition: %v", err)
		}
		if !bytes.Equal(dst, make([]byte, len(dst))) {
			t.Error("zero-extent copy modified the destination")
		}
	}
}

// TestSlots_ZeroExtentSkipsPlacementCheck verifies a zero-area source is a
// no-op even at a placement that would otherwise be out of bounds.
func TestSlots_ZeroExtentSkipsPlacementCheck(t *testing.T) {
	dst := make([]byte, 64*64*RGB)
	slots, err := Slots(dst, Position{X: 100, Y: 100}, Size{64, 64}, Size{}, RGB)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if slots.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", slots.Rows())
	}
}

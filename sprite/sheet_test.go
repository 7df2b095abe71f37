// SPDX-License-Identifier: GPL-2.0-or-later

package sprite

import (
	"testing"

	"tagbounce/surface"
)

func fmt565() surface.Format {
	return surface.Format{BytesPerPixel: 2, Packed16: true}
}

func newSheet(t *testing.T, w, h, cols, rows int) *Sheet {
	t.Helper()
	base, err := surface.New(w, h, fmt565())
	if err != nil {
		t.Fatalf("surface.New(%d,%d) = %v", w, h, err)
	}
	base.SetColorKey(0x1082)
	s, err := NewSheet(base, cols, rows)
	if err != nil {
		t.Fatalf("NewSheet = %v", err)
	}
	return s
}

func TestRotationNextWraps(t *testing.T) {
	r := Rot0
	for i := 0; i < 4; i++ {
		r = r.Next()
	}
	if r != Rot0 {
		t.Errorf("four Next() = %v", r)
	}
}

func TestGridSwapsForQuarterTurns(t *testing.T) {
	s := newSheet(t, 64, 16, 8, 4)
	c, r, fw, fh := s.Grid(Rot0)
	if c != 8 || r != 4 || fw != 8 || fh != 4 {
		t.Errorf("Grid(Rot0) = %d,%d,%d,%d", c, r, fw, fh)
	}
	c, r, fw, fh = s.Grid(Rot90)
	if c != 4 || r != 8 || fw != 4 || fh != 8 {
		t.Errorf("Grid(Rot90) = %d,%d,%d,%d", c, r, fw, fh)
	}
	c, r, fw, fh = s.Grid(Rot180)
	if c != 8 || r != 4 || fw != 8 || fh != 4 {
		t.Errorf("Grid(Rot180) = %d,%d,%d,%d", c, r, fw, fh)
	}
}

func TestRotatedSurfacesKeepColorKey(t *testing.T) {
	s := newSheet(t, 64, 32, 8, 4)
	for rot := Rot0; rot <= Rot270; rot++ {
		key, ok := s.Surface(rot).ColorKey()
		if !ok || key != 0x1082 {
			t.Errorf("rotation %d: colorkey = %#x, %v", rot.Degrees(), key, ok)
		}
	}
}

func TestRotatedSurfaceDimensions(t *testing.T) {
	s := newSheet(t, 64, 32, 8, 4)
	for _, tc := range []struct {
		rot  Rotation
		w, h int
	}{
		{Rot0, 64, 32},
		{Rot90, 32, 64},
		{Rot180, 64, 32},
		{Rot270, 32, 64},
	} {
		surf := s.Surface(tc.rot)
		if surf.W != tc.w || surf.H != tc.h {
			t.Errorf("rotation %d: size = %dx%d", tc.rot.Degrees(), surf.W, surf.H)
		}
	}
}

// Every frame's source rectangle must stay inside its sheet and all frames
// together must tile it exactly, with the last row/column absorbing any
// remainder.
func TestSourceRectsTileSheet(t *testing.T) {
	for _, dim := range []struct {
		w, h int
	}{
		{64, 32},   // divides evenly
		{67, 35},   // remainder in both axes
		{128, 128}, // square
	} {
		s := newSheet(t, dim.w, dim.h, 8, 4)
		for rot := Rot0; rot <= Rot270; rot++ {
			sheet := s.Surface(rot)
			covered := make([]bool, sheet.W*sheet.H)
			for f := 0; f < s.Frames(); f++ {
				sr := s.SourceRect(f, rot)
				if !sheet.Bounds().Contains(sr) {
					t.Fatalf("sheet %dx%d rot %d frame %d: %v outside bounds",
						dim.w, dim.h, rot.Degrees(), f, sr)
				}
				for y := sr.Y; y < sr.Y+sr.H; y++ {
					for x := sr.X; x < sr.X+sr.W; x++ {
						i := y*sheet.W + x
						if covered[i] {
							t.Fatalf("sheet %dx%d rot %d frame %d: pixel (%d,%d) covered twice",
								dim.w, dim.h, rot.Degrees(), f, x, y)
						}
						covered[i] = true
					}
				}
			}
			for i, c := range covered {
				if !c {
					t.Fatalf("sheet %dx%d rot %d: pixel (%d,%d) not covered",
						dim.w, dim.h, rot.Degrees(), i%sheet.W, i/sheet.W)
				}
			}
		}
	}
}

// A frame cut from the rotated sheet holds the same pixels as the base
// frame, rotated.
func TestSourceRectTracksFrameContent(t *testing.T) {
	base, err := surface.New(16, 8, fmt565())
	if err != nil {
		t.Fatalf("surface.New = %v", err)
	}
	// distinct value per pixel
	for y := 0; y < base.H; y++ {
		for x := 0; x < base.W; x++ {
			base.SetPixel(x, y, uint32(y*base.W+x+1))
		}
	}
	s, err := NewSheet(base, 8, 4)
	if err != nil {
		t.Fatalf("NewSheet = %v", err)
	}
	frame := 11 // row 1, col 3
	r0 := s.SourceRect(frame, Rot0)
	r90 := s.SourceRect(frame, Rot90)
	s0 := s.Surface(Rot0)
	s90 := s.Surface(Rot90)
	for y := 0; y < r0.H; y++ {
		for x := 0; x < r0.W; x++ {
			want := s0.Pixel(r0.X+x, r0.Y+y)
			// base (x,y) within the frame lands at (h-1-y, x) after 90cw
			got := s90.Pixel(r90.X+r0.H-1-y, r90.Y+x)
			if got != want {
				t.Fatalf("frame pixel (%d,%d): got %#x want %#x", x, y, got, want)
			}
		}
	}
}

func TestNewSheetRejectsBadGrid(t *testing.T) {
	base, _ := surface.New(4, 4, fmt565())
	if _, err := NewSheet(base, 0, 4); err == nil {
		t.Errorf("NewSheet accepted zero columns")
	}
	if _, err := NewSheet(base, 8, 8); err == nil {
		t.Errorf("NewSheet accepted grid larger than sheet")
	}
}

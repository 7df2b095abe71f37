// SPDX-License-Identifier: GPL-2.0-or-later

package surface

import (
	"testing"
)

func TestPixelRoundTrip16(t *testing.T) {
	s, err := New(4, 3, Format{BytesPerPixel: 2, Packed16: true})
	if err != nil {
		t.Fatalf("New(4,3) = %v", err)
	}
	s.SetPixel(3, 2, 0xbeef)
	if v := s.Pixel(3, 2); v != 0xbeef {
		t.Errorf("Pixel(3,2) = %#x", v)
	}
	if v := s.Pixel(0, 0); v != 0 {
		t.Errorf("Pixel(0,0) = %#x", v)
	}
}

func TestPixelRoundTrip32(t *testing.T) {
	s, err := New(2, 2, Format{BytesPerPixel: 4})
	if err != nil {
		t.Fatalf("New(2,2) = %v", err)
	}
	s.SetPixel(1, 1, 0xdeadbeef)
	if v := s.Pixel(1, 1); v != 0xdeadbeef {
		t.Errorf("Pixel(1,1) = %#x", v)
	}
}

func TestFillClips(t *testing.T) {
	s, _ := New(4, 4, Format{BytesPerPixel: 2, Packed16: true})
	s.Fill(Rect{2, 2, 10, 10}, 0x1234)
	if v := s.Pixel(1, 1); v != 0 {
		t.Errorf("Pixel(1,1) = %#x", v)
	}
	if v := s.Pixel(3, 3); v != 0x1234 {
		t.Errorf("Pixel(3,3) = %#x", v)
	}
}

// The row copy fill must respect padded pitches: every pixel inside the
// rectangle set, nothing outside it or in the padding touched.
func TestFillHonorsPitchPadding(t *testing.T) {
	pitch := 7*2 + 6 // 6 padding bytes per row
	buf := make([]byte, pitch*5)
	for i := range buf {
		buf[i] = 0xee
	}
	s, err := FromPixels(buf, 7, 5, pitch, Format{BytesPerPixel: 2, Packed16: true})
	if err != nil {
		t.Fatalf("FromPixels = %v", err)
	}
	s.Fill(Rect{1, 1, 5, 3}, 0x1234)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			want := uint32(0xeeee)
			if x >= 1 && x < 6 && y >= 1 && y < 4 {
				want = 0x1234
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
		for i := y*pitch + 7*2; i < (y+1)*pitch && i < len(buf); i++ {
			if buf[i] != 0xee {
				t.Errorf("padding byte %d overwritten", i)
			}
		}
	}
}

func TestFromPixelsTooSmall(t *testing.T) {
	_, err := FromPixels(make([]byte, 10), 4, 4, 8, Format{BytesPerPixel: 2})
	if err == nil {
		t.Errorf("FromPixels accepted a short buffer")
	}
}

func TestRotate90Dimensions(t *testing.T) {
	s, _ := New(6, 2, Format{BytesPerPixel: 2, Packed16: true})
	r, err := Rotate90(s)
	if err != nil {
		t.Fatalf("Rotate90 = %v", err)
	}
	if r.W != 2 || r.H != 6 {
		t.Errorf("rotated size = %dx%d", r.W, r.H)
	}
}

func TestRotate90Mapping(t *testing.T) {
	s, _ := New(3, 2, Format{BytesPerPixel: 2, Packed16: true})
	s.SetPixel(0, 0, 0xaa)
	s.SetPixel(2, 1, 0xbb)
	r, err := Rotate90(s)
	if err != nil {
		t.Fatalf("Rotate90 = %v", err)
	}
	// (x,y) -> (H-1-y, x)
	if v := r.Pixel(1, 0); v != 0xaa {
		t.Errorf("rotated (1,0) = %#x", v)
	}
	if v := r.Pixel(0, 2); v != 0xbb {
		t.Errorf("rotated (0,2) = %#x", v)
	}
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	s, _ := New(5, 3, Format{BytesPerPixel: 2, Packed16: true})
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			s.SetPixel(x, y, uint32(y*s.W+x+1))
		}
	}
	r := s
	for i := 0; i < 4; i++ {
		var err error
		r, err = Rotate90(r)
		if err != nil {
			t.Fatalf("Rotate90 #%d = %v", i, err)
		}
	}
	if r.W != s.W || r.H != s.H {
		t.Fatalf("size after four turns = %dx%d", r.W, r.H)
	}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if r.Pixel(x, y) != s.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) changed after four turns", x, y)
			}
		}
	}
}

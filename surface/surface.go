// SPDX-License-Identifier: GPL-2.0-or-later

// Package surface provides CPU side pixel buffers with optional colorkey
// transparency. Pixel values are always in the surface's native encoding,
// stored little endian.
package surface

import (
	"fmt"
)

// Format describes the pixel encoding of a surface.
type Format struct {
	BytesPerPixel int
	// Packed16 marks 16 bit packed formats like RGB565. Only those are
	// eligible for the integer fast blit path.
	Packed16 bool
}

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether o lies fully inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

type Surface struct {
	Pix    []byte
	W, H   int
	Pitch  int // bytes per row
	Format Format

	key    uint32
	hasKey bool
}

func New(w, h int, f Format) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface: invalid size %dx%d", w, h)
	}
	switch f.BytesPerPixel {
	case 1, 2, 3, 4:
	default:
		return nil, fmt.Errorf("surface: unsupported bytes per pixel %d", f.BytesPerPixel)
	}
	pitch := w * f.BytesPerPixel
	return &Surface{
		Pix:    make([]byte, pitch*h),
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: f,
	}, nil
}

// FromPixels wraps an existing pixel buffer, e.g. a window surface owned by
// the display layer. The buffer is not copied.
func FromPixels(pix []byte, w, h, pitch int, f Format) (*Surface, error) {
	if w <= 0 || h <= 0 || pitch < w*f.BytesPerPixel {
		return nil, fmt.Errorf("surface: invalid layout %dx%d pitch %d", w, h, pitch)
	}
	if len(pix) < (h-1)*pitch+w*f.BytesPerPixel {
		return nil, fmt.Errorf("surface: buffer too small: %d for %dx%d pitch %d",
			len(pix), w, h, pitch)
	}
	return &Surface{
		Pix:    pix,
		W:      w,
		H:      h,
		Pitch:  pitch,
		Format: f,
	}, nil
}

func (s *Surface) Bounds() Rect {
	return Rect{0, 0, s.W, s.H}
}

// SetColorKey marks key as the transparent pixel value. The key is in the
// surface's native encoding.
func (s *Surface) SetColorKey(key uint32) {
	s.key = key
	s.hasKey = true
}

func (s *Surface) ColorKey() (uint32, bool) {
	return s.key, s.hasKey
}

func (s *Surface) Pixel(x, y int) uint32 {
	o := y*s.Pitch + x*s.Format.BytesPerPixel
	switch s.Format.BytesPerPixel {
	case 1:
		return uint32(s.Pix[o])
	case 2:
		return uint32(s.Pix[o]) | uint32(s.Pix[o+1])<<8
	case 3:
		return uint32(s.Pix[o]) | uint32(s.Pix[o+1])<<8 | uint32(s.Pix[o+2])<<16
	default:
		return uint32(s.Pix[o]) | uint32(s.Pix[o+1])<<8 |
			uint32(s.Pix[o+2])<<16 | uint32(s.Pix[o+3])<<24
	}
}

func (s *Surface) SetPixel(x, y int, v uint32) {
	o := y*s.Pitch + x*s.Format.BytesPerPixel
	switch s.Format.BytesPerPixel {
	case 1:
		s.Pix[o] = byte(v)
	case 2:
		s.Pix[o] = byte(v)
		s.Pix[o+1] = byte(v >> 8)
	case 3:
		s.Pix[o] = byte(v)
		s.Pix[o+1] = byte(v >> 8)
		s.Pix[o+2] = byte(v >> 16)
	default:
		s.Pix[o] = byte(v)
		s.Pix[o+1] = byte(v >> 8)
		s.Pix[o+2] = byte(v >> 16)
		s.Pix[o+3] = byte(v >> 24)
	}
}

// Fill sets every pixel inside r to v. The rectangle is clipped to the
// surface bounds.
func (s *Surface) Fill(r Rect, v uint32) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.W {
		x1 = s.W
	}
	if y1 > s.H {
		y1 = s.H
	}
	if x1 <= x0 || y1 <= y0 {
		return
	}
	// write the first row once, doubling the filled run, then copy it down
	bpp := s.Format.BytesPerPixel
	s.SetPixel(x0, y0, v)
	row := s.Pix[y0*s.Pitch+x0*bpp : y0*s.Pitch+x1*bpp]
	for n := bpp; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
	for y := y0 + 1; y < y1; y++ {
		copy(s.Pix[y*s.Pitch+x0*bpp:y*s.Pitch+x1*bpp], row)
	}
}

func (s *Surface) FillAll(v uint32) {
	s.Fill(s.Bounds(), v)
}

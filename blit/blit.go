// SPDX-License-Identifier: GPL-2.0-or-later

// Package blit copies sprite pixels onto a destination surface, treating the
// source colorkey as transparent. The strategy for a format pair is resolved
// once via Select; per tick only the scale decides between the integer fast
// path and the generic nearest neighbor scaler.
package blit

import (
	"fmt"

	"tagbounce/surface"
)

// Blitter performs a colorkeyed scaled copy from src to dst. The destination
// rectangle must already match the source rectangle multiplied by scale,
// scaling decisions happen before the call.
type Blitter interface {
	Scaled(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect, scale float32) error
}

// Select resolves which blit strategy applies to a source/destination format
// pair. Both sides in a 2 byte packed format get the integer fast path,
// everything else uses the generic scaler.
func Select(src, dst surface.Format) Blitter {
	if src.BytesPerPixel == 2 && src.Packed16 &&
		dst.BytesPerPixel == 2 && dst.Packed16 {
		return &fast16{}
	}
	return &generic{}
}

func checkBounds(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect) error {
	if !src.Bounds().Contains(sr) {
		return fmt.Errorf("blit: src rect %v outside %dx%d", sr, src.W, src.H)
	}
	if !dst.Bounds().Contains(dr) {
		return fmt.Errorf("blit: dst rect %v outside %dx%d", dr, dst.W, dst.H)
	}
	return nil
}

// Copy is an unscaled colorkeyed copy. Source pixels equal to the key are
// not written.
func Copy(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect) error {
	dr.W = sr.W
	dr.H = sr.H
	if err := checkBounds(src, sr, dst, dr); err != nil {
		return err
	}
	key, hasKey := src.ColorKey()
	for y := 0; y < sr.H; y++ {
		for x := 0; x < sr.W; x++ {
			px := src.Pixel(sr.X+x, sr.Y+y)
			if hasKey && px == key {
				continue
			}
			dst.SetPixel(dr.X+x, dr.Y+y, px)
		}
	}
	return nil
}

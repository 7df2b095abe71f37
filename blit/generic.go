// SPDX-License-Identifier: GPL-2.0-or-later

package blit

import (
	"tagbounce/surface"
)

// generic is the nearest neighbor fallback. It handles every scale and any
// matching format pair, one pixel at a time.
type generic struct{}

func (generic) Scaled(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect, scale float32) error {
	if scale == 1 {
		return Copy(src, sr, dst, dr)
	}
	if err := checkBounds(src, sr, dst, dr); err != nil {
		return err
	}
	if dr.Empty() || sr.Empty() {
		return nil
	}
	key, hasKey := src.ColorKey()
	for dy := 0; dy < dr.H; dy++ {
		sy := sr.Y + dy*sr.H/dr.H
		for dx := 0; dx < dr.W; dx++ {
			sx := sr.X + dx*sr.W/dr.W
			px := src.Pixel(sx, sy)
			if hasKey && px == key {
				continue
			}
			dst.SetPixel(dr.X+dx, dr.Y+dy, px)
		}
	}
	return nil
}

// SPDX-License-Identifier: GPL-2.0-or-later

package blit

import (
	"tagbounce/surface"
)

// fast16 is the integer path for 2 byte packed surfaces. Scales 2, 3 and 4
// replicate each source pixel into a kxk block, 0.5 subsamples every other
// pixel. Key colored pixels advance the destination cursor without writing.
// The block arithmetic only holds when the destination is exactly the source
// times the scale; anything else, including the odd scales, goes through the
// generic scaler.
type fast16 struct {
	fallback generic
}

func (f *fast16) Scaled(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect, scale float32) error {
	switch scale {
	case 1:
		return Copy(src, sr, dst, dr)
	case 2, 3, 4:
		k := int(scale)
		if dr.W != sr.W*k || dr.H != sr.H*k {
			// remainder extended frames don't fit the block grid
			return f.fallback.Scaled(src, sr, dst, dr, scale)
		}
		return f.upscale(src, sr, dst, dr, k)
	case 0.5:
		if dr.W != (sr.W+1)/2 || dr.H != (sr.H+1)/2 {
			return f.fallback.Scaled(src, sr, dst, dr, scale)
		}
		return f.halve(src, sr, dst, dr)
	default:
		return f.fallback.Scaled(src, sr, dst, dr, scale)
	}
}

func (f *fast16) upscale(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect, k int) error {
	if err := checkBounds(src, sr, dst, dr); err != nil {
		return err
	}
	key, hasKey := src.ColorKey()
	key16 := uint16(key)
	for sy := 0; sy < sr.H; sy++ {
		srow := src.Pix[(sr.Y+sy)*src.Pitch+sr.X*2:]
		for vy := 0; vy < k; vy++ {
			drow := dst.Pix[(dr.Y+sy*k+vy)*dst.Pitch+dr.X*2:]
			dx := 0
			for sx := 0; sx < sr.W; sx++ {
				pix := uint16(srow[sx*2]) | uint16(srow[sx*2+1])<<8
				if hasKey && pix == key16 {
					// skip transparent run
					dx += k
					continue
				}
				lo := byte(pix)
				hi := byte(pix >> 8)
				for i := 0; i < k; i++ {
					drow[(dx+i)*2] = lo
					drow[(dx+i)*2+1] = hi
				}
				dx += k
			}
		}
	}
	return nil
}

func (f *fast16) halve(src *surface.Surface, sr surface.Rect, dst *surface.Surface, dr surface.Rect) error {
	if err := checkBounds(src, sr, dst, dr); err != nil {
		return err
	}
	key, hasKey := src.ColorKey()
	key16 := uint16(key)
	for sy := 0; sy < sr.H; sy += 2 {
		srow := src.Pix[(sr.Y+sy)*src.Pitch+sr.X*2:]
		drow := dst.Pix[(dr.Y+sy/2)*dst.Pitch+dr.X*2:]
		dx := 0
		for sx := 0; sx < sr.W; sx += 2 {
			pix := uint16(srow[sx*2]) | uint16(srow[sx*2+1])<<8
			if !hasKey || pix != key16 {
				drow[dx*2] = byte(pix)
				drow[dx*2+1] = byte(pix >> 8)
			}
			dx++
		}
	}
	return nil
}

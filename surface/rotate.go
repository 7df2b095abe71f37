// SPDX-License-Identifier: GPL-2.0-or-later

package surface

// Rotate90 returns a freshly allocated copy of src turned a quarter turn
// clockwise: the pixel at source (x,y) ends up at destination (H-1-y, x),
// so a WxH source yields an HxW destination. The colorkey is not carried
// over, callers must set it again on the new surface.
func Rotate90(src *Surface) (*Surface, error) {
	dst, err := New(src.H, src.W, src.Format)
	if err != nil {
		return nil, err
	}
	bpp := src.Format.BytesPerPixel
	for y := 0; y < src.H; y++ {
		srow := src.Pix[y*src.Pitch:]
		for x := 0; x < src.W; x++ {
			nx := src.H - 1 - y
			ny := x
			copy(dst.Pix[ny*dst.Pitch+nx*bpp:ny*dst.Pitch+nx*bpp+bpp],
				srow[x*bpp:x*bpp+bpp])
		}
	}
	return dst, nil
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package sprite addresses animation frames inside a sprite sheet and owns
// the rotated copies of the sheet.
package sprite

import (
	"fmt"

	"tagbounce/surface"
)

// Rotation counts quarter turns clockwise.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

func (r Rotation) Next() Rotation {
	return (r + 1) & 3
}

func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Sheet is a sprite sheet plus its three rotated variants. Slot 0 holds the
// base surface, the others are built from it by repeated quarter turns and
// are owned by the Sheet.
type Sheet struct {
	rot  [4]*surface.Surface
	cols int
	rows int
}

// NewSheet builds the rotation cache for base. The colorkey is applied to
// every rotated copy again since Rotate90 does not carry it over. A failed
// allocation aborts, there is no partial sheet.
func NewSheet(base *surface.Surface, cols, rows int) (*Sheet, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("sprite: bad grid %dx%d", cols, rows)
	}
	if base.W < cols || base.H < rows {
		return nil, fmt.Errorf("sprite: sheet %dx%d smaller than grid %dx%d",
			base.W, base.H, cols, rows)
	}
	s := &Sheet{
		cols: cols,
		rows: rows,
	}
	s.rot[Rot0] = base
	for i := 1; i < 4; i++ {
		r, err := surface.Rotate90(s.rot[i-1])
		if err != nil {
			return nil, fmt.Errorf("sprite: rotate %d failed: %v", i*90, err)
		}
		if key, ok := base.ColorKey(); ok {
			r.SetColorKey(key)
		}
		s.rot[i] = r
	}
	return s, nil
}

func (s *Sheet) Frames() int {
	return s.cols * s.rows
}

func (s *Sheet) Surface(r Rotation) *surface.Surface {
	return s.rot[r&3]
}

// Grid returns the effective frame grid for a rotation. For quarter and
// three-quarter turns columns and rows swap, as do the frame dimensions.
func (s *Sheet) Grid(r Rotation) (cols, rows, frameW, frameH int) {
	base := s.rot[Rot0]
	fw := base.W / s.cols
	fh := base.H / s.rows
	switch r & 3 {
	case Rot0, Rot180:
		return s.cols, s.rows, fw, fh
	default:
		return s.rows, s.cols, fh, fw
	}
}

// cell maps a cell of the unrotated grid to its location in the rotated one.
func (s *Sheet) cell(r Rotation, baseRow, baseCol int) (row, col int) {
	switch r & 3 {
	case Rot0:
		return baseRow, baseCol
	case Rot90:
		return baseCol, s.rows - 1 - baseRow
	case Rot180:
		return s.rows - 1 - baseRow, s.cols - 1 - baseCol
	default:
		return s.cols - 1 - baseCol, baseRow
	}
}

// SourceRect returns the pixel rectangle of frame inside the rotated sheet.
// Cell sizes are derived from the actual rotated surface so the grid always
// tiles it exactly; the last row and column absorb any remainder pixels.
func (s *Sheet) SourceRect(frame int, r Rotation) surface.Rect {
	sheet := s.rot[r&3]
	cols, rows, _, _ := s.Grid(r)

	fw := sheet.W / cols
	fh := sheet.H / rows

	baseCol := frame % s.cols
	baseRow := (frame / s.cols) % s.rows
	row, col := s.cell(r, baseRow, baseCol)

	x := col * fw
	y := row * fh
	w := fw
	h := fh
	if col == cols-1 {
		w = sheet.W - x
	}
	if row == rows-1 {
		h = sheet.H - y
	}
	return surface.Rect{X: x, Y: y, W: w, H: h}
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package present erases stale sprite pixels with the cheapest clear that is
// still correct: normally just the rectangle drawn on the previous tick,
// a full clear only at start and after geometry changes.
package present

import (
	"tagbounce/surface"
)

type Presenter struct {
	bg      uint32
	prev    surface.Rect
	hasPrev bool
}

// New returns a presenter clearing to bg, in the destination's encoding.
func New(bg uint32) *Presenter {
	return &Presenter{bg: bg}
}

// ClearPrev erases the rectangle tracked on the previous tick. It does
// nothing while no rectangle is tracked, which is the state right after a
// full clear.
func (p *Presenter) ClearPrev(dst *surface.Surface) {
	if !p.hasPrev {
		return
	}
	dst.Fill(p.prev, p.bg)
}

// Track remembers the rectangle drawn this tick.
func (p *Presenter) Track(r surface.Rect) {
	p.prev = r
	p.hasPrev = true
}

// FullClear wipes the whole destination and drops the tracked rectangle.
// Called at startup and whenever rotation or scale changes, since the old
// rectangle no longer matches the new geometry.
func (p *Presenter) FullClear(dst *surface.Surface) {
	dst.FillAll(p.bg)
	p.hasPrev = false
}

func (p *Presenter) Background() uint32 {
	return p.bg
}

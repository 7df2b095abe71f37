// SPDX-License-Identifier: GPL-2.0-or-later

// Package motion integrates the sprite position and reflects it off the
// screen edges.
package motion

import (
	"github.com/chewxy/math32"

	"tagbounce/surface"
)

type Controller struct {
	X, Y    float32
	VX, VY  float32
	ScreenW int
	ScreenH int
}

// DrawSize scales the effective frame dimensions and rounds to the nearest
// integer.
func DrawSize(frameW, frameH int, scale float32) (int, int) {
	w := int(math32.Round(float32(frameW) * scale))
	h := int(math32.Round(float32(frameH) * scale))
	return w, h
}

// Step advances one tick for a draw rectangle of dw x dh and bounces off the
// screen bounds, elastic and per axis. It reports whether an edge was hit.
func (c *Controller) Step(dw, dh int) bool {
	hit := false
	c.X += c.VX
	c.Y += c.VY
	if c.X < 0 {
		c.X = 0
		c.VX = -c.VX
		hit = true
	}
	if c.X+float32(dw) > float32(c.ScreenW) {
		c.X = float32(c.ScreenW - dw)
		c.VX = -c.VX
		hit = true
	}
	if c.Y < 0 {
		c.Y = 0
		c.VY = -c.VY
		hit = true
	}
	if c.Y+float32(dh) > float32(c.ScreenH) {
		c.Y = float32(c.ScreenH - dh)
		c.VY = -c.VY
		hit = true
	}
	return hit
}

// Clamp pulls the position back into the valid range for a dw x dh draw
// rectangle without touching the velocity. Used after rotation or scale
// changes so the sprite never sits partially off screen.
func (c *Controller) Clamp(dw, dh int) {
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X+float32(dw) > float32(c.ScreenW) {
		c.X = float32(c.ScreenW - dw)
	}
	if c.Y+float32(dh) > float32(c.ScreenH) {
		c.Y = float32(c.ScreenH - dh)
	}
}

// Center places the draw rectangle in the middle of the screen.
func (c *Controller) Center(dw, dh int) {
	c.X = float32(c.ScreenW-dw) * 0.5
	c.Y = float32(c.ScreenH-dh) * 0.5
}

// Rect is the current integer draw rectangle.
func (c *Controller) Rect(dw, dh int) surface.Rect {
	return surface.Rect{X: int(c.X), Y: int(c.Y), W: dw, H: dh}
}

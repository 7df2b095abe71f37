// SPDX-License-Identifier: GPL-2.0-or-later

// Package session owns all per-run sprite state and runs the tick pipeline:
// clock, motion, clear, source lookup, blit. The host owns the loop and the
// display, the session only ever touches the target surface it was given.
package session

import (
	"fmt"
	"time"

	"tagbounce/anim"
	"tagbounce/blit"
	qmath "tagbounce/math"
	"tagbounce/motion"
	"tagbounce/present"
	"tagbounce/sprite"
	"tagbounce/surface"
)

// ScaleOptions are the presets cycled by the scale command.
var ScaleOptions = []float32{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 6}

// NearestScaleIndex picks the preset closest to target.
func NearestScaleIndex(target float32) int {
	best := 0
	bestDiff := float32(0)
	for i, s := range ScaleOptions {
		d := qmath.Abs(target - s)
		if i == 0 || d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	return best
}

type Config struct {
	Target     *surface.Surface
	Sheet      *sprite.Sheet
	FPS        int
	Scale      float32 // snapped to the nearest preset
	VX, VY     float32
	Background uint32 // in the target's encoding
}

type Session struct {
	target  *surface.Surface
	sheet   *sprite.Sheet
	blitter blit.Blitter
	clock   *anim.Clock
	mot     motion.Controller
	pres    *present.Presenter

	rot      sprite.Rotation
	scaleIdx int
}

// New builds a session and issues the initial full clear. The blit strategy
// for the sheet/target format pair is resolved here, once.
func New(cfg Config) (*Session, error) {
	if cfg.Target == nil || cfg.Sheet == nil {
		return nil, fmt.Errorf("session: target and sheet are required")
	}
	clock, err := anim.NewClock(cfg.FPS, cfg.Sheet.Frames())
	if err != nil {
		return nil, err
	}
	s := &Session{
		target:   cfg.Target,
		sheet:    cfg.Sheet,
		blitter:  blit.Select(cfg.Sheet.Surface(sprite.Rot0).Format, cfg.Target.Format),
		clock:    clock,
		pres:     present.New(cfg.Background),
		scaleIdx: NearestScaleIndex(cfg.Scale),
	}
	s.mot = motion.Controller{
		VX:      cfg.VX,
		VY:      cfg.VY,
		ScreenW: cfg.Target.W,
		ScreenH: cfg.Target.H,
	}
	s.clock.SetScale(s.Scale())
	dw, dh := s.DrawSize()
	s.mot.Center(dw, dh)
	s.pres.FullClear(s.target)
	return s, nil
}

func (s *Session) Scale() float32 {
	return ScaleOptions[s.scaleIdx]
}

func (s *Session) Rotation() sprite.Rotation {
	return s.rot
}

func (s *Session) Frame() int {
	return s.clock.Frame()
}

// DrawSize is the current draw rectangle size: effective frame size for the
// active rotation times the active scale, rounded to nearest.
func (s *Session) DrawSize() (int, int) {
	_, _, fw, fh := s.sheet.Grid(s.rot)
	return motion.DrawSize(fw, fh, s.Scale())
}

// Rotate advances the rotation a quarter turn clockwise.
func (s *Session) Rotate() {
	s.rot = s.rot.Next()
	s.geometryChanged()
}

// CycleScale advances through the preset list, wrapping at the end.
func (s *Session) CycleScale() {
	s.scaleIdx = (s.scaleIdx + 1) % len(ScaleOptions)
	s.clock.SetScale(s.Scale())
	s.geometryChanged()
}

// geometryChanged re-clamps the position for the new draw rectangle and
// wipes the screen so no pixels of the old geometry survive. The presenter
// skips its next partial clear because of the full one.
func (s *Session) geometryChanged() {
	dw, dh := s.DrawSize()
	s.mot.Clamp(dw, dh)
	s.pres.FullClear(s.target)
}

// Step returns the effective animation step, for diagnostics.
func (s *Session) Step() time.Duration {
	return s.clock.Step()
}

// Update runs one tick: advance the animation by elapsed, move and bounce,
// clear the previous rectangle, blit the current frame. It returns the
// rectangle that was drawn and whether an edge was hit. A blit error leaves
// the tick otherwise complete; the caller decides whether to log it.
func (s *Session) Update(elapsed time.Duration) (surface.Rect, bool, error) {
	frame := s.clock.Advance(elapsed)

	dw, dh := s.DrawSize()
	bounced := s.mot.Step(dw, dh)

	s.pres.ClearPrev(s.target)

	src := s.sheet.SourceRect(frame, s.rot)
	dst := s.mot.Rect(dw, dh)
	scale := s.Scale()
	if scale == 1 {
		// unscaled copies take the source size as is
		dst.W = src.W
		dst.H = src.H
	}

	err := s.blitter.Scaled(s.sheet.Surface(s.rot), src, s.target, dst, scale)

	s.pres.Track(dst)
	return dst, bounced, err
}

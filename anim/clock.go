// SPDX-License-Identifier: GPL-2.0-or-later

// Package anim advances the animation frame index on accumulated elapsed
// time. Large scales pay for more pixels per blit, so the effective step
// gets stretched by a tier factor to keep the perceived update rate stable.
package anim

import (
	"fmt"
	"time"
)

// Scale thresholds for the step tiers.
const (
	tier2Scale = 2.5
	tier3Scale = 3.5
)

type Clock struct {
	step   time.Duration // nominal, from the target frame rate
	eff    time.Duration // step * tier factor
	accum  time.Duration
	frame  int
	frames int
}

// NewClock builds a clock for an animation of frames frames at fps frames
// per second. The nominal step is 1000/fps in whole milliseconds.
func NewClock(fps, frames int) (*Clock, error) {
	if fps < 1 || fps > 1000 {
		return nil, fmt.Errorf("anim: fps %d out of range", fps)
	}
	if frames < 1 {
		return nil, fmt.Errorf("anim: need at least one frame, got %d", frames)
	}
	step := time.Duration(1000/fps) * time.Millisecond
	return &Clock{
		step:   step,
		eff:    step,
		frames: frames,
	}, nil
}

// SetScale picks the tier factor for the given sprite scale.
func (c *Clock) SetScale(scale float32) {
	mul := time.Duration(1)
	if scale >= tier3Scale {
		mul = 3
	} else if scale >= tier2Scale {
		mul = 2
	}
	c.eff = c.step * mul
}

// Advance adds elapsed to the accumulator and steps the frame for every full
// effective step in it, wrapping at the frame count. The remainder stays in
// the accumulator so no time is lost across ticks.
func (c *Clock) Advance(elapsed time.Duration) int {
	c.accum += elapsed
	for c.accum >= c.eff {
		c.accum -= c.eff
		c.frame = (c.frame + 1) % c.frames
	}
	return c.frame
}

func (c *Clock) Frame() int {
	return c.frame
}

// Step returns the effective step duration.
func (c *Clock) Step() time.Duration {
	return c.eff
}

// Pending returns the unconsumed elapsed time.
func (c *Clock) Pending() time.Duration {
	return c.accum
}

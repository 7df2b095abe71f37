// SPDX-License-Identifier: GPL-2.0-or-later

// Package snd plays short synthesized blips for bounce and command
// feedback. Entirely optional, the program runs fine without a working
// audio device.
package snd

import (
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"tagbounce/cvars"
)

const (
	desiredSampleRate = 11025

	bounceFreq  = 220.0
	commandFreq = 440.0
	blipTime    = 0.06 // seconds
)

var initialized bool

func chunkSize() int {
	if desiredSampleRate <= 11025 {
		return 256
	} else if desiredSampleRate <= 22050 {
		return 512
	} else if desiredSampleRate <= 44100 {
		return 1024
	}
	return 2048
}

func Init() error {
	sr := beep.SampleRate(desiredSampleRate)
	if err := speaker.Init(sr, chunkSize()); err != nil {
		return err
	}
	initialized = true
	return nil
}

func Shutdown() {
	if !initialized {
		return
	}
	speaker.Close()
	initialized = false
}

// blip is a decaying sine burst.
type blip struct {
	freq   float64
	volume float64
	pos    int
	length int
}

func (b *blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= b.length {
			break
		}
		t := float64(b.pos) / desiredSampleRate
		decay := 1 - float64(b.pos)/float64(b.length)
		v := math.Sin(2*math.Pi*b.freq*t) * decay * b.volume
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *blip) Err() error {
	return nil
}

func play(freq float64) {
	if !initialized {
		return
	}
	vol := float64(cvars.Volume.Value())
	if vol <= 0 {
		return
	}
	speaker.Play(&blip{
		freq:   freq,
		volume: vol,
		length: int(blipTime * desiredSampleRate),
	})
}

// PlayBounce marks an edge reflection.
func PlayBounce() {
	play(bounceFreq)
}

// PlayCommand acknowledges a rotate or scale command.
func PlayCommand() {
	play(commandFreq)
}

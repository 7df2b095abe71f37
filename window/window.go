// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the SDL window and exposes its surface as a plain
// pixel buffer. All SDL calls run on the OS main thread.
package window

import (
	"log"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"tagbounce/surface"
)

var (
	window      *sdl.Window
	winSurf     *sdl.Surface
	target      *surface.Surface
	is565       bool
	skipUpdates bool
)

// Create opens the window and caches its surface once. Fatal on failure,
// there is nothing to draw on without it.
func Create(title string, width, height int32, fullscreen bool) error {
	var err error
	mainthread.Call(func() {
		var flags uint32
		if fullscreen {
			flags |= sdl.WINDOW_FULLSCREEN
		}
		window, err = sdl.CreateWindow(title,
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
		if err != nil {
			err = errors.Wrap(err, "create window")
			return
		}
		winSurf, err = window.GetSurface()
		if err != nil {
			err = errors.Wrap(err, "window surface")
			return
		}
		is565 = winSurf.Format.Format == sdl.PIXELFORMAT_RGB565 &&
			winSurf.Format.BytesPerPixel == 2
		f := surface.Format{
			BytesPerPixel: int(winSurf.Format.BytesPerPixel),
			Packed16:      is565,
		}
		target, err = surface.FromPixels(winSurf.Pixels(),
			int(winSurf.W), int(winSurf.H), int(winSurf.Pitch), f)
	})
	if err != nil {
		return err
	}
	log.Printf("Using window surface %dx%d format=%s bpp=%d (is565=%v)",
		winSurf.W, winSurf.H, sdl.GetPixelFormatName(uint(winSurf.Format.Format)),
		winSurf.Format.BytesPerPixel, is565)
	return nil
}

func Size() (int, int) {
	return target.W, target.H
}

// Target is the window surface as a writable pixel buffer. The buffer stays
// valid for the window's lifetime since the surface is cached once.
func Target() *surface.Surface {
	return target
}

func Format() *sdl.PixelFormat {
	return winSurf.Format
}

func Is565() bool {
	return is565
}

func MapRGB(r, g, b uint8) uint32 {
	return sdl.MapRGB(winSurf.Format, r, g, b)
}

// Minimized reports whether the window is currently minimized.
func Minimized() bool {
	var flags uint32
	mainthread.Call(func() {
		flags = window.GetFlags()
	})
	return flags&sdl.WINDOW_MINIMIZED != 0
}

// SetSkipUpdates suppresses Present while the window is not visible.
func SetSkipUpdates(skip bool) {
	skipUpdates = skip
}

// Present publishes the window surface.
func Present() {
	if skipUpdates {
		return
	}
	mainthread.Call(func() {
		if err := window.UpdateSurface(); err != nil {
			log.Printf("UpdateSurface failed: %v", err)
		}
	})
}

func Shutdown() {
	mainthread.Call(func() {
		if window != nil {
			window.Destroy()
			window = nil
		}
	})
	winSurf = nil
	target = nil
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package asset decodes sprite sheets and converts them into the display's
// pixel format. A load hands out a uuid and the cache is keyed by it; the
// holder resolves the handle through Get whenever it needs the pixels.
package asset

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"tagbounce/filesystem"
	"tagbounce/surface"
)

// The reserved transparent background of every sheet, an exact gray chosen
// to stay clear of the sprite colors.
const (
	KeyR = 32
	KeyG = 32
	KeyB = 32
)

// Sheet is a decoded sprite sheet in the display format, with the gray
// colorkey already applied in that format's encoding.
type Sheet struct {
	ID   uuid.UUID
	Surf *surface.Surface
}

var (
	mu     sync.Mutex
	cache  = make(map[uuid.UUID]*Sheet)
	byPath = make(map[string]uuid.UUID)
)

// register issues a handle for a decoded sheet. Callers hold mu.
func register(path string, surf *surface.Surface) *Sheet {
	s := &Sheet{
		ID:   uuid.Must(uuid.NewV7()),
		Surf: surf,
	}
	cache[s.ID] = s
	byPath[path] = s.ID
	return s
}

// Get resolves a handle issued by LoadSheet.
func Get(id uuid.UUID) (*Sheet, bool) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := cache[id]
	return s, ok
}

// LoadSheet reads a 24 bit BMP through the filesystem namespace, converts it
// to the given display format, applies the gray colorkey and returns a cache
// handle. Loading the same path again returns the existing handle. The
// cached surface is freshly owned, no SDL resources stay alive.
func LoadSheet(path string, display *sdl.PixelFormat) (uuid.UUID, error) {
	mu.Lock()
	defer mu.Unlock()
	if id, ok := byPath[path]; ok {
		return id, nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "read sheet %s", path)
	}
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "sheet rwops")
	}
	bmp, err := sdl.LoadBMPRW(rw, true)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "decode sheet %s", path)
	}
	defer bmp.Free()

	// key in the BMP's own format so the conversion keeps it exact
	srcKey := sdl.MapRGB(bmp.Format, KeyR, KeyG, KeyB)
	bmp.SetColorKey(true, srcKey)

	conv, err := bmp.Convert(display, 0)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "convert sheet %s", path)
	}
	defer conv.Free()

	key := sdl.MapRGB(conv.Format, KeyR, KeyG, KeyB)

	surf, err := copySurface(conv)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "copy sheet %s", path)
	}
	surf.SetColorKey(key)

	s := register(path, surf)
	log.Printf("Loaded sheet %s as %v (%dx%d, key %#x)", path, s.ID, surf.W, surf.H, key)
	return s.ID, nil
}

// copySurface copies an SDL surface's pixels into an owned buffer.
func copySurface(src *sdl.Surface) (*surface.Surface, error) {
	f := surface.Format{
		BytesPerPixel: int(src.Format.BytesPerPixel),
		Packed16:      src.Format.Format == sdl.PIXELFORMAT_RGB565,
	}
	dst, err := surface.New(int(src.W), int(src.H), f)
	if err != nil {
		return nil, err
	}
	src.Lock()
	defer src.Unlock()
	pix := src.Pixels()
	row := int(src.W) * f.BytesPerPixel
	for y := 0; y < int(src.H); y++ {
		copy(dst.Pix[y*dst.Pitch:y*dst.Pitch+row], pix[y*int(src.Pitch):])
	}
	return dst, nil
}

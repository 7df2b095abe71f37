// SPDX-License-Identifier: GPL-2.0-or-later

// Package taglib wires the host shell together: SDL init, window, asset
// load, sound, and the tick loop driving the session.
package taglib

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"

	"tagbounce/asset"
	"tagbounce/commandline"
	"tagbounce/cvar"
	"tagbounce/cvars"
	"tagbounce/filesystem"
	"tagbounce/input"
	qmath "tagbounce/math"
	"tagbounce/session"
	"tagbounce/snd"
	"tagbounce/sprite"
	"tagbounce/window"
)

const (
	title      = "Tag Bounce"
	spriteCols = 8
	spriteRows = 4
)

func applySetVars() {
	for _, kv := range commandline.SetVars() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Printf("Ignoring malformed -set %q", kv)
			continue
		}
		if err := cvar.Set(name, value); err != nil {
			log.Printf("Ignoring -set %q: %v", kv, err)
		}
	}
}

func Main() error {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	log.Printf("Found SDL version %d.%d.%d", v.Major, v.Minor, v.Patch)

	var err error
	mainthread.Call(func() {
		err = sdl.Init(sdl.INIT_VIDEO)
	})
	if err != nil {
		return err
	}
	defer mainthread.Call(sdl.Quit)

	applySetVars()
	if cvars.Developer.Bool() {
		for _, cv := range cvar.All() {
			log.Printf("%s = %q", cv.Name(), cv.String())
		}
	}

	if err := window.Create(title,
		int32(commandline.Width()), int32(commandline.Height()),
		commandline.Fullscreen()); err != nil {
		return err
	}
	defer window.Shutdown()

	filesystem.UseBaseDir(commandline.BaseDir())

	id, err := asset.LoadSheet(commandline.Sheet(), window.Format())
	if err != nil {
		return err
	}
	sheet, ok := asset.Get(id)
	if !ok {
		return fmt.Errorf("sheet %v missing from the cache", id)
	}
	cache, err := sprite.NewSheet(sheet.Surf, spriteCols, spriteRows)
	if err != nil {
		return err
	}

	fps := int(qmath.Clamp(1, cvars.SpriteFps.Value(), 1000))
	sess, err := session.New(session.Config{
		Target:     window.Target(),
		Sheet:      cache,
		FPS:        fps,
		Scale:      cvars.SpriteScale.Value(),
		VX:         cvars.MoveSpeedX.Value(),
		VY:         cvars.MoveSpeedY.Value(),
		Background: window.MapRGB(0, 0, 0),
	})
	if err != nil {
		return err
	}

	if commandline.Sound() {
		if err := snd.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
		defer snd.Shutdown()
	}

	logSizes(sess, cache)
	return run(sess)
}

func logSizes(sess *session.Session, cache *sprite.Sheet) {
	base := cache.Surface(sprite.Rot0)
	_, _, fw, fh := cache.Grid(sess.Rotation())
	dw, dh := sess.DrawSize()
	sw, sh := window.Size()
	log.Printf("SPRITE: %dx%d  grid %dx%d  frame %dx%d  draw %dx%d  screen %dx%d  rot=%d  scale=%.2f  is565=%v",
		base.W, base.H, spriteCols, spriteRows, fw, fh, dw, dh, sw, sh,
		sess.Rotation().Degrees(), sess.Scale(), window.Is565())
}

func run(sess *session.Session) error {
	last := time.Now()
	for {
		for _, c := range input.Poll() {
			switch c {
			case input.Quit:
				log.Printf("Exit requested")
				return nil
			case input.Rotate:
				sess.Rotate()
				snd.PlayCommand()
				dw, dh := sess.DrawSize()
				log.Printf("Rotated to %d cw; draw %dx%d (scale=%.2f)",
					sess.Rotation().Degrees(), dw, dh, sess.Scale())
			case input.CycleScale:
				sess.CycleScale()
				snd.PlayCommand()
				dw, dh := sess.DrawSize()
				log.Printf("Scale %.2f; draw %dx%d; anim step %v",
					sess.Scale(), dw, dh, sess.Step())
			}
		}

		// while minimized there is nothing to present, just keep ticking
		if window.Minimized() {
			window.SetSkipUpdates(true)
			time.Sleep(32 * time.Millisecond)
		} else {
			window.SetSkipUpdates(false)
		}

		now := time.Now()
		elapsed := now.Sub(last)
		last = now

		dst, bounced, err := sess.Update(elapsed)
		if err != nil {
			// a bad frame is not worth dying for
			log.Printf("Blit failed: %v (dst %v)", err, dst)
		}
		if bounced {
			snd.PlayBounce()
		}

		window.Present()

		sleep := qmath.Clamp(1, cvars.HostSleep.Value(), 100)
		time.Sleep(time.Duration(sleep) * time.Millisecond)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

// package input turns SDL events into discrete commands
package input

import (
	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"

	kc "tagbounce/keycode"
)

type Command int

const (
	None Command = iota
	Rotate
	CycleScale
	Quit
)

// keyBindings maps internal key numbers to commands. Several keys quit so
// the program is easy to leave on devices without a full keyboard.
var keyBindings = map[int]Command{
	kc.ESCAPE: Quit,
	kc.ENTER:  Quit,
	kc.SPACE:  Quit,
	kc.BACK:   Quit,
	kc.Q:      Quit,
	kc.R:      Rotate,
	kc.S:      CycleScale,
}

func sdlScancodeToKey(e *sdl.KeyboardEvent) int {
	// We want the key and not what it is mapped to. So use Scancode
	switch e.Keysym.Scancode {
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_RETURN2:
		return kc.ENTER
	case sdl.SCANCODE_ESCAPE:
		return kc.ESCAPE
	case sdl.SCANCODE_SPACE:
		return kc.SPACE
	case sdl.SCANCODE_AC_BACK:
		return kc.BACK
	case sdl.SCANCODE_Q:
		return kc.Q
	case sdl.SCANCODE_R:
		return kc.R
	case sdl.SCANCODE_S:
		return kc.S
	default:
		return 0
	}
}

// Poll drains the SDL event queue and returns the commands it produced, in
// order. Each key press yields its command exactly once, repeats are
// dropped.
func Poll() []Command {
	var cmds []Command
	mainthread.Call(func() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				cmds = append(cmds, Quit)
			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED || e.Repeat != 0 {
					continue
				}
				if c, ok := keyBindings[sdlScancodeToKey(e)]; ok {
					cmds = append(cmds, c)
				}
			}
		}
	})
	return cmds
}

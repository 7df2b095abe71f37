// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvars registers every runtime variable of the program.
package cvars

import (
	"tagbounce/cvar"
)

var (
	Developer   *cvar.Cvar
	HostSleep   *cvar.Cvar
	MoveSpeedX  *cvar.Cvar
	MoveSpeedY  *cvar.Cvar
	SpriteFps   *cvar.Cvar
	SpriteScale *cvar.Cvar
	Volume      *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0")
	HostSleep = cvar.MustRegister("host_sleep", "16") // tick pacing in ms
	MoveSpeedX = cvar.MustRegister("mv_speedx", "1.8")
	MoveSpeedY = cvar.MustRegister("mv_speedy", "1.4")
	SpriteFps = cvar.MustRegister("spr_fps", "24")
	SpriteScale = cvar.MustRegister("spr_scale", "2") // snapped to the preset list
	Volume = cvar.MustRegister("volume", "0.7")
}

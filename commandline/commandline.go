package commandline

import (
	"flag"
)

var (
	fullscreen bool
	window     bool
	noSound    bool

	height int
	width  int

	basedir string
	sheet   string
	setVars multiFlag
)

// multiFlag collects repeated "-set name=value" pairs.
type multiFlag []string

func (m *multiFlag) String() string {
	return ""
}

func (m *multiFlag) Set(s string) error {
	*m = append(*m, s)
	return nil
}

func init() {
	flag.BoolVar(&fullscreen, "f", true, "")
	flag.BoolVar(&fullscreen, "fullscreen", true, "run fullscreen")
	flag.BoolVar(&window, "window", false, "run windowed")
	flag.BoolVar(&noSound, "nosound", false, "disable sound output")
	flag.IntVar(&width, "width", 720, "window width")
	flag.IntVar(&height, "height", 720, "window height")
	flag.StringVar(&basedir, "basedir", ".", "asset base directory")
	flag.StringVar(&sheet, "sheet", "sheet.bmp", "sprite sheet file")
	flag.Var(&setVars, "set", "set a variable, name=value, repeatable")
}

func Fullscreen() bool {
	// -window wins over the fullscreen default
	return fullscreen && !window
}

func Sound() bool {
	return !noSound
}

func Width() int {
	return width
}

func Height() int {
	return height
}

func BaseDir() string {
	return basedir
}

func Sheet() string {
	return sheet
}

func SetVars() []string {
	return setVars
}

package keycode

const (
	ENTER  = 13
	ESCAPE = 27
	SPACE  = 32
	BACK   = 158 // android style back navigation

	Q = 'q'
	R = 'r'
	S = 's'
)

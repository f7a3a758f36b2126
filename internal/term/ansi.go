package term

// Pre-allocated control sequences written to the terminal. Mouse reporting
// needs three modes: click tracking (1000), motion tracking (1002), and SGR
// extended coordinates (1006).
var (
	mouseClickOn   = []byte("\x1b[?1000h")
	mouseClickOff  = []byte("\x1b[?1000l")
	mouseMotionOn  = []byte("\x1b[?1002h")
	mouseMotionOff = []byte("\x1b[?1002l")
	mouseSGROn     = []byte("\x1b[?1006h")
	mouseSGROff    = []byte("\x1b[?1006l")

	altScreenEnter = []byte("\x1b[?1049h")
	altScreenExit  = []byte("\x1b[?1049l")
	cursorHide     = []byte("\x1b[?25l")
	cursorShow     = []byte("\x1b[?25h")
)

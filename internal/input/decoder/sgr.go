package decoder

import (
	"github.com/dshills/termkit/internal/input"
	"github.com/dshills/termkit/internal/input/mouse"
)

// SGR button byte layout.
const (
	sgrButtonMask = 0x3
	sgrMotionFlag = 0x20
	sgrScrollMask = 0x40 | 0x80
)

// decodeSGRMouse parses the Cb;Cx;Cy parameters and M/m terminator of an
// SGR mouse report whose "ESC [ <" prefix was already consumed. Any parse
// failure before the terminator yields Unknown, not an error.
func (d *Decoder) decodeSGRMouse() input.Event {
	var params [3]int
	n := 0
	cur := 0
	sawDigit := false
	var terminator byte

loop:
	for {
		b, ok := d.readSeqByte()
		if !ok {
			return input.Unknown()
		}

		switch {
		case b >= '0' && b <= '9':
			if cur < 1<<24 {
				cur = cur*10 + int(b-'0')
			}
			sawDigit = true
		case b == ';':
			if n >= len(params) {
				return input.Unknown()
			}
			params[n] = cur
			n++
			cur = 0
			sawDigit = false
		case b == 'M' || b == 'm':
			if sawDigit && n < len(params) {
				params[n] = cur
				n++
			}
			terminator = b
			break loop
		default:
			return input.Unknown()
		}
	}

	if n < 3 {
		return input.Unknown()
	}

	cb, cx, cy := params[0], params[1], params[2]

	ev := mouse.Event{
		X:      cx, // 1-indexed, passed through unmodified
		Y:      cy,
		Button: (cb & sgrButtonMask) + 1,
	}

	switch {
	case cb&sgrScrollMask != 0:
		if cb&0x1 == 0 {
			ev.Action = mouse.ActionScrollUp
			ev.Delta = -1
		} else {
			ev.Action = mouse.ActionScrollDown
			ev.Delta = 1
		}
	case cb&sgrMotionFlag != 0:
		ev.Action = mouse.ActionMove
	case terminator == 'M':
		ev.Action = mouse.ActionPress
	default:
		ev.Action = mouse.ActionRelease
	}

	return input.Mouse(ev)
}

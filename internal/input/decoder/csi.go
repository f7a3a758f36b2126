package decoder

import (
	"github.com/dshills/termkit/internal/input"
	"github.com/dshills/termkit/internal/input/key"
)

// maxCSIParams is the fixed parameter capacity. Parameters beyond it are
// silently dropped rather than failing the decode; real terminals never send
// more than two on the key paths handled here.
const maxCSIParams = 4

// extendedKeys maps the first parameter of an ESC [ <n> ~ sequence to its
// named key.
var extendedKeys = map[int]key.Code{
	1:  key.CodeHome,
	2:  key.CodeInsert,
	3:  key.CodeDelete,
	4:  key.CodeEnd,
	5:  key.CodePageUp,
	6:  key.CodePageDown,
	7:  key.CodeHome,
	8:  key.CodeEnd,
	11: key.CodeF1,
	12: key.CodeF2,
	13: key.CodeF3,
	14: key.CodeF4,
	15: key.CodeF5,
	17: key.CodeF6,
	18: key.CodeF7,
	19: key.CodeF8,
	20: key.CodeF9,
	21: key.CodeF10,
	23: key.CodeF11,
	24: key.CodeF12,
}

// decodeCSI parses the parameter list and final byte of a control sequence
// whose "ESC [" prefix was already consumed. Parameters are semicolon
// separated runs of digits; the first non-digit, non-semicolon byte is the
// terminator and selects the behavior.
func (d *Decoder) decodeCSI() input.Event {
	var params [maxCSIParams]int
	stored := 0 // parameters kept
	seen := 0   // parameters observed, including dropped ones
	cur := 0
	sawParam := false

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
			sawParam = true
		case b == ';':
			if stored < maxCSIParams {
				params[stored] = cur
				stored++
			}
			seen++
			cur = 0
			sawParam = true
		case b == '<':
			// SGR mouse sub-protocol handoff.
			return d.decodeSGRMouse()
		default:
			if sawParam {
				if stored < maxCSIParams {
					params[stored] = cur
					stored++
				}
				seen++
			}
			return d.dispatchCSI(b, params[:stored], seen)
		}
	}
}

// dispatchCSI selects the event for a CSI terminator byte. Anything not in
// the table below is an Unknown event, never an error.
func (d *Decoder) dispatchCSI(terminator byte, params []int, seen int) input.Event {
	switch terminator {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		var code key.Code
		switch terminator {
		case 'A':
			code = key.CodeUp
		case 'B':
			code = key.CodeDown
		case 'C':
			code = key.CodeRight
		case 'D':
			code = key.CodeLeft
		case 'H':
			code = key.CodeHome
		case 'F':
			code = key.CodeEnd
		}
		var mod key.Modifier
		if seen >= 2 && len(params) > 0 {
			mod = key.DecodeParam(params[len(params)-1])
		}
		return input.Key(key.NewEvent(code, mod))

	case 'Z':
		return input.Key(key.NewEvent(key.CodeTab, key.ModShift))

	case '~':
		if len(params) == 0 {
			return input.Unknown()
		}
		code, ok := extendedKeys[params[0]]
		if !ok {
			return input.Unknown()
		}
		var mod key.Modifier
		if len(params) >= 2 {
			mod = key.DecodeParam(params[1])
		}
		return input.Key(key.NewEvent(code, mod))

	default:
		return input.Unknown()
	}
}

// decodeSS3 parses the single final byte of an "ESC O" sequence, emitted by
// terminals in application keypad mode for arrows, Home/End, and F1-F4.
func (d *Decoder) decodeSS3() input.Event {
	b, ok := d.readSeqByte()
	if !ok {
		return input.Unknown()
	}

	var code key.Code
	switch b {
	case 'A':
		code = key.CodeUp
	case 'B':
		code = key.CodeDown
	case 'C':
		code = key.CodeRight
	case 'D':
		code = key.CodeLeft
	case 'H':
		code = key.CodeHome
	case 'F':
		code = key.CodeEnd
	case 'P':
		code = key.CodeF1
	case 'Q':
		code = key.CodeF2
	case 'R':
		code = key.CodeF3
	case 'S':
		code = key.CodeF4
	default:
		return input.Unknown()
	}
	return input.Key(key.NewEvent(code, key.ModNone))
}

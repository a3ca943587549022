// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package event

import "github.com/ericwq/keyseq/parser"

const (
	InputState_Ground      = iota
	InputState_SS3         // ESC O seen, the next character is the SS3 argument
	InputState_CSI_Bracket // ESC [ [ seen, the next character is the final
)

// shared by every synthesized CSI dispatch, nobody writes to it.
var emptyParams parser.Params

// Performer sits between the parser and a Handler. It looks one token ahead
// to tell a function key from the characters it is made of:
//
//	ESC O A    SS3 'A'          not Alt+O followed by 'A'
//	ESC [ [ A  CSI 'A'          Linux console F1, not Alt+[ ...
//	DEL        Execute(0x7F)    Backspace, not a printable character
//
// The pending prefix is consumed by the next token, whatever it is. A
// Performer is not safe for concurrent use; use one per input stream.
//
// https://en.wikipedia.org/wiki/C0_and_C1_control_codes#C1_control_codes_for_general_use
// https://en.wikipedia.org/wiki/ISO/IEC_2022#Shift_functions
type Performer struct {
	handler    Handler
	state      int
	csiBracket bool
}

// NewPerformer returns a Performer forwarding to h, with the Linux console
// rule (ESC [ [) enabled.
func NewPerformer(h Handler) *Performer {
	p := new(Performer)
	p.handler = h
	p.state = InputState_Ground
	p.csiBracket = true
	return p
}

// SetCSIBracket enables or disables the ESC [ [ rule. When disabled, CSI '['
// is forwarded like any other CSI sequence.
func (p *Performer) SetCSIBracket(enable bool) {
	p.csiBracket = enable
	if !enable && p.state == InputState_CSI_Bracket {
		p.state = InputState_Ground
	}
}

func (p *Performer) State() int { return p.state }

// Pending reports whether a prefix waits for the next token.
func (p *Performer) Pending() bool { return p.state != InputState_Ground }

// Reset drops the pending prefix, if any.
func (p *Performer) Reset() { p.state = InputState_Ground }

// Flush forwards the pending prefix as the token it was suppressed from: a
// lone ESC O is Alt+O. Used when no lookahead will come, such as on escape
// timeout or end of input.
func (p *Performer) Flush() {
	switch p.state {
	case InputState_SS3:
		p.state = InputState_Ground
		p.handler.EscDispatch(nil, false, 'O')
	case InputState_CSI_Bracket:
		p.state = InputState_Ground
		p.handler.CsiDispatch(&emptyParams, nil, false, '[')
	}
}

func (p *Performer) Print(c rune) {
	switch p.state {
	case InputState_SS3:
		p.state = InputState_Ground
		p.handler.SS3(c)
	case InputState_CSI_Bracket:
		p.state = InputState_Ground
		p.handler.CsiDispatch(&emptyParams, nil, false, c)
	default:
		if c == 0x7F {
			p.handler.Execute(0x7F)
		} else {
			p.handler.Print(c)
		}
	}
}

func (p *Performer) Execute(b byte) {
	p.state = InputState_Ground
	p.handler.Execute(b)
}

func (p *Performer) CsiDispatch(params *parser.Params, intermediates []byte, ignore bool, c rune) {
	// the parameters are not checked: any CSI [ is the Linux console prefix
	if p.csiBracket && c == '[' && len(intermediates) == 0 && !ignore {
		p.state = InputState_CSI_Bracket
		return
	}

	p.state = InputState_Ground
	p.handler.CsiDispatch(params, intermediates, ignore, c)
}

func (p *Performer) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if b == 'O' && p.state != InputState_CSI_Bracket {
		p.state = InputState_SS3
		return
	}

	p.state = InputState_Ground
	p.handler.EscDispatch(intermediates, ignore, b)
}

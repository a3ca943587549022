// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

type Transition struct {
	action    Action
	nextState State
}

// State is one state of the input tokenizer. The layout follows
// https://vt100.net/emu/dec_ansi_parser, trimmed to what a keyboard sends:
// there are no DCS, OSC or SOS/PM/APC strings on the input side.
type State interface {
	enter() Action
	exit() Action
	eventList(r rune) Transition
	Name() string
}

type state struct{}

func (s state) enter() Action               { return ignore{} }
func (s state) exit() Action                { return ignore{} }
func (s state) eventList(r rune) Transition { return Transition{} }

// transitions which apply in every state, checked before the state's own list.
func anywhere(s State, r rune) Transition {
	if r == 0x1B {
		// escape key followed by another escape sequence
		if _, ok := s.(escape); ok {
			return Transition{escExecute{}, escape{}}
		}
		return Transition{ignore{}, escape{}}
	}

	// 8-bit CSI
	if r == 0x9B {
		return Transition{ignore{}, csiEntry{}}
	}

	// other C1 controls
	if 0x80 <= r && r <= 0x9F {
		return Transition{execute{}, ground{}}
	}

	// both action and nextState is nil
	return Transition{}
}

func c0(r rune) bool {
	// event 00-1A,1C-1F
	return r < 0x20 && r != 0x1B
}

type ground struct{ state }

func (g ground) Name() string { return "Ground" }
func (g ground) eventList(r rune) Transition {
	// C0 control
	if c0(r) {
		return Transition{execute{}, nil}
	}

	// DEL is printable here, it's up to the receiver to decide
	// whether it's a backspace.
	if 0x20 <= r && r <= 0x7F || r >= 0xA0 {
		return Transition{print{}, nil}
	}

	return Transition{ignore{}, nil}
}

type escape struct{ state }

func (e escape) Name() string  { return "Escape" }
func (e escape) enter() Action { return clear{} }
func (e escape) eventList(r rune) Transition {
	// Alt + control key: Alt+Enter, Alt+Backspace, Shift+Tab (ESC HT)
	if c0(r) || r == 0x7F {
		return Transition{escDispatch{}, ground{}}
	}

	// goto esc intermediate
	if 0x20 <= r && r <= 0x2F {
		return Transition{collect{}, escapeIntermediate{}}
	}

	// goto csi entry
	if r == 0x5B {
		return Transition{nil, csiEntry{}}
	}

	// goto ground, ESC O is left for the receiver to resolve
	if 0x30 <= r && r <= 0x7E {
		return Transition{escDispatch{}, ground{}}
	}

	// Alt + non-ASCII character
	return Transition{escPrint{}, ground{}}
}

type escapeIntermediate struct{ state }

func (e escapeIntermediate) Name() string { return "EscapeIntermediate" }
func (e escapeIntermediate) eventList(r rune) Transition {
	// c0 control
	if c0(r) {
		return Transition{execute{}, nil}
	}

	// collect
	if 0x20 <= r && r <= 0x2F {
		return Transition{collect{}, nil}
	}

	// goto ground
	if 0x30 <= r && r <= 0x7E {
		return Transition{escDispatch{}, ground{}}
	}

	// 7F / ignore, non-ASCII aborts the sequence
	if r == 0x7F {
		return Transition{ignore{}, nil}
	}
	return Transition{ignore{}, ground{}}
}

type csiEntry struct{ state }

func (c csiEntry) Name() string  { return "CsiEntry" }
func (c csiEntry) enter() Action { return clear{} }
func (c csiEntry) eventList(r rune) Transition {
	// c0 control
	if c0(r) {
		return Transition{execute{}, nil}
	}

	// goto ground: dispatch
	if 0x40 <= r && r <= 0x7E {
		return Transition{csiDispatch{}, ground{}}
	}

	// goto csi param: param
	// 0~9,:,;
	if 0x30 <= r && r <= 0x3B {
		return Transition{param{}, csiParam{}}
	}

	// goto csi param: collect
	// <,=,>,?
	if 0x3C <= r && r <= 0x3F {
		return Transition{collect{}, csiParam{}}
	}

	// goto csi intermediate: collect
	// space,!,",#,$,%,&,',(,),*,+,comma,-,.,/
	if 0x20 <= r && r <= 0x2F {
		return Transition{collect{}, csiIntermediate{}}
	}

	return csiAbort(r)
}

type csiParam struct{ state }

func (c csiParam) Name() string { return "CsiParam" }
func (c csiParam) eventList(r rune) Transition {
	// c0 control
	if c0(r) {
		return Transition{execute{}, nil}
	}

	// csi param
	// 0~9,:,;
	if 0x30 <= r && r <= 0x3B {
		return Transition{param{}, nil}
	}

	// goto csi ignore
	// <,=,>,?
	if 0x3C <= r && r <= 0x3F {
		return Transition{ignore{}, csiIgnore{}}
	}

	// goto csi intermediate: collect
	if 0x20 <= r && r <= 0x2F {
		return Transition{collect{}, csiIntermediate{}}
	}

	// goto ground: csi dispatch
	if 0x40 <= r && r <= 0x7E {
		return Transition{csiDispatch{}, ground{}}
	}

	return csiAbort(r)
}

type csiIntermediate struct{ state }

func (c csiIntermediate) Name() string { return "CsiIntermediate" }
func (c csiIntermediate) eventList(r rune) Transition {
	// c0 control
	if c0(r) {
		return Transition{execute{}, nil}
	}

	// collect
	if 0x20 <= r && r <= 0x2F {
		return Transition{collect{}, nil}
	}

	// goto ground: csi dispatch
	if 0x40 <= r && r <= 0x7E {
		return Transition{csiDispatch{}, ground{}}
	}

	// goto csi ignore
	if 0x30 <= r && r <= 0x3F {
		return Transition{ignore{}, csiIgnore{}}
	}

	return csiAbort(r)
}

type csiIgnore struct{ state }

func (c csiIgnore) Name() string { return "CsiIgnore" }
func (c csiIgnore) eventList(r rune) Transition {
	// c0 control
	if c0(r) {
		return Transition{execute{}, nil}
	}

	// goto ground
	if 0x40 <= r && r <= 0x7E {
		return Transition{ignore{}, ground{}}
	}

	// event 20-3F / ignore
	if 0x20 <= r && r <= 0x3F {
		return Transition{ignore{}, nil}
	}

	return csiAbort(r)
}

// 7F is ignored, a non-ASCII character can't be part of a CSI sequence: the
// sequence is dropped and the character with it.
func csiAbort(r rune) Transition {
	if r == 0x7F {
		return Transition{ignore{}, nil}
	}
	return Transition{ignore{}, ground{}}
}

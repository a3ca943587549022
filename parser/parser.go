// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import "unicode/utf8"

// Parser turns the bytes read from a terminal into Print, Execute,
// EscDispatch and CsiDispatch calls. It is byte synchronous: feeding a buffer
// at once or one byte at a time produces the same calls.
type Parser struct {
	state State

	// pending UTF-8 sequence
	utf8Buf [utf8.UTFMax]byte
	utf8Len int

	// sequence under construction
	intermediates  [MaxIntermediates]byte
	nIntermediates int
	params         Params
	current        uint16 // the parameter being accumulated
	hasParam       bool
	ignoring       bool
}

func NewParser() *Parser {
	p := new(Parser)
	p.state = ground{}
	return p
}

// Advance feeds data to the parser, pf receives the recognised tokens.
func (p *Parser) Advance(pf Perform, data []byte) {
	for i := range data {
		p.advanceByte(pf, data[i])
	}
}

func (p *Parser) advanceByte(pf Perform, b byte) {
	if p.utf8Len == 0 && b < utf8.RuneSelf {
		p.parse(pf, rune(b))
		return
	}

	p.utf8Buf[p.utf8Len] = b
	p.utf8Len++
	for p.utf8Len > 0 && utf8.FullRune(p.utf8Buf[:p.utf8Len]) {
		// invalid sequence decode as U+FFFD with size 1
		r, size := utf8.DecodeRune(p.utf8Buf[:p.utf8Len])
		copy(p.utf8Buf[:], p.utf8Buf[size:p.utf8Len])
		p.utf8Len -= size
		p.parse(pf, r)
	}
}

func (p *Parser) parse(pf Perform, r rune) {
	ts := anywhere(p.state, r)
	if ts.action == nil && ts.nextState == nil {
		ts = p.state.eventList(r)
	}

	// exit action from old state
	if ts.nextState != nil {
		p.perform(pf, p.state.exit(), r)
	}

	// transition action
	if ts.action != nil {
		p.perform(pf, ts.action, r)
	}

	// enter action to new state
	if ts.nextState != nil {
		p.state = ts.nextState
		p.perform(pf, ts.nextState.enter(), r)
	}
}

func (p *Parser) perform(pf Perform, act Action, r rune) {
	if !act.Ignore() {
		act.ActOn(p, pf, r)
	}
}

// IsGround reports whether the parser is between sequences.
func (p *Parser) IsGround() bool {
	_, ok := p.state.(ground)
	return ok && p.utf8Len == 0
}

// StateName returns the name of the current state.
func (p *Parser) StateName() string {
	return p.state.Name()
}

// Reset drops any partial sequence and returns to ground.
func (p *Parser) Reset() {
	p.state = ground{}
	p.utf8Len = 0
	p.clear()
}

// Idle resolves a partial sequence after the input has been quiet for a
// while. A lone ESC is the escape key, a lone "ESC [" is Alt+[. Anything else
// is an incomplete sequence and is dropped.
func (p *Parser) Idle(pf Perform) {
	switch p.state.(type) {
	case escape:
		pf.Execute(0x1B)
	case csiEntry:
		if p.nIntermediates == 0 && !p.hasParam {
			pf.EscDispatch(nil, false, '[')
		}
	}
	p.Reset()
}

func (p *Parser) clear() {
	p.nIntermediates = 0
	p.params.clear()
	p.current = 0
	p.hasParam = false
	p.ignoring = false
}

func (p *Parser) collect(b byte) {
	if p.nIntermediates == MaxIntermediates {
		p.ignoring = true
		return
	}
	p.intermediates[p.nIntermediates] = b
	p.nIntermediates++
}

func (p *Parser) param(r rune) {
	p.hasParam = true
	if p.params.isFull() {
		p.ignoring = true
		return
	}

	switch r {
	case ';':
		p.params.push(p.current)
		p.current = 0
	case ':':
		p.params.extend(p.current)
		p.current = 0
	default:
		// saturate at 65535
		v := uint32(p.current)*10 + uint32(r-'0')
		if v > 0xFFFF {
			v = 0xFFFF
		}
		p.current = uint16(v)
	}
}

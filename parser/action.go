// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

// Perform receives the tokens recognised by the Parser, in stream order.
// The params and intermediates passed in are reused by the Parser, copy them to keep them.
type Perform interface {
	// Print is called for a decoded printable character, DEL included.
	Print(c rune)
	// Execute is called for a C0 or C1 control outside of any sequence.
	Execute(b byte)
	// EscDispatch is called when an escape sequence is complete. ignore is set
	// when the sequence had too many intermediates.
	EscDispatch(intermediates []byte, ignore bool, b byte)
	// CsiDispatch is called when a CSI sequence is complete. ignore is set when
	// the sequence had too many intermediates or parameters.
	CsiDispatch(params *Params, intermediates []byte, ignore bool, c rune)
}

type Action interface {
	ActOn(p *Parser, pf Perform, r rune)
	Ignore() bool
	Name() string
}

// action implement the default behavior of Action interface
type action struct{}

func (a action) ActOn(p *Parser, pf Perform, r rune) {}               // do nothing
func (a action) Ignore() bool                        { return false } // do not ignore us
func (a action) Name() string                        { return "" }

type ignore struct {
	action
}

func (i ignore) Ignore() bool { return true } // ignore this action
func (i ignore) Name() string { return "Ignore" }

type print struct {
	action
}

func (pr print) ActOn(p *Parser, pf Perform, r rune) { pf.Print(r) }
func (pr print) Name() string                        { return "Print" }

type execute struct {
	action
}

func (e execute) ActOn(p *Parser, pf Perform, r rune) { pf.Execute(byte(r)) }
func (e execute) Name() string                        { return "Execute" }

type clear struct {
	action
}

func (c clear) ActOn(p *Parser, pf Perform, r rune) { p.clear() }
func (c clear) Name() string                        { return "Clear" }

type collect struct {
	action
}

func (c collect) ActOn(p *Parser, pf Perform, r rune) { p.collect(byte(r)) }
func (c collect) Name() string                        { return "Collect" }

type param struct {
	action
}

func (pa param) ActOn(p *Parser, pf Perform, r rune) { p.param(r) }
func (pa param) Name() string                        { return "Param" }

type escDispatch struct {
	action
}

func (ed escDispatch) ActOn(p *Parser, pf Perform, r rune) {
	pf.EscDispatch(p.intermediates[:p.nIntermediates], p.ignoring, byte(r))
}
func (ed escDispatch) Name() string { return "ESCdispatch" }

type csiDispatch struct {
	action
}

func (cd csiDispatch) ActOn(p *Parser, pf Perform, r rune) {
	if p.hasParam {
		if p.params.isFull() {
			p.ignoring = true
		} else {
			p.params.push(p.current)
		}
	}
	pf.CsiDispatch(&p.params, p.intermediates[:p.nIntermediates], p.ignoring, r)
}
func (cd csiDispatch) Name() string { return "CSIdispatch" }

// escape followed by a non-ASCII character: report the escape key and the
// character separately, the receiver may treat the pair as Alt+character.
type escPrint struct {
	action
}

func (ep escPrint) ActOn(p *Parser, pf Perform, r rune) {
	pf.Execute(0x1B)
	pf.Print(r)
}
func (ep escPrint) Name() string { return "ESCprint" }

// escape followed by escape: the first one is the escape key.
type escExecute struct {
	action
}

func (ee escExecute) ActOn(p *Parser, pf Perform, r rune) { pf.Execute(0x1B) }
func (ee escExecute) Name() string                        { return "ESCexecute" }

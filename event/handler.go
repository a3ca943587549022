// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package event

import "github.com/ericwq/keyseq/parser"

// Handler receives the keyboard events once the platform ambiguities are
// resolved. Embed NopHandler to implement only the methods you need.
type Handler interface {
	// SS3 is called for ESC O followed by c: F1-F4 (P,Q,R,S) or the cursor
	// keys in application mode (A,B,C,D).
	SS3(c rune)
	// Print is called for a printable character.
	Print(c rune)
	// Execute is called for a control character: Tab / Ctrl-I, Enter / Ctrl-M,
	// Backspace (DEL) / Ctrl-H, ...
	Execute(b byte)
	// EscDispatch is called for Alt + character, and for ESC HT which is
	// Shift-Tab.
	EscDispatch(intermediates []byte, ignore bool, b byte)
	// CsiDispatch is called for a CSI sequence: cursor keys, function keys,
	// and the Linux console F1-F5 (ESC [ [ A..E).
	CsiDispatch(params *parser.Params, intermediates []byte, ignore bool, c rune)
}

// NopHandler ignores every event.
type NopHandler struct{}

func (NopHandler) SS3(c rune)                                                                   {}
func (NopHandler) Print(c rune)                                                                 {}
func (NopHandler) Execute(b byte)                                                               {}
func (NopHandler) EscDispatch(intermediates []byte, ignore bool, b byte)                        {}
func (NopHandler) CsiDispatch(params *parser.Params, intermediates []byte, ignore bool, c rune) {}

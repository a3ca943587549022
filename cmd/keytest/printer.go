// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/ericwq/keyseq/event"
	"github.com/ericwq/keyseq/parser"
	"github.com/ericwq/keyseq/util"
	"github.com/rivo/uniseg"
)

// keyPrinter writes one line per key. The terminal is in raw mode, so lines
// end with CR LF.
type keyPrinter struct {
	w     io.Writer
	quit  bool
	names []string // every key name printed so far
}

var _ event.Handler = &keyPrinter{}

func newKeyPrinter(w io.Writer) *keyPrinter {
	return &keyPrinter{w: w}
}

func (kp *keyPrinter) line(raw, name string) {
	kp.names = append(kp.names, name)
	fmt.Fprintf(kp.w, "%-32s %s\r\n", raw, name)
}

func (kp *keyPrinter) SS3(c rune) {
	kp.line(fmt.Sprintf("ss3 %q", c), ss3Name(c))
}

func (kp *keyPrinter) Print(c rune) {
	s := string(c)
	kp.line(fmt.Sprintf("print %q width=%d", c, uniseg.StringWidth(s)), s)
}

func (kp *keyPrinter) Execute(b byte) {
	kp.line(fmt.Sprintf("execute 0x%02x", b), executeName(b))

	// Ctrl-C, Ctrl-D
	if b == 0x03 || b == 0x04 {
		kp.quit = true
	}
}

func (kp *keyPrinter) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if ignore {
		util.Logger.Debug("escape sequence overflow", "intermediates", intermediates, "final", b)
	}
	kp.line(fmt.Sprintf("esc %q 0x%02x", intermediates, b), escName(intermediates, b))
}

func (kp *keyPrinter) CsiDispatch(params *parser.Params, intermediates []byte, ignore bool, c rune) {
	if ignore {
		util.Logger.Debug("CSI sequence overflow", "intermediates", intermediates, "final", c)
	}

	raw := "csi"
	for i := 0; i < params.Len(); i++ {
		raw += fmt.Sprint(" ", params.Group(i))
	}
	if len(intermediates) > 0 {
		raw += fmt.Sprintf(" %q", intermediates)
	}
	raw += fmt.Sprintf(" %q", c)
	kp.line(raw, csiName(params, intermediates, c))
}

// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package event

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ericwq/keyseq/parser"
)

func parse(t *testing.T, h Handler, bytes []byte) *Performer {
	t.Helper()
	x := NewPerformer(h)
	p := parser.NewParser()
	p.Advance(x, bytes)
	if !p.IsGround() {
		t.Errorf("#test parser expect ground, got %s\n", p.StateName())
	}
	return x
}

type ss3Handler struct {
	NopHandler
	c rune
}

func (h *ss3Handler) SS3(c rune) { h.c = c }

func TestSS3(t *testing.T) {
	h := &ss3Handler{}
	// F1 on Mac / Windows terminal with ENABLE_VIRTUAL_TERMINAL_INPUT
	x := parse(t, h, []byte{0x1B, 'O', 'A'})
	if h.c != 'A' {
		t.Errorf("#test SS3 expect %q, got %q\n", 'A', h.c)
	}
	if x.State() != InputState_Ground {
		t.Errorf("#test SS3 expect ground, got %d\n", x.State())
	}
}

type executeHandler struct {
	NopHandler
	b byte
}

func (h *executeHandler) Execute(b byte) { h.b = b }

func TestBackspace(t *testing.T) {
	h := &executeHandler{}
	// Mac / Windows terminal
	parse(t, h, []byte{0x7F})
	if h.b != 0x7F {
		t.Errorf("#test backspace expect %#x, got %#x\n", 0x7F, h.b)
	}
}

type csiHandler struct {
	NopHandler
	t *testing.T
	c rune
}

func (h *csiHandler) CsiDispatch(params *parser.Params, intermediates []byte, ignore bool, c rune) {
	if !params.IsEmpty() || len(intermediates) != 0 || ignore {
		h.t.Errorf("#test CSI expect no params, no intermediates, got %d %q %t\n", params.Len(), intermediates, ignore)
	}
	h.c = c
}

func TestCSIBracket(t *testing.T) {
	h := &csiHandler{t: t}
	// F1 on Linux console
	parse(t, h, []byte{0x1B, '[', '[', 'A'})
	if h.c != 'A' {
		t.Errorf("#test CSI bracket expect %q, got %q\n", 'A', h.c)
	}
}

type escHandler struct {
	NopHandler
	t *testing.T
	b byte
}

func (h *escHandler) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if len(intermediates) != 0 || ignore {
		h.t.Errorf("#test ESC expect no intermediates, got %q %t\n", intermediates, ignore)
	}
	h.b = b
}

func TestEscDispatch(t *testing.T) {
	tc := []struct {
		label  string
		input  []byte
		expect byte
	}{
		{"alt+enter", []byte{0x1B, 0x0D}, 0x0D},     // Mac / Linux / Windows
		{"alt+backspace", []byte{0x1B, 0x7F}, 0x7F}, // Mac / Linux / Windows
		{"shift+tab", []byte{0x1B, 0x09}, 0x09},     // Mac / Linux console
		{"alt+x", []byte{0x1B, 'x'}, 'x'},
		{"alt+bracket", []byte{0x1B, '[', 0x1B}, 0}, // ESC [ needs a timeout to become Alt+[
	}

	for _, v := range tc {
		t.Run(v.label, func(t *testing.T) {
			h := &escHandler{t: t}
			x := NewPerformer(h)
			p := parser.NewParser()
			p.Advance(x, v.input)
			if h.b != v.expect {
				t.Errorf("#test %s expect %#x, got %#x\n", v.label, v.expect, h.b)
			}
		})
	}
}

// recorder keeps a readable trace of every event.
type recorder struct {
	calls []string
}

func (r *recorder) SS3(c rune)     { r.calls = append(r.calls, fmt.Sprintf("ss3(%c)", c)) }
func (r *recorder) Print(c rune)   { r.calls = append(r.calls, fmt.Sprintf("print(%c)", c)) }
func (r *recorder) Execute(b byte) { r.calls = append(r.calls, fmt.Sprintf("execute(0x%02x)", b)) }

func (r *recorder) EscDispatch(intermediates []byte, ignore bool, b byte) {
	r.calls = append(r.calls, fmt.Sprintf("esc(%q,%t,0x%02x)", intermediates, ignore, b))
}

func (r *recorder) CsiDispatch(params *parser.Params, intermediates []byte, ignore bool, c rune) {
	var sb strings.Builder
	for i := 0; i < params.Len(); i++ {
		fmt.Fprint(&sb, params.Group(i))
	}
	r.calls = append(r.calls, fmt.Sprintf("csi(%s,%q,%t,%c)", sb.String(), intermediates, ignore, c))
}

func (r *recorder) String() string { return strings.Join(r.calls, " ") }

func TestEventStream(t *testing.T) {
	tc := []struct {
		label       string
		input       string
		noBracket   bool
		expect      string
		expectState int
	}{
		{"plain text", "hi", false, "print(h) print(i)", InputState_Ground},
		{"back to back SS3", "\x1bOA\x1bOA", false, "ss3(A) ss3(A)", InputState_Ground},
		{"F1..F4", "\x1bOP\x1bOQ\x1bOR\x1bOS", false, "ss3(P) ss3(Q) ss3(R) ss3(S)", InputState_Ground},
		{"SS3 DEL", "\x1bO\x7f", false, "ss3(\x7f)", InputState_Ground},
		{"SS3 then text", "\x1bOAb", false, "ss3(A) print(b)", InputState_Ground},
		{"linux F1..F5", "\x1b[[A\x1b[[E", false, "csi(,\"\",false,A) csi(,\"\",false,E)", InputState_Ground},
		{"bracket disabled", "\x1b[[A", true, "csi(,\"\",false,[) print(A)", InputState_Ground},
		{"bracket with params", "\x1b[1[B", false, "csi(,\"\",false,B)", InputState_Ground},
		{"bracket with intermediates", "\x1b[ [A", false, "csi(,\" \",false,[) print(A)", InputState_Ground},
		{"cursor keys", "\x1b[A\x1b[1;5B", false, "csi(,\"\",false,A) csi([1][5],\"\",false,B)", InputState_Ground},
		{"backspace vs alt+backspace", "\x7f\x1b\x7f", false, "execute(0x7f) esc(\"\",false,0x7f)", InputState_Ground},
		{"SS3 abandoned by execute", "\x1bO\r", false, "execute(0x0d)", InputState_Ground},
		{"SS3 abandoned by csi", "\x1bO\x1b[A", false, "csi(,\"\",false,A)", InputState_Ground},
		{"SS3 abandoned by esc", "\x1bO\x1bx", false, "esc(\"\",false,0x78)", InputState_Ground},
		{"SS3 re-armed", "\x1bO\x1bOB", false, "ss3(B)", InputState_Ground},
		{"bracket then ESC O", "\x1b[[\x1bOA", false, "esc(\"\",false,0x4f) print(A)", InputState_Ground},
		{"bracket abandoned by execute", "\x1b[[\t", false, "execute(0x09)", InputState_Ground},
		{"ignored csi bracket is forwarded", "\x1b[ !\"[A", false, "csi(,\" !\",true,[) print(A)", InputState_Ground},
		{"ignored esc is forwarded", "\x1b( #x", false, "esc(\"( \",true,0x78)", InputState_Ground},
		{"SS3 at end of stream", "\x1bO", false, "", InputState_SS3},
		{"bracket at end of stream", "\x1b[[", false, "", InputState_CSI_Bracket},
	}

	for _, v := range tc {
		t.Run(v.label, func(t *testing.T) {
			r := &recorder{}
			x := NewPerformer(r)
			x.SetCSIBracket(!v.noBracket)
			parser.NewParser().Advance(x, []byte(v.input))

			if got := r.String(); got != v.expect {
				t.Errorf("#test %q expect %s, got %s\n", v.input, v.expect, got)
			}
			if x.State() != v.expectState {
				t.Errorf("#test %q expect state %d, got %d\n", v.input, v.expectState, x.State())
			}
		})
	}
}

func TestPrintable(t *testing.T) {
	for c := rune(0x20); c < 0x7F; c++ {
		r := &recorder{}
		x := NewPerformer(r)
		x.Print(c)
		expect := fmt.Sprintf("print(%c)", c)
		if got := r.String(); got != expect {
			t.Errorf("#test %q expect %s, got %s\n", c, expect, got)
		}
	}
}

func TestFlushAndReset(t *testing.T) {
	tc := []struct {
		label  string
		input  string
		reset  bool
		expect string
	}{
		{"flush SS3 is alt+O", "\x1bO", false, "esc(\"\",false,0x4f)"},
		{"flush bracket", "\x1b[[", false, "csi(,\"\",false,[)"},
		{"flush ground", "a", false, "print(a)"},
		{"reset SS3", "\x1bO", true, ""},
		{"reset bracket", "\x1b[[", true, ""},
	}

	for _, v := range tc {
		t.Run(v.label, func(t *testing.T) {
			r := &recorder{}
			x := NewPerformer(r)
			parser.NewParser().Advance(x, []byte(v.input))
			if v.reset {
				x.Reset()
			} else {
				x.Flush()
			}

			if got := r.String(); got != v.expect {
				t.Errorf("#test %q expect %s, got %s\n", v.input, v.expect, got)
			}
			if x.Pending() {
				t.Errorf("#test %q expect nothing pending, got state %d\n", v.input, x.State())
			}
		})
	}
}

func TestSetCSIBracketClearsPending(t *testing.T) {
	r := &recorder{}
	x := NewPerformer(r)
	parser.NewParser().Advance(x, []byte("\x1b[["))
	if x.State() != InputState_CSI_Bracket {
		t.Fatalf("#test expect CSI bracket state, got %d\n", x.State())
	}

	x.SetCSIBracket(false)
	if x.Pending() {
		t.Errorf("#test disable CSI bracket expect ground, got %d\n", x.State())
	}
}

func TestNopHandler(t *testing.T) {
	// a NopHandler swallows everything without complaint
	x := NewPerformer(NopHandler{})
	parser.NewParser().Advance(x, []byte("a\x1bOA\x1b[[A\x7f\x1b\r\x1b[1;2C"))
	if x.Pending() {
		t.Errorf("#test NopHandler expect ground, got %d\n", x.State())
	}
}

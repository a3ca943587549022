// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/ericwq/keyseq/parser"
)

var ss3Keys = map[rune]string{
	'P': "F1", 'Q': "F2", 'R': "F3", 'S': "F4",
	'A': "Up", 'B': "Down", 'C': "Right", 'D': "Left",
	'H': "Home", 'F': "End",
}

// CSI <final>, the Linux console F1-F5 (ESC [ [ A..E) ends up here too and is
// indistinguishable from the cursor keys.
var csiKeys = map[rune]string{
	'A': "Up", 'B': "Down", 'C': "Right", 'D': "Left",
	'H': "Home", 'F': "End", 'E': "Begin", 'Z': "Shift+Tab",
	'P': "F1", 'Q': "F2", 'R': "F3", 'S': "F4",
}

// CSI <n> ~
var tildeKeys = map[uint16]string{
	1: "Home", 2: "Insert", 3: "Delete", 4: "End", 5: "PageUp", 6: "PageDown",
	7: "Home", 8: "End",
	11: "F1", 12: "F2", 13: "F3", 14: "F4", 15: "F5",
	17: "F6", 18: "F7", 19: "F8", 20: "F9", 21: "F10",
	23: "F11", 24: "F12",
}

func ss3Name(c rune) string {
	if name, ok := ss3Keys[c]; ok {
		return name
	}
	return fmt.Sprintf("SS3 %q", c)
}

func executeName(b byte) string {
	switch {
	case b == 0x7F:
		return "Backspace"
	case b == 0x08:
		return "Ctrl-H"
	case b == 0x09:
		return "Tab"
	case b == 0x0D:
		return "Enter"
	case b == 0x1B:
		return "Escape"
	case b == 0x00:
		return "Ctrl-Space"
	case b < 0x1B:
		return "Ctrl-" + string(rune('A'+b-1))
	case b < 0x20:
		return "Ctrl-" + string(rune('@'+b))
	}
	return fmt.Sprintf("C1 %#02x", b)
}

func escName(intermediates []byte, b byte) string {
	if len(intermediates) > 0 {
		return fmt.Sprintf("ESC %s %c", intermediates, b)
	}

	switch {
	case b == 0x09:
		return "Shift+Tab"
	case b < 0x20 || b == 0x7F:
		return "Alt+" + executeName(b)
	}
	return "Alt+" + string(rune(b))
}

// modifiers encoded as 1 + bitmask in the second CSI parameter
func modifierName(m uint16) string {
	if m < 2 {
		return ""
	}

	var sb strings.Builder
	bits := m - 1
	for i, name := range []string{"Shift", "Alt", "Ctrl", "Meta"} {
		if bits&(1<<i) != 0 {
			sb.WriteString(name)
			sb.WriteString("+")
		}
	}
	return sb.String()
}

func csiName(params *parser.Params, intermediates []byte, c rune) string {
	if len(intermediates) > 0 {
		return fmt.Sprintf("CSI %s %c", intermediates, c)
	}

	var mod string
	if g := params.Group(1); len(g) > 0 {
		mod = modifierName(g[0])
	}

	if c == '~' {
		if g := params.Group(0); len(g) > 0 {
			if name, ok := tildeKeys[g[0]]; ok {
				return mod + name
			}
		}
	} else if name, ok := csiKeys[c]; ok {
		return mod + name
	}

	return fmt.Sprintf("CSI %c", c)
}

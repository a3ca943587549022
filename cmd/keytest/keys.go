// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ericwq/keyseq/frontend"
	"github.com/ericwq/terminfo"
	_ "github.com/ericwq/terminfo/base"
	"github.com/ericwq/terminfo/dynamic"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func lookupTerminfo(name string) (*terminfo.Terminfo, error) {
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(name)
		if err != nil {
			return nil, fmt.Errorf("can't find terminfo for %s: %w", name, err)
		}
		terminfo.AddTerminfo(ti)
	}
	return ti, nil
}

func keyCapabilities(ti *terminfo.Terminfo) map[string]string {
	caps := map[string]string{
		"kf1":   ti.KeyF1,
		"kf2":   ti.KeyF2,
		"kf3":   ti.KeyF3,
		"kf4":   ti.KeyF4,
		"kf5":   ti.KeyF5,
		"kbs":   ti.KeyBackspace,
		"kcbt":  ti.KeyBacktab,
		"kcuu1": ti.KeyUp,
		"kcud1": ti.KeyDown,
		"kcuf1": ti.KeyRight,
		"kcub1": ti.KeyLeft,
		"khome": ti.KeyHome,
		"kend":  ti.KeyEnd,
		"kdch1": ti.KeyDelete,
	}

	// drop what the terminal doesn't define
	for k, v := range caps {
		if v == "" {
			delete(caps, k)
		}
	}
	return caps
}

// printKeys shows what the terminfo entry says each key sends, and what the
// key decodes to.
func printKeys(w io.Writer, name string, csiBracket bool) error {
	ti, err := lookupTerminfo(name)
	if err != nil {
		return err
	}

	caps := keyCapabilities(ti)
	names := maps.Keys(caps)
	slices.Sort(names)

	fmt.Fprintf(w, "%s:\n", name)
	for _, capName := range names {
		fmt.Fprintf(w, "  %-6s %-12q %s\n", capName, caps[capName], decodeKey(caps[capName], csiBracket))
	}
	return nil
}

// decodeKey runs seq through a Stream as if it was typed, followed by a
// pause.
func decodeKey(seq string, csiBracket bool) string {
	kp := newKeyPrinter(io.Discard)
	s := frontend.NewStream(kp)
	s.Performer().SetCSIBracket(csiBracket)
	s.WriteString(seq)
	s.Idle()

	return strings.Join(kp.names, ", ")
}

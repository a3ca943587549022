// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

func CheckIUTF8(fd int) (bool, error) {
	termios, err := unix.IoctlGetTermios(fd, GetTermios)
	if err != nil {
		return false, err
	}

	// Input is UTF-8 (since Linux 2.6.4)
	return (termios.Iflag & unix.IUTF8) != 0, nil
}

func SetIUTF8(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, GetTermios)
	if err != nil {
		return err
	}

	// when the bit is set to 1, enable IUTF8
	termios.Iflag |= unix.IUTF8
	return unix.IoctlSetTermios(fd, SetTermios, termios)
}

// MakeRaw puts the terminal fd in raw mode, so every key reaches us as the
// terminal sends it: no echo, no line editing, no signal keys. The returned
// function restores the previous mode.
func MakeRaw(fd int) (restore func() error, err error) {
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	restore = func() error {
		return term.Restore(fd, saved)
	}
	return restore, nil
}

// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frontend

import (
	"errors"
	"os"
	"time"
)

type Message struct {
	Err  error
	Data string
}

type deadLineReader interface {
	Read(p []byte) (n int, err error)
	SetReadDeadline(t time.Time) error
}

// ReadFromFile reads fd until error or EOF and sends what it gets to msgChan.
// Every read waits at most timeout milliseconds, so doneChan is checked
// regularly even when the user is not typing. A read timeout is reported as a
// Message with os.ErrDeadlineExceeded, the owner uses it to resolve a pending
// escape sequence.
func ReadFromFile(timeout int, msgChan chan Message, doneChan chan any, fd deadLineReader) {
	var buf [16384]byte
	var err error
	var bytesRead int

	for {
		select {
		case <-doneChan:
			return
		default:
		}

		// set read time out
		fd.SetReadDeadline(time.Now().Add(time.Millisecond * time.Duration(timeout)))

		// fill buffer if possible
		bytesRead, err = fd.Read(buf[:])
		if bytesRead > 0 {
			msgChan <- Message{nil, string(buf[:bytesRead])}
		} else if errors.Is(err, os.ErrDeadlineExceeded) {
			msgChan <- Message{err, ""}
		} else {
			// EOF or read error
			msgChan <- Message{err, ""}
			return
		}
	}
}

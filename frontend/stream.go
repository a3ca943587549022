// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package frontend

import (
	"github.com/ericwq/keyseq/event"
	"github.com/ericwq/keyseq/parser"
	"github.com/ericwq/keyseq/util"
)

// Stream turns the bytes typed by the user into Handler events. Write the
// terminal input to it as it arrives; call Idle when no input arrived for the
// escape timeout, so a lone ESC or ESC O is not held forever.
type Stream struct {
	parser    *parser.Parser
	performer *event.Performer
}

func NewStream(h event.Handler) *Stream {
	s := new(Stream)
	s.parser = parser.NewParser()
	s.performer = event.NewPerformer(h)
	return s
}

// Write feeds p to the stream. It never fails.
func (s *Stream) Write(p []byte) (int, error) {
	s.parser.Advance(s.performer, p)
	return len(p), nil
}

func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Stream) Performer() *event.Performer { return s.performer }

// Pending reports whether the stream waits for more input to complete a
// sequence.
func (s *Stream) Pending() bool {
	return !s.parser.IsGround() || s.performer.Pending()
}

// Idle resolves what is pending, in stream order: first the performer prefix,
// then the partial sequence in the parser.
func (s *Stream) Idle() {
	if !s.Pending() {
		return
	}

	util.Logger.Trace("stream idle", "parser", s.parser.StateName(), "performer", s.performer.State())
	s.performer.Flush()
	s.parser.Idle(s.performer)
}

// Reset drops what is pending without reporting it.
func (s *Stream) Reset() {
	if s.Pending() {
		util.Logger.Trace("stream reset", "parser", s.parser.StateName(), "performer", s.performer.State())
	}
	s.parser.Reset()
	s.performer.Reset()
}

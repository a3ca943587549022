// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
	DebugLevel = 1
	TraceLevel = 2
)

var Logger *myLogger

// replaced by tests
var exit = os.Exit

var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

type myLogger struct {
	*slog.Logger
	addSource bool
	logLevel  *slog.LevelVar
}

func init() {
	// default logger write to stderr
	Logger = new(myLogger)
	Logger.logLevel = new(slog.LevelVar)
	Logger.SetLevel(slog.LevelInfo)
	Logger.AddSource(false)
	Logger.SetOutput(os.Stderr)
}

func (l *myLogger) SetLevel(v slog.Level) {
	l.logLevel.Set(v)
}

// SetVerbose maps the -verbose flag to a log level.
func (l *myLogger) SetVerbose(verbose int) {
	switch {
	case verbose >= TraceLevel:
		l.SetLevel(LevelTrace)
	case verbose == DebugLevel:
		l.SetLevel(slog.LevelDebug)
	default:
		l.SetLevel(slog.LevelInfo)
	}
}

func (l *myLogger) AddSource(add bool) {
	l.addSource = add
}

// replace the level label with our own names, such as TRACE.
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		levelLabel, exists := levelNames[level]
		if !exists {
			levelLabel = level.String()
		}

		a.Value = slog.StringValue(levelLabel)
	}

	return a
}

// SetOutput sends the log to w and makes it the default slog logger.
func (l *myLogger) SetOutput(w io.Writer) {
	ho := &slog.HandlerOptions{
		AddSource:   l.addSource,
		Level:       l.logLevel,
		ReplaceAttr: replaceLevel,
	}
	l.Logger = slog.New(slog.NewTextHandler(w, ho)).With("pid", os.Getpid())
	slog.SetDefault(l.Logger)
}

// CreateLogger is like SetOutput with a fixed level, the default slog logger
// is left alone.
func (l *myLogger) CreateLogger(w io.Writer, source bool, level slog.Level) {
	ho := &slog.HandlerOptions{
		AddSource:   source,
		Level:       level,
		ReplaceAttr: replaceLevel,
	}
	l.Logger = slog.New(slog.NewTextHandler(w, ho)).With("pid", os.Getpid())
}

func (l *myLogger) Trace(msg string, args ...any) {
	l.Logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Fatal logs at FATAL level and exits with status 1.
func (l *myLogger) Fatal(msg string, args ...any) {
	l.Logger.Log(context.Background(), LevelFatal, msg, args...)
	exit(1)
}

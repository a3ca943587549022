// Copyright 2022~2024 wangqi. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestCreateLogger(t *testing.T) {
	var out bytes.Buffer
	Logger.CreateLogger(&out, false, LevelTrace)
	defer Logger.SetOutput(os.Stderr)

	// log trace
	msg1 := "trace message"
	Logger.Trace(msg1) // level with name

	// level without name
	LevelDebug_2 := slog.Level(-6)
	msg2 := "no name debug message"
	Logger.Log(context.Background(), LevelDebug_2, msg2)

	// validate result
	expect := []string{"level=TRACE", "level=DEBUG-2", msg1, msg2}
	result := out.String()
	for i := range expect {
		if !strings.Contains(result, expect[i]) {
			t.Errorf("#test CreateLogger expect %q, got %q\n", expect[i], result)
		}
	}
}

func TestSetVerbose(t *testing.T) {
	tc := []struct {
		label   string
		verbose int
		trace   bool
		debug   bool
	}{
		{"quiet", 0, false, false},
		{"debug", DebugLevel, false, true},
		{"trace", TraceLevel, true, true},
	}

	var out bytes.Buffer
	Logger.SetOutput(&out)
	defer func() {
		Logger.SetLevel(slog.LevelInfo)
		Logger.SetOutput(os.Stderr)
	}()

	for _, v := range tc {
		t.Run(v.label, func(t *testing.T) {
			Logger.SetVerbose(v.verbose)
			ctx := context.Background()
			if got := Logger.Enabled(ctx, LevelTrace); got != v.trace {
				t.Errorf("#test verbose %d trace expect %t, got %t\n", v.verbose, v.trace, got)
			}
			if got := Logger.Enabled(ctx, slog.LevelDebug); got != v.debug {
				t.Errorf("#test verbose %d debug expect %t, got %t\n", v.verbose, v.debug, got)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	var out bytes.Buffer
	Logger.CreateLogger(&out, false, slog.LevelInfo)
	defer Logger.SetOutput(os.Stderr)

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	Logger.Fatal("fatal message", "error", "boom")
	if code != 1 {
		t.Errorf("#test Fatal expect exit code 1, got %d\n", code)
	}

	result := out.String()
	for _, expect := range []string{"level=FATAL", "fatal message", "error=boom"} {
		if !strings.Contains(result, expect) {
			t.Errorf("#test Fatal expect %q, got %q\n", expect, result)
		}
	}
}

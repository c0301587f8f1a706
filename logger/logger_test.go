// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/headers/testutil"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)
	ctx := Put(context.Background(), l)

	Debug(ctx, "hidden")
	Info(ctx, "visible", slog.String("path", "./a.py"))
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible") || !strings.Contains(buf.String(), "path=./a.py") {
		t.Errorf("info message missing: %q", buf.String())
	}

	buf.Reset()
	l.Level.Set(slog.LevelDebug)
	Debug(ctx, "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug message not logged after level change: %q", buf.String())
	}
}

func TestNoColorNoTime(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, &Options{})
	l.Warn("careful")
	got := buf.String()
	if strings.Contains(got, "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", got)
	}
	testutil.AssertEqual(t, got, "WRN careful\n")
}

func TestGetDefault(t *testing.T) {
	if !IsDefault(Get(context.Background())) {
		t.Error("Get on an empty context must return the default logger")
	}
	l := New(&bytes.Buffer{}, nil)
	if IsDefault(Get(Put(context.Background(), l))) {
		t.Error("Get must return the logger stored in the context")
	}
}

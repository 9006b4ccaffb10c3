package scatter

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefault(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger is nil")
	}
	// The default handler must be disabled at every level.
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard all records")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	Poisson(R(0, 0, 20, 20), 5, 30, 1)
	if buf.Len() == 0 {
		t.Error("no log output from a generation run at debug level")
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	Poisson(R(0, 0, 20, 20), 5, 30, 1)
	if buf.Len() != 0 {
		t.Errorf("silent logger still wrote output: %q", buf.String())
	}
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("test message")
	if !strings.Contains(buf.String(), "jsondiff") {
		t.Errorf("expected prefix in log output, got %q", buf.String())
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at info level, got %q", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("expected attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("expected default logger when none is attached")
	}
	if got := loggerFromContext(nil); got != log.Default() {
		t.Error("expected default logger for nil context")
	}
}

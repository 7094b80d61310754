package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	if New(Config{}) == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Config{Level: slog.LevelDebug})

	logger.Info("request sent", "path", "/api/v2/user")

	out := buf.String()
	if !strings.Contains(out, "request sent") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, "path=/api/v2/user") {
		t.Errorf("output missing attribute: %s", out)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Config{JSON: true})

	logger.Info("json output")

	if !strings.Contains(buf.String(), `"msg":"json output"`) {
		t.Errorf("expected JSON output with msg field, got: %s", buf.String())
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Config{Level: slog.LevelInfo})

	logger.Debug("filtered out")
	logger.Info("kept")

	out := buf.String()
	if strings.Contains(out, "filtered out") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("info message should appear")
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}
	// Must not panic or write anywhere.
	logger.Error("discarded")
}

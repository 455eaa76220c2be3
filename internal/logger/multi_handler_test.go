package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)

	log := slog.New(handler)
	log.Info("hello")

	if !strings.Contains(a.String(), "hello") {
		t.Error("first handler did not receive record")
	}
	if !strings.Contains(b.String(), "hello") {
		t.Error("second handler did not receive record")
	}
}

func TestMultiHandlerSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	handler := NewMultiHandler(nil, slog.NewJSONHandler(&buf, nil), nil)

	if len(handler.handlers) != 1 {
		t.Fatalf("expected 1 handler after filtering, got %d", len(handler.handlers))
	}

	slog.New(handler).Info("still works")
	if !strings.Contains(buf.String(), "still works") {
		t.Error("remaining handler did not receive record")
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	if !handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected Enabled to be true when any handler accepts the level")
	}

	slog.New(handler).Debug("debug only")

	if !strings.Contains(debugBuf.String(), "debug only") {
		t.Error("debug handler should receive debug record")
	}
	if warnBuf.Len() != 0 {
		t.Errorf("warn handler should not receive debug record, got %q", warnBuf.String())
	}
}

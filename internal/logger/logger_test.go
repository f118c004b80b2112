package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestZapLoggerWritesStructuredField(t *testing.T) {
	var buf bytes.Buffer
	log := newZapLogger(zapcore.InfoLevel, zapcore.AddSync(&buf))

	log.InfoObj("api client configured", "base_url", "http://localhost:8080")
	log.DebugObj("dropped", "k", "v")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one json entry, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "api client configured" {
		t.Fatalf("unexpected msg %v", entry["msg"])
	}
	if entry["base_url"] != "http://localhost:8080" {
		t.Fatalf("unexpected base_url %v", entry["base_url"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts field")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("warning") != zapcore.WarnLevel {
		t.Fatalf("expected warn level")
	}
	if parseLevel("bogus") != zapcore.InfoLevel {
		t.Fatalf("expected info fallback")
	}
}

func TestSyncFlushes(t *testing.T) {
	var buf bytes.Buffer
	var log Logger = newZapLogger(zapcore.InfoLevel, zapcore.AddSync(&buf))
	if err := log.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := (NopLogger{}).Sync(); err != nil {
		t.Fatalf("NopLogger Sync: %v", err)
	}
}

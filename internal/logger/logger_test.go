package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	// Swap in a JSON handler so records are easy to decode.
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	original := Logger
	Logger = slog.New(handler)
	defer func() { Logger = original }()

	tests := []struct {
		name  string
		fn    func(msg string, args ...any)
		level string
	}{
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"Debug", Debug, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("loaded performance measurements", "rows", 3)

			var rec struct {
				Level string `json:"level"`
				Msg   string `json:"msg"`
				Rows  int    `json:"rows"`
			}
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("unmarshal log record: %v", err)
			}
			if rec.Level != tt.level {
				t.Errorf("level = %q, want %q", rec.Level, tt.level)
			}
			if rec.Msg != "loaded performance measurements" {
				t.Errorf("msg = %q", rec.Msg)
			}
			if rec.Rows != 3 {
				t.Errorf("rows attr = %d, want 3", rec.Rows)
			}
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	if Logger == nil {
		t.Error("Logger should be initialized")
	}
}

package config

import (
	"testing"

	"github.com/probelab/latscope/internal/throughput"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"LATSCOPE_TRADE_FILE",
		"LATSCOPE_OUTPUT_DIR",
		"LATSCOPE_WINDOW_SIZE",
		"LATSCOPE_ALERT_P99_US",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TradeFilePath != defaultTradeFilePath {
		t.Errorf("TradeFilePath = %q, want %q", cfg.TradeFilePath, defaultTradeFilePath)
	}
	if cfg.OutputDir != defaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, defaultOutputDir)
	}
	if cfg.WindowSize != throughput.DefaultWindowSize {
		t.Errorf("WindowSize = %d, want %d", cfg.WindowSize, throughput.DefaultWindowSize)
	}
	if cfg.AlertP99Us != 0 {
		t.Errorf("AlertP99Us = %v, want 0", cfg.AlertP99Us)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LATSCOPE_TRADE_FILE", "/tmp/trades.csv")
	t.Setenv("LATSCOPE_OUTPUT_DIR", "/tmp/out")
	t.Setenv("LATSCOPE_WINDOW_SIZE", "250")
	t.Setenv("LATSCOPE_ALERT_P99_US", "12.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TradeFilePath != "/tmp/trades.csv" {
		t.Errorf("TradeFilePath = %q", cfg.TradeFilePath)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.WindowSize != 250 {
		t.Errorf("WindowSize = %d, want 250", cfg.WindowSize)
	}
	if cfg.AlertP99Us != 12.5 {
		t.Errorf("AlertP99Us = %v, want 12.5", cfg.AlertP99Us)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LATSCOPE_WINDOW_SIZE", "-5")
	t.Setenv("LATSCOPE_ALERT_P99_US", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.WindowSize != throughput.DefaultWindowSize {
		t.Errorf("WindowSize = %d, want default for negative input", cfg.WindowSize)
	}
	if cfg.AlertP99Us != 0 {
		t.Errorf("AlertP99Us = %v, want 0 for unparseable input", cfg.AlertP99Us)
	}
}

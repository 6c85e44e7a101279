package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

const validYAML = `
telegram:
  token: "123456:abcdef"
server:
  metrics_addr: ":9090"
  log_level: debug
nba:
  requests_per_minute: 20
  directory_refresh: 1h
`

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(validYAML))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Telegram.Token != "123456:abcdef" {
		t.Errorf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Server.LogLevel != LogDebug {
		t.Errorf("log level = %q, want debug", cfg.Server.LogLevel)
	}
	if cfg.NBA.RequestsPerMinute != 20 {
		t.Errorf("requests per minute = %d, want 20", cfg.NBA.RequestsPerMinute)
	}
	if cfg.NBA.DirectoryRefresh != Duration(time.Hour) {
		t.Errorf("directory refresh = %s, want 1h", cfg.NBA.DirectoryRefresh)
	}
}

func TestLoadFromReaderRejectsUnknownFields(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader(`
telegram:
  token: "x"
  chat_id: 42
`))
	if err == nil {
		t.Fatal("unknown field should be rejected")
	}
}

func TestValidateCollectsAllFailures(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{LogLevel: "loud"},
		NBA:    NBAConfig{RequestsPerMinute: -1},
	}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, want joined errors")
	}
	for _, want := range []string{"telegram.token", "server.log_level", "requests_per_minute"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestDirectoryRefreshDefault(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
telegram:
  token: "x"
`))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.NBA.DirectoryRefresh != DefaultDirectoryRefresh {
		t.Fatalf("directory refresh = %s, want default %s", cfg.NBA.DirectoryRefresh, DefaultDirectoryRefresh)
	}
}

func TestLogLevelMapping(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want slog.Level
	}{
		{LogDebug, slog.LevelDebug},
		{LogInfo, slog.LevelInfo},
		{LogWarn, slog.LevelWarn},
		{LogError, slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := tc.in.Level(); got != tc.want {
			t.Errorf("%q.Level() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

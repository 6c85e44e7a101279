// Package config provides the configuration schema and loader for the
// sports stats bot.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultDirectoryRefresh is applied when nba.directory_refresh is unset.
const DefaultDirectoryRefresh = Duration(24 * time.Hour)

// Duration is a [time.Duration] that unmarshals from Go duration strings
// ("90s", "1h30m"), which plain time.Duration does not do under yaml.v3.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to its slog level. Empty or unknown levels map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config is the root configuration structure, typically loaded from a YAML
// file using [Load] or [LoadFromReader].
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Server   ServerConfig   `yaml:"server"`
	NBA      NBAConfig      `yaml:"nba"`
}

// TelegramConfig holds the chat transport settings.
type TelegramConfig struct {
	// Token is the bot API token issued by BotFather.
	Token string `yaml:"token"`
}

// ServerConfig holds logging and observability settings.
type ServerConfig struct {
	// MetricsAddr is the TCP address the Prometheus metrics endpoint
	// listens on (e.g., ":9090"). Empty disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// NBAConfig tunes the NBA upstream client. Zero values select the
// production hosts and conservative defaults.
type NBAConfig struct {
	// StatsBaseURL overrides the tabular stats host.
	StatsBaseURL string `yaml:"stats_base_url"`

	// LiveBaseURL overrides the live boxscore host.
	LiveBaseURL string `yaml:"live_base_url"`

	// RequestsPerMinute caps outbound requests to the stat hosts.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// DirectoryRefresh bounds how long the player directory may serve a
	// stale snapshot before refetching.
	DirectoryRefresh Duration `yaml:"directory_refresh"`
}

// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config captures the filter process configuration.
type Config struct {
	// AllowList is the path of the jurisdiction allow-list file.
	AllowList string `env:"VRFILTER_ALLOW_LIST"`
	// Mapping is the path of the field code mapping table file.
	Mapping string `env:"VRFILTER_MAPPING"`
	// Addr is the listen address of the HTTP server.
	Addr string `env:"VRFILTER_ADDR" envDefault:":8080"`

	LogLevel  string `env:"VRFILTER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VRFILTER_LOG_FORMAT" envDefault:"text"`
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Level parses LogLevel, defaulting to info for unknown names.
func (c Config) Level() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}

	return slog.LevelInfo
}

// RequireFilterFiles checks that both filter configuration files are set.
func (c Config) RequireFilterFiles() error {
	var missing []string
	if c.AllowList == "" {
		missing = append(missing, "allow-list (VRFILTER_ALLOW_LIST)")
	}

	if c.Mapping == "" {
		missing = append(missing, "mapping (VRFILTER_MAPPING)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Package envconfig reads csv2tsv settings from the environment.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel returns the log level
// Configurable via CSV2TSV_DEBUG: a boolean, or an integer verbosity where
// each step lowers the level by 4
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("CSV2TSV_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// ConfigPath returns the YAML configuration file to load, if any
// Configurable via CSV2TSV_CONFIG
func ConfigPath() string {
	return Var("CSV2TSV_CONFIG")
}

// BufferSize returns the read buffer size in bytes, or def when unset or invalid
// Configurable via CSV2TSV_BUFFER_SIZE
func BufferSize(def int) int {
	s := Var("CSV2TSV_BUFFER_SIZE")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		slog.Warn("invalid CSV2TSV_BUFFER_SIZE, using default", "value", s, "default", def)
		return def
	}
	return n
}

// Var returns an environment variable stripped of leading and trailing quotes and spaces
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

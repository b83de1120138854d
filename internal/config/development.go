package config

import (
	"log/slog"
	"os"
)

// Development is true when DEVELOPMENT is set to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogLevel keeps production logs quiet so they do not interleave with the
// board on the terminal.
func LogLevel() slog.Level {
	if Development() {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

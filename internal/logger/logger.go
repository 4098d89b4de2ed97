package logger

import (
	"strings"
	"sync"
)

// Log levels accepted by the log.level setting.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger configured with the provided level.
// The first call initializes the logger; subsequent calls ignore the level
// and return the already initialized instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(NormalizeLevel(level))
	})
	return globalLogger
}

// NormalizeLevel lowercases and trims a level name. Unknown names map to debug.
func NormalizeLevel(level string) string {
	switch l := strings.ToLower(strings.TrimSpace(level)); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l
	default:
		return DebugLevel
	}
}

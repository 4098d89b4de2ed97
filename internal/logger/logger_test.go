package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNormalizeLevel(t *testing.T) {
	cases := map[string]string{
		"INFO":    InfoLevel,
		" warn ":  WarnLevel,
		"error":   ErrorLevel,
		"":        DebugLevel,
		"verbose": DebugLevel,
	}
	for in, want := range cases {
		if got := NormalizeLevel(in); got != want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToZapLevel(t *testing.T) {
	if toZapLevel(InfoLevel) != zapcore.InfoLevel {
		t.Fatalf("info level not mapped")
	}
	if toZapLevel("bogus") != defaultZapLevel {
		t.Fatalf("unknown level should fall back to %v", defaultZapLevel)
	}
}

func TestGetReturnsSingleton(t *testing.T) {
	a := Get(InfoLevel)
	b := Get(ErrorLevel)
	if a == nil || a != b {
		t.Fatalf("expected the same logger instance, got %p and %p", a, b)
	}
}

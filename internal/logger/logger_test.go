package logger

import (
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "debug text",
			config: Config{
				Level:  LevelDebug,
				Format: FormatText,
				Output: "discard",
			},
		},
		{
			name: "info json",
			config: Config{
				Level:  LevelInfo,
				Format: FormatJSON,
				Output: "discard",
			},
		},
		{
			name:   "defaults",
			config: Config{Output: "discard"},
		},
		{
			name: "unknown level falls back to info",
			config: Config{
				Level:  Level("verbose"),
				Format: FormatText,
				Output: "discard",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.config)
			if l.Logger == nil {
				t.Error("expected logger to be created")
			}
			l.Info("message", "key", "value")
		})
	}
}

func TestWith(t *testing.T) {
	l := New(Config{Output: "discard"})
	child := l.With("component", "store")
	if child == l {
		t.Error("With should return a new logger")
	}
	child.Info("message")
}

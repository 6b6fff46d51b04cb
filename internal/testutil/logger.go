package testutil

import (
	"testing"

	"pocketledger/internal/logger"
)

// TestLogger returns a logger that discards all output.
func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	return logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: "discard",
	})
}

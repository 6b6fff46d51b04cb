package util

import (
	"strings"
	"testing"
)

func TestColorOutput(t *testing.T) {
	// Color codes may be stripped when not attached to a TTY; the text must
	// always survive.
	out := ColorOutput("total", "bold", "green")
	if !strings.Contains(out, "total") {
		t.Errorf("ColorOutput lost the text: %q", out)
	}

	// Unknown options are ignored.
	out = ColorOutput("total", "sparkly")
	if !strings.Contains(out, "total") {
		t.Errorf("ColorOutput lost the text: %q", out)
	}
}

package util

import "testing"

func TestGenerateRandomID(t *testing.T) {
	id := GenerateRandomID(8)
	if len(id) != 16 {
		t.Errorf("expected 16 hex characters, got %d", len(id))
	}

	if GenerateRandomID(8) == id {
		t.Error("expected distinct ids")
	}
}

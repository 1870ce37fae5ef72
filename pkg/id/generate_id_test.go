package id

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestNewID32_Shape(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("len = %d, want 32 (%q)", len(got), got)
	}
	if got != strings.ToLower(got) {
		t.Fatalf("id must be lowercase: %q", got)
	}
	raw, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("id is not valid hex: %v", err)
	}
	if len(raw) != 16 {
		t.Fatalf("decoded to %d bytes, want 16", len(raw))
	}
}

func TestNewID32_DoesNotRepeat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := NewID32()
		if seen[id] {
			t.Fatalf("collision on iteration %d: %q", i, id)
		}
		seen[id] = true
	}
}

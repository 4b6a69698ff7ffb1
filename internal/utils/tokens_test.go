package utils

import (
	"strings"
	"testing"
)

func TestCountTokens(t *testing.T) {
	if got := CountTokens(""); got != 0 {
		t.Fatalf("empty = %d", got)
	}
	if got := CountTokens("abc"); got != 1 {
		t.Fatalf("short text = %d, want 1", got)
	}
	if got := CountTokens(strings.Repeat("a", 400)); got != 100 {
		t.Fatalf("400 chars = %d, want 100", got)
	}
}

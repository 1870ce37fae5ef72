package money

import (
	"strings"
	"testing"
)

func TestValidCode(t *testing.T) {
	for _, code := range []string{"GBP", "USD", "IDR", "EUR"} {
		if !ValidCode(code) {
			t.Errorf("ValidCode(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "POUNDS", "Z1X", "??"} {
		if ValidCode(code) {
			t.Errorf("ValidCode(%q) = true, want false", code)
		}
	}
}

func TestFormat_KnownCurrency(t *testing.T) {
	got := Format("GBP", 1500)
	if !strings.Contains(got, "£") {
		t.Fatalf("Format(GBP) = %q, want pound symbol", got)
	}
	if !strings.Contains(got, "1,500") {
		t.Fatalf("Format(GBP) = %q, want grouped amount", got)
	}
}

func TestFormat_UnknownCodeFallsBack(t *testing.T) {
	got := Format("WUF", 1500)
	if got != "WUF 1500.00" {
		t.Fatalf("Format(WUF) = %q, want plain fallback", got)
	}
}

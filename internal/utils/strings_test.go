package utils

import (
	"testing"
	"time"
)

func TestDigitsOnlyAndTruncate(t *testing.T) {
	if got := DigitsOnly("07abc7-123 4567"); got != "0771234567" {
		t.Fatalf("DigitsOnly = %q", got)
	}
	if got := Truncate("0771234567890", 10); got != "0771234567" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("077", 10); got != "077" {
		t.Fatalf("Truncate short = %q", got)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("  "); got != "NA" {
		t.Fatalf("empty = %q", got)
	}
	if got := SafeFilenamePart("A/B: C"); got != "A_B__C" {
		t.Fatalf("replaced = %q", got)
	}
}

func TestTomorrow(t *testing.T) {
	now := time.Date(2026, time.December, 31, 23, 30, 0, 0, time.Local)
	if got := Tomorrow(now); got != "2027-01-01" {
		t.Fatalf("Tomorrow = %q", got)
	}
	var c Clock
	if c.Now().IsZero() {
		t.Fatalf("nil clock should fall back to time.Now")
	}
}

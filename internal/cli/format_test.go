package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{55.5, "$55.50"},
		{-55.5, "-$55.50"},
		{4836, "$4,836.00"},
		{1234567.89, "$1,234,567.89"},
		{-1700.5, "-$1,700.50"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(75.5); got != "+$75.50" {
		t.Errorf("FormatSignedMoney(75.5) = %q, want +$75.50", got)
	}
	if got := FormatSignedMoney(-55.5); got != "-$55.50" {
		t.Errorf("FormatSignedMoney(-55.5) = %q, want -$55.50", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 8, 19, 14, 23, 11, 0, time.Local)
	if got := FormatDate(d); got != "19 Aug 2024" {
		t.Errorf("FormatDate = %q, want 19 Aug 2024", got)
	}
	if got := FormatDateShort(d); got != "19 Aug" {
		t.Errorf("FormatDateShort = %q, want 19 Aug", got)
	}
}

func TestFormatMonthly(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{1, "Monthly - 1st"},
		{2, "Monthly - 2nd"},
		{3, "Monthly - 3rd"},
		{4, "Monthly - 4th"},
		{11, "Monthly - 11th"},
		{12, "Monthly - 12th"},
		{13, "Monthly - 13th"},
		{21, "Monthly - 21st"},
		{22, "Monthly - 22nd"},
		{30, "Monthly - 30th"},
	}
	for _, tc := range cases {
		d := time.Date(2024, 8, tc.day, 9, 0, 0, 0, time.Local)
		if got := FormatMonthly(d); got != tc.want {
			t.Errorf("FormatMonthly(day %d) = %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Serenity Spa & Wellness", 10); got != "Serenity …" {
		t.Errorf("Truncate = %q, want ellipsized to 10 runes", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q, want unchanged", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate(limit 0) = %q, want empty", got)
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback("./avatars/x.jpg", "Emma"); got != "./avatars/x.jpg" {
		t.Errorf("Fallback with avatar = %q, want the avatar path", got)
	}
	if got := Fallback("", "emma"); got != "E" {
		t.Errorf("Fallback without avatar = %q, want first letter uppercased", got)
	}
	if got := Fallback("", ""); got != "?" {
		t.Errorf("Fallback empty = %q, want ?", got)
	}
}

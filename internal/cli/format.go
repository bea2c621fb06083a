// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a dollar amount with two decimals and a thousands
// separator. e.g., 4836 -> "$4,836.00", -55.5 -> "-$55.50"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(s, '.')
	return "$" + groupDigits(s[:dot]) + s[dot:]
}

// FormatSignedMoney renders incomes with a leading plus so they stand out in
// mixed lists. e.g., 75.5 -> "+$75.50", -55.5 -> "-$55.50"
func FormatSignedMoney(amount float64) string {
	if amount >= 0 {
		return "+" + FormatMoney(amount)
	}
	return FormatMoney(amount)
}

// FormatDate formats a timestamp as "19 Aug 2024".
func FormatDate(d time.Time) string {
	return d.Local().Format("2 Jan 2006")
}

// FormatDateShort formats a timestamp as "19 Aug", for recurring bills where
// the year is noise.
func FormatDateShort(d time.Time) string {
	return d.Local().Format("2 Jan")
}

// FormatMonthly formats a bill's day of month as "Monthly - 2nd".
func FormatMonthly(d time.Time) string {
	return "Monthly - " + ordinal(d.Local().Day())
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Truncate shortens s to limit runes, ellipsizing when cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// Fallback returns the avatar reference, or the first letter of name when no
// avatar is set.
func Fallback(avatar, name string) string {
	if avatar != "" {
		return avatar
	}
	runes := []rune(name)
	if len(runes) == 0 {
		return "?"
	}
	return strings.ToUpper(string(runes[0]))
}

// groupDigits adds comma separators to a digit string.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// ordinal renders 1 -> "1st", 2 -> "2nd", 21 -> "21st", 12 -> "12th".
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

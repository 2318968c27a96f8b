// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKcal formats a kilocalorie figure, e.g. 2340 -> "2,340 kcal".
func FormatKcal(kcal int) string {
	return FormatNumber(int64(kcal)) + " kcal"
}

// FormatGrams formats a gram amount, trimming a trailing ".0".
// e.g. 12.5 -> "12.5 g", 80 -> "80 g"
func FormatGrams(g float64) string {
	return trimZero(fmt.Sprintf("%.1f", g)) + " g"
}

// FormatMacro formats a macro gram value without unit, one decimal max.
func FormatMacro(g float64) string {
	return trimZero(fmt.Sprintf("%.1f", g))
}

// FormatKg formats a kilogram-of-fat equivalent to one decimal place.
// e.g. 4500 kcal at 9000 kcal/kg -> "0.5 kg"
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatNumber adds comma separators to an integer.
// e.g. 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
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

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// ShortID returns the first 8 characters of an entry id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

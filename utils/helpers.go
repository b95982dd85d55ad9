package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWindowDays is used whenever a window is missing or not supported.
const DefaultWindowDays = 7

// IsValidWindow reports whether days is one of the supported trailing windows.
func IsValidWindow(days int) bool {
	switch days {
	case 7, 30, 90:
		return true
	default:
		return false
	}
}

// NormalizeWindow maps unsupported windows to DefaultWindowDays.
func NormalizeWindow(days int) int {
	if IsValidWindow(days) {
		return days
	}
	return DefaultWindowDays
}

// ParseTimeRange accepts "7d", "30d", "90d" or a bare day count and returns the
// normalized window. Anything unrecognized falls back to 7 days.
func ParseTimeRange(s string) int {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "d")
	days, err := strconv.Atoi(s)
	if err != nil {
		return DefaultWindowDays
	}
	return NormalizeWindow(days)
}

// TimeRangeLabel formats a window as "<N>d".
func TimeRangeLabel(days int) string {
	return fmt.Sprintf("%dd", NormalizeWindow(days))
}

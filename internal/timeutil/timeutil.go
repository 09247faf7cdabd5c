package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// InputLayout is the format users type into the edit modal. Values are
// interpreted as UTC; all stored timestamps are UTC.
const InputLayout = "2006-01-02 15:04:05"

// FormatDuration renders an hours/minutes pair like "2 hours, 1 minute",
// dropping zero components. Both zero renders as "0 minutes".
func FormatDuration(hours, minutes int) string {
	if hours == 0 && minutes == 0 {
		return "0 minutes"
	}

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, plural(minutes)))
	}
	return strings.Join(parts, ", ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// FormatDate renders a timestamp like "Jan 2, 2024, 03:04 PM".
func FormatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006, 03:04 PM")
}

// FormatDateOnly renders just the calendar date, like "Jan 2, 2024".
func FormatDateOnly(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

// FormatClock renders just the time of day, like "03:04:05 PM".
func FormatClock(t time.Time) string {
	return t.UTC().Format("03:04:05 PM")
}

// FormatInput renders a timestamp in InputLayout, for pre-filling the edit
// modal.
func FormatInput(t time.Time) string {
	return t.UTC().Format(InputLayout)
}

// ParseInput parses a modal timestamp as UTC.
func ParseInput(s string) (time.Time, error) {
	return time.ParseInLocation(InputLayout, strings.TrimSpace(s), time.UTC)
}

// SplitDuration floors a duration to whole minutes and splits it into hours
// and leftover minutes.
func SplitDuration(d time.Duration) (hours, minutes int) {
	totalMinutes := int(d.Minutes())
	return totalMinutes / 60, totalMinutes % 60
}

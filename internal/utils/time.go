package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/julianstephens/koffee/internal/constants"
)

var timePattern = regexp.MustCompile(constants.TimePattern)

// ValidateTimeFormat checks if the string is a zero-padded 24-hour HH:MM time.
func ValidateTimeFormat(timeStr string) bool {
	return timePattern.MatchString(timeStr)
}

// ParseTime parses a time string in the standard format (HH:MM).
// The returned time carries only the clock; its date is the zero date (January 1, year 0).
func ParseTime(timeStr string) (time.Time, error) {
	if !ValidateTimeFormat(timeStr) {
		return time.Time{}, fmt.Errorf("invalid time format: %q", timeStr)
	}
	return time.Parse(constants.TimeFormat, timeStr)
}

// FormatTime formats the clock part of t as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClockOf returns a time on the zero date holding only the hour and minute of t.
func ClockOf(t time.Time) time.Time {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout formats a time as an RFC 3339 calendar date with no time component.
const DateLayout = "2006-01-02"

const (
	minFormattableYear = 0
	maxFormattableYear = 9999
)

// layouts accepted by ParseDate, tried in order. Layouts without an offset are read as UTC.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	DateLayout,
}

// FormatDate returns the UTC calendar date of t as YYYY-MM-DD.
//
// Time of day and the zone offset are discarded after converting to UTC, so
// 2024-03-15T23:30:00-05:00 formats as 2024-03-16. Years that do not fit in
// four digits fail with ErrInvalidInput.
func FormatDate(t time.Time) (string, error) {
	utc := t.UTC()

	year := utc.Year()
	if year < minFormattableYear || year > maxFormattableYear {
		return "", fmt.Errorf("%w: year %d out of range", ErrInvalidInput, year)
	}

	return utc.Format(DateLayout), nil
}

// ParseDate reads value as a point in time.
//
// Accepted forms are RFC 3339 timestamps, timestamps without an offset
// (treated as UTC), bare YYYY-MM-DD dates and integer Unix milliseconds.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidInput)
	}

	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
	}

	if millis, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: cannot read %q as a date", ErrInvalidInput, value)
}

// FormatDateString parses value with ParseDate and formats it with FormatDate.
func FormatDateString(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}

	return FormatDate(t)
}

// Today formats the clock's current instant.
func Today(clock Clock) (string, error) {
	return FormatDate(clock.Now())
}

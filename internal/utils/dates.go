package utils

import (
	"fmt"
	"time"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
)

const (
	// CalendarDayLayout is the persisted date format for transaction records.
	CalendarDayLayout = "2006-01-02"
	// LocalTimestampLayout is the persisted format for notification timestamps.
	LocalTimestampLayout = "2006-01-02T15:04:05"
)

// ToCalendarDay normalizes a date string to a local YYYY-MM-DD calendar day.
// An empty input defaults to today; an unparseable input fails with
// apperrors.ErrValidation.
func ToCalendarDay(input string) (string, error) {
	if input == "" {
		return time.Now().Format(CalendarDayLayout), nil
	}
	d, err := ParseCalendarDay(input)
	if err != nil {
		return "", err
	}
	return d.Format(CalendarDayLayout), nil
}

// ParseCalendarDay parses a date string into a local-midnight time. It accepts
// plain calendar days and RFC3339 timestamps (the frontend sends both).
func ParseCalendarDay(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	for _, layout := range []string{CalendarDayLayout, time.RFC3339, LocalTimestampLayout} {
		if d, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, input)
}

// DayInRange reports whether a persisted calendar-day string falls inside the
// inclusive [start, end] range of local-midnight times. Unparseable dates are
// treated as out of range.
func DayInRange(day string, start, end time.Time) bool {
	d, err := ParseCalendarDay(day)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// NowLocalTimestamp returns the current local time in the persisted
// notification timestamp format.
func NowLocalTimestamp() string {
	return time.Now().Format(LocalTimestampLayout)
}

package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateRange parses start/end query parameters and rejects an inverted
// window before anything is read or written.
func ParseDateRange(startStr, endStr string) (start, end *time.Time, err error) {
	start, err = ParseDate(startStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid start_date: %w", err)
	}

	end, err = ParseDate(endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid end_date: %w", err)
	}

	if start.After(*end) {
		return nil, nil, fmt.Errorf("start_date cannot be after end_date")
	}

	return start, end, nil
}

// TruncateToDay normalizes a timestamp to midnight UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

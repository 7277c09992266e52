package handlers

import "time"

// --------------------------------------------------
// Timestamp parsing
// --------------------------------------------------

// parseStartTime accepts ISO-8601 with or without a zone offset.
// Zone-naive timestamps are taken as UTC.
func parseStartTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// parseDateOnly parses a YYYY-MM-DD calendar date.
func parseDateOnly(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

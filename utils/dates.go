package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all calendar dates in the API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// AddMonthsClamped adds months to a date, clamping to the last day of the
// target month instead of letting the day overflow (Jan 31 + 1 month is
// Feb 28/29, not Mar 2).
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// ComputeReferralExpiry returns referralDate plus durationMonths as a
// YYYY-MM-DD string. A non-positive duration falls back to 12 months.
func ComputeReferralExpiry(referralDate string, durationMonths int) (string, error) {
	t, err := ParseDate(referralDate)
	if err != nil {
		return "", err
	}
	if durationMonths <= 0 {
		durationMonths = 12
	}
	return AddMonthsClamped(t, durationMonths).Format(DateLayout), nil
}

// AgeFromDOB returns full years between dob (YYYY-MM-DD) and now.
// Returns nil when dob is empty or unparseable.
func AgeFromDOB(dob string, now time.Time) *int {
	if dob == "" {
		return nil
	}
	t, err := ParseDate(dob)
	if err != nil {
		return nil
	}
	age := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return &age
}

// WeekdayName returns the English weekday name for a YYYY-MM-DD date,
// matching the values stored in a patient's dialysis_days list.
func WeekdayName(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// MonthBounds returns the first day of a YYYY-MM month and the first day of
// the following month, both as YYYY-MM-DD strings.
func MonthBounds(month string) (string, string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start.Format(DateLayout), start.AddDate(0, 1, 0).Format(DateLayout), nil
}

// DaysInMonth returns the number of calendar days in a YYYY-MM month.
func DaysInMonth(month string) (int, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", month, err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day(), nil
}

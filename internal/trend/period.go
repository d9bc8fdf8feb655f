// Package trend merges independently fetched monthly policy counts (sales,
// reinstatements, lapses) into parallel, chart-ready time series.
//
// Every report is built from fresh values: nothing in this package keeps state
// between calls, so concurrent requests never share an index or a series.
package trend

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodKey identifies one calendar month. Keys compare and sort chronologically.
type PeriodKey int

// NewPeriodKey builds the key for year/month without validation.
func NewPeriodKey(year int, month time.Month) PeriodKey {
	return PeriodKey(year*12 + int(month) - 1)
}

// KeyOf returns the month containing t.
func KeyOf(t time.Time) PeriodKey {
	return NewPeriodKey(t.Year(), t.Month())
}

func (k PeriodKey) Year() int {
	return int(k) / 12
}

func (k PeriodKey) Month() time.Month {
	return time.Month(int(k)%12 + 1)
}

// AddMonths shifts the key by n months (n may be negative).
func (k PeriodKey) AddMonths(n int) PeriodKey {
	return k + PeriodKey(n)
}

// String renders the canonical "YYYY-MM" label.
func (k PeriodKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year(), int(k.Month()))
}

// Normalize parses a source period label into its PeriodKey.
//
// Accepted labels are "YYYY-M", "YYYY-MM" and "YYYY-MM-DD"; the day of the
// date form must exist in that month and is then discarded. Padding never changes the result, so
// "2024-3" and "2024-03" yield the same key.
func Normalize(label string) (PeriodKey, error) {
	raw := strings.TrimSpace(label)
	parts := strings.Split(raw, "-")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &MalformedPeriodError{Label: label, Reason: "expected year-month"}
	}

	year, ok := parseDigits(parts[0], 4)
	if !ok || year < 1 {
		return 0, &MalformedPeriodError{Label: label, Reason: "invalid year"}
	}

	month, ok := parseDigits(parts[1], 2)
	if !ok {
		return 0, &MalformedPeriodError{Label: label, Reason: "invalid month"}
	}
	if month < 1 || month > 12 {
		return 0, &MalformedPeriodError{Label: label, Reason: "month out of range"}
	}

	if len(parts) == 3 {
		day, ok := parseDigits(parts[2], 2)
		if !ok {
			return 0, &MalformedPeriodError{Label: label, Reason: "invalid day"}
		}
		if day < 1 || day > daysIn(year, time.Month(month)) {
			return 0, &MalformedPeriodError{Label: label, Reason: "day out of range"}
		}
	}

	return NewPeriodKey(year, time.Month(month)), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseDigits accepts 1..maxLen ASCII digits only; strconv alone would let
// signs through.
func parseDigits(s string, maxLen int) (int, bool) {
	if s == "" || len(s) > maxLen {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

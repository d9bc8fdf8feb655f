package trend

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when a metric source could not be fetched.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedPeriod marks a period label that cannot be parsed into (year, month).
	ErrMalformedPeriod = errors.New("malformed period")

	// ErrNegativeCount marks a row whose count was below zero.
	ErrNegativeCount = errors.New("negative count")

	// ErrLengthMismatch is returned when series that must be parallel are not.
	ErrLengthMismatch = errors.New("series length mismatch")
)

// Cause strings surfaced to API clients alongside the error message.
const (
	CauseSourceUnavailable = "source_unavailable"
	CauseMalformedPeriod   = "malformed_period"
	CauseNegativeCount     = "negative_count"
	CauseInternal          = "internal"
)

// MalformedPeriodError carries the rejected label.
type MalformedPeriodError struct {
	Label  string
	Reason string
}

func (e *MalformedPeriodError) Error() string {
	return fmt.Sprintf("malformed period %q: %s", e.Label, e.Reason)
}

func (e *MalformedPeriodError) Unwrap() error {
	return ErrMalformedPeriod
}

// SourceUnavailableError wraps the fetch failure of one metric kind.
type SourceUnavailableError struct {
	Kind Kind
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source unavailable: %s: %v", e.Kind, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NegativeCountAnomaly describes a clamped row. It is recorded, never returned.
type NegativeCountAnomaly struct {
	Kind     Kind
	Period   PeriodKey
	Category Category
	Count    int64
}

func (e *NegativeCountAnomaly) Error() string {
	return fmt.Sprintf("negative count %d for %s %s %s", e.Count, e.Kind, e.Period, e.Category)
}

func (e *NegativeCountAnomaly) Unwrap() error {
	return ErrNegativeCount
}

// Cause maps an error to the stable cause string used in error payloads.
func Cause(err error) string {
	switch {
	case errors.Is(err, ErrSourceUnavailable):
		return CauseSourceUnavailable
	case errors.Is(err, ErrMalformedPeriod):
		return CauseMalformedPeriod
	case errors.Is(err, ErrNegativeCount):
		return CauseNegativeCount
	default:
		return CauseInternal
	}
}

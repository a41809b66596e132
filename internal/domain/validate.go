package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimer is wrapped by every timer input validation failure.
var ErrInvalidTimer = errors.New("invalid timer")

func invariantError(t Timer, format string, args ...any) error {
	return fmt.Errorf("timer %s: %s", t.ID, fmt.Sprintf(format, args...))
}

// ValidateName rejects blank timer names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTimer)
	}
	return nil
}

// ValidateCategory rejects blank categories.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidTimer)
	}
	return nil
}

// ValidateDuration rejects non-positive durations.
func ValidateDuration(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of seconds", ErrInvalidTimer)
	}
	return nil
}

// ParseDuration parses user-entered seconds and validates them.
func ParseDuration(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q is not a number", ErrInvalidTimer, s)
	}
	if err := ValidateDuration(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateTimerInput checks the fields a caller must enforce before
// creating a timer. The store itself does not re-validate.
func ValidateTimerInput(name, category string, duration int) error {
	return errors.Join(ValidateName(name), ValidateCategory(category), ValidateDuration(duration))
}

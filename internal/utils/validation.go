package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"linetrack.dev/internal/models"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - common in transit IDs
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateServiceDate validates date strings in YYYYMMDD format.
// Empty dates are allowed and default to the current service date.
func ValidateServiceDate(date string) error {
	if date == "" {
		return nil
	}

	if len(date) != len(models.ServiceDateLayout) {
		return errors.New("invalid date format, use YYYYMMDD")
	}
	if _, err := time.Parse(models.ServiceDateLayout, date); err != nil {
		return errors.New("invalid date format, use YYYYMMDD")
	}

	return nil
}

// ServiceDateOrToday returns date, or today's service date when date is empty.
func ServiceDateOrToday(date string, now time.Time) string {
	if date != "" {
		return date
	}
	return now.Format(models.ServiceDateLayout)
}

// ParseDirection parses a direction code. Empty input means outbound.
func ParseDirection(raw string) (int, error) {
	switch strings.TrimSpace(raw) {
	case "", "0":
		return models.DirectionOutbound, nil
	case "1":
		return models.DirectionInbound, nil
	default:
		return 0, errors.New("direction must be 0 or 1")
	}
}

// ParseBoolParam reads a boolean query value, treating empty as false.
func ParseBoolParam(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("must be a boolean")
	}
	return v, nil
}

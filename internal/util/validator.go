package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// maxAmount caps a single expense at ten million.
var maxAmount = decimal.NewFromInt(10000000)

// ValidateAmount checks a monetary amount (must be positive, below the cap).
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidatePaydayDay checks a payday day-of-month (1..31).
func ValidatePaydayDay(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("payday day must be within 1..31, got %d", day)
	}
	return nil
}

// ValidateCurrency checks a currency tag. Display only, no conversion, so
// the set is closed.
func ValidateCurrency(code string) error {
	switch code {
	case "RUB", "USD":
		return nil
	}
	return fmt.Errorf("unsupported currency %q", code)
}

// ParseDateTime parses user-supplied timestamps in the formats the mini
// app sends. An empty string yields the fallback.
func ParseDateTime(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	layouts := []string{
		time.RFC3339,          // 2025-12-03T10:15:00+03:00
		"2006-01-02T15:04:05", // 2025-12-03T10:15:00
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

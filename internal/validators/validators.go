package validators

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// FieldError is one violation in a validation result. Validators collect
// every failing field in declaration order instead of stopping at the
// first, so the client gets the complete list in one response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// hasOneDecimalPlace reports whether x carries at most one decimal place.
func hasOneDecimalPlace(x float64) bool {
	scaled := x * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

func lengthBetween(value string, min, max int) bool {
	n := len(strings.TrimSpace(value))
	return n >= min && n <= max
}

func lengthMessage(field string, min, max int) string {
	return fmt.Sprintf("%s must be between %d and %d characters long", field, min, max)
}

func rangeMessage(field string, min, max int) string {
	return fmt.Sprintf("%s must be between %d and %d", field, min, max)
}

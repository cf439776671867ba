// validation/rules.go - field-level rules shared by the registration
// wizard and the server-side submission checks. Every rule takes the
// raw field value and returns an error reason, or "" when valid.
package validation

import (
	"fmt"
	"strings"
)

// Required fails when the trimmed value is empty.
func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return "is required"
	}
	return ""
}

// MinLength fails when the trimmed value is shorter than min runes.
func MinLength(value string, min int) string {
	if len([]rune(strings.TrimSpace(value))) < min {
		return fmt.Sprintf("must be at least %d characters", min)
	}
	return ""
}

// MaxLength fails when the trimmed value is longer than max runes.
func MaxLength(value string, max int) string {
	if len([]rune(strings.TrimSpace(value))) > max {
		return fmt.Sprintf("must be at most %d characters", max)
	}
	return ""
}

// OneOf fails when the value is not in the allowed set.
func OneOf(value string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return ""
		}
	}
	return fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
}

// ThaiPhone validates a Thai mobile or landline number. Formatting
// characters are stripped first, so "081-234-5678" and "0812345678"
// are both accepted; the digits must number 9-10 and start with 0.
func ThaiPhone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "is required"
	}
	digits := stripNonDigits(value)
	if len(digits) < 9 || len(digits) > 10 || digits[0] != '0' {
		return "must be a valid Thai phone number"
	}
	return ""
}

// NormalizePhone returns only the digits of a phone value, the form in
// which numbers are compared and stored.
func NormalizePhone(value string) string {
	return stripNonDigits(value)
}

// stripNonDigits keeps ASCII digits only. Thai numerals (๐-๙) are not
// admitted: the canonical stored form is [0-9], and counting them would
// confuse byte length with digit count.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

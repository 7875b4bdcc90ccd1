package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// enquiryEmailRegex is the simple two-part local@domain.tld pattern
	// used by the enquiry form. Deliberately loose.
	enquiryEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigits = regexp.MustCompile(`\D`)
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// SanitizeString removes potentially dangerous characters
func SanitizeString(s string) string {
	// Remove null bytes
	s = strings.ReplaceAll(s, "\x00", "")
	// Trim whitespace
	s = strings.TrimSpace(s)
	return s
}

// StripNonDigits removes everything except 0-9
func StripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateEnquiry applies the enquiry form rules in order and returns the
// first failing rule's message, or "" when all rules pass. One message at
// a time, matching the form behavior.
func ValidateEnquiry(name, email, phone string) string {
	if strings.TrimSpace(name) == "" {
		return "Please enter your name"
	}
	if !enquiryEmailRegex.MatchString(strings.TrimSpace(email)) {
		return "Please enter a valid email address"
	}
	if len(StripNonDigits(phone)) != 10 {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

// SanitizeFee strips a fee value down to digits and at most one decimal
// point: "12a.3.4b" becomes "12.34".
func SanitizeFee(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			b.WriteRune(r)
			seenDot = true
		}
	}
	return b.String()
}

// SanitizeYear keeps digits only, capped at four characters.
func SanitizeYear(s string) string {
	digits := StripNonDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

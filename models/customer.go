package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	nationalIDPattern = regexp.MustCompile(`^\d{8}[A-Z]$`)
	emailPattern      = regexp.MustCompile(`^[\w.+-]+@[\w.-]+\.[A-Za-z]{2,}$`)
)

// ValidationError reports a malformed registration field by name so the
// caller can surface which input to correct.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Customer is a registered guest. IDs are assigned sequentially from 1 and
// never reused. VIP starts as supplied at registration and may later be
// flipped true by the booking ledger; it is never flipped false.
type Customer struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"nationalId"`
	VIP        bool   `json:"vip"`
}

// ValidateName requires at least 3 characters after trimming whitespace.
// Characters, not bytes: "ñoa" passes, "ño" does not.
func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 3 {
		return &ValidationError{Field: "name", Message: "must have at least 3 characters"}
	}
	return nil
}

// ValidateNationalID requires exactly 8 digits followed by one uppercase letter.
func ValidateNationalID(id string) error {
	if !nationalIDPattern.MatchString(id) {
		return &ValidationError{Field: "nationalId", Message: "must be 8 digits followed by an uppercase letter"}
	}
	return nil
}

// ValidateEmail requires a local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "must be a valid address like name@example.com"}
	}
	return nil
}

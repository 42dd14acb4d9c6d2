package validation

import (
	"strconv"
	"strings"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// FitsBytes reports whether s is at most max bytes long.
func (v *Validator) FitsBytes(s string, max int) bool {
	return len(s) <= max
}

// HasNUL reports whether s contains a NUL byte, which would end the string
// early once written to a fixed-width field.
func (v *Validator) HasNUL(s string) bool {
	return strings.IndexByte(s, 0) >= 0
}

// ParseID parses a decimal record id.
func (v *Validator) ParseID(field, s string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(field, s, "a non-negative integer below 2^32")
		return 0, validationError
	}
	return uint32(id), nil
}

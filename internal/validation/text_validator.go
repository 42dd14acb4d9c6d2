package validation

import (
	"ac-tracker/internal/domain"
)

// TextValidator checks titles, descriptions and task text against the bounded
// text policy: anything longer than domain.MaxTextLength bytes, or containing
// a NUL byte, is rejected. Nothing is trimmed or truncated.
type TextValidator struct {
	validator *Validator
}

// NewTextValidator creates a new text validator
func NewTextValidator() *TextValidator {
	return &TextValidator{
		validator: NewValidator(),
	}
}

func (tv *TextValidator) check(validationError *ValidationError, field, value string) {
	if !tv.validator.FitsBytes(value, domain.MaxTextLength) {
		validationError.AddTooLongError(field, value, domain.MaxTextLength)
	}
	if tv.validator.HasNUL(value) {
		validationError.AddInvalidCharacterError(field, value, "NUL bytes are not allowed")
	}
}

// ValidateText validates a single bounded text field.
func (tv *TextValidator) ValidateText(field, value string) error {
	validationError := NewValidationError()
	tv.check(validationError, field, value)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateGroup validates a group title and description together.
func (tv *TextValidator) ValidateGroup(title, description string) error {
	validationError := NewValidationError()
	tv.check(validationError, "title", title)
	tv.check(validationError, "description", description)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskText validates task text.
func (tv *TextValidator) ValidateTaskText(text string) error {
	return tv.ValidateText("task", text)
}

package cli

import (
	stderrors "errors"
	"fmt"

	"ac-tracker/internal/config"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/logging"
	"ac-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// CommandError carries the message shown to the user while keeping the
// underlying error reachable for errors.As and exit codes.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Handle provides user-friendly error messages prefixed with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if msg, ok := eh.userMessage(err); ok {
		return &CommandError{Message: fmt.Sprintf("failed to %s: %s", operation, msg), Err: err}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if msg, ok := eh.userMessage(err); ok {
		return &CommandError{Message: msg, Err: err}
	}
	return err
}

// ExitCode returns the process status for an error returned by a command.
func (eh *ErrorHandler) ExitCode(err error) int {
	var validationErr *validation.ValidationError
	var configErr *config.ConfigError
	if stderrors.As(err, &validationErr) || stderrors.As(err, &configErr) {
		return errors.ExitUsage
	}
	return errors.ExitCode(err)
}

func (eh *ErrorHandler) userMessage(err error) (string, bool) {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage(), true
	}

	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return "invalid configuration: " + configErr.Error(), true
	}

	if _, ok := errors.AsAppError(err); ok {
		if errors.ShouldLogError(err) {
			logging.Debug("command failed", "code", errors.GetErrorCode(err), "error", err)
		}
		return errors.GetUserMessage(err), true
	}

	return "", false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsInvalidInstanceError checks if an error reports a missing or destroyed instance
func (eh *ErrorHandler) IsInvalidInstanceError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidInstance)
}

// IsIOError checks if an error is an instance file failure
func (eh *ErrorHandler) IsIOError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeIO)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// IsDatabaseError checks if an error is a snapshot database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

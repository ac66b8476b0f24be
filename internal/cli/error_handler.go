package cli

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/logging"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	log     *slog.Logger
	verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{log: logging.Component("cli")}
}

// SetVerbose appends error context such as the task and date to messages.
func (eh *ErrorHandler) SetVerbose(verbose bool) {
	eh.verbose = verbose
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		eh.log.Error("command failed", slog.String("operation", operation), slog.Any("error", err))
	}

	if message, ok := eh.userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, message)
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if message, ok := eh.userMessage(err); ok {
		return stderrors.New(message)
	}
	return err
}

// userMessage renders field-level validation details when err carries
// them, and the AppError user message otherwise.
func (eh *ErrorHandler) userMessage(err error) (string, bool) {
	var validationErr *validation.ValidationError
	hasFields := stderrors.As(err, &validationErr)
	appErr, isAppErr := errors.AsAppError(err)

	var message string
	switch {
	case hasFields && isAppErr && appErr.Type == errors.ErrorTypeSnapshot:
		message = appErr.Message + ": " + validationErr.GetUserFriendlyMessage()
	case hasFields:
		return validationErr.GetUserFriendlyMessage(), true
	case isAppErr:
		message = errors.GetUserMessage(err)
	default:
		return "", false
	}

	if details := appErr.Details(); eh.verbose && details != "" {
		message += " (" + details + ")"
	}
	return message, true
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

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

package validation

import (
	"github.com/Manav279/DailyTracker/internal/domain"
)

// JournalValidator validates journal entries
type JournalValidator struct {
	validator *Validator
	logs      *LogValidator
}

// NewJournalValidator creates a new journal validator
func NewJournalValidator(v *Validator) *JournalValidator {
	if v == nil {
		v = NewValidator()
	}
	return &JournalValidator{validator: v, logs: NewLogValidator(v)}
}

// ValidateEntry checks the date and the content length. Empty content is
// allowed; it clears the day's entry text.
func (jv *JournalValidator) ValidateEntry(entry domain.JournalEntry) error {
	validationError := NewValidationError()

	validationError.Merge("", jv.logs.ValidateDate("date", entry.Date))
	if max := jv.validator.JournalMaxLength(); !jv.validator.IsWithinLength(entry.Content, max) {
		validationError.AddInvalidLengthError("content", len(entry.Content), max)
	}
	if entry.ID < 0 {
		validationError.AddInvalidValueError("id", entry.ID, "must be a positive integer")
	}

	return validationError.ErrOrNil()
}

package validation

import (
	"github.com/Manav279/DailyTracker/internal/domain"
)

// LogValidator validates task logs and the dates and windows used to query them
type LogValidator struct {
	validator *Validator
}

// NewLogValidator creates a new log validator
func NewLogValidator(v *Validator) *LogValidator {
	if v == nil {
		v = NewValidator()
	}
	return &LogValidator{validator: v}
}

// ValidateDate validates a YYYY-MM-DD date
func (lv *LogValidator) ValidateDate(field, date string) error {
	validationError := NewValidationError()
	if date == "" {
		validationError.AddRequiredError(field)
	} else if !lv.validator.IsValidDate(date) {
		validationError.AddInvalidFormatError(field, date, domain.DateLayout)
	}
	return validationError.ErrOrNil()
}

// ValidateStatus validates a stored log status
func (lv *LogValidator) ValidateStatus(status domain.LogStatus) error {
	if !status.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be completed or skipped")
		return validationError
	}
	return nil
}

// ValidateTaskLog validates a task log. TaskID only has to be positive;
// it may refer to a task that no longer exists.
func (lv *LogValidator) ValidateTaskLog(log domain.TaskLog) error {
	validationError := NewValidationError()

	if !lv.validator.IsValidID(log.TaskID) {
		validationError.AddInvalidValueError("taskId", log.TaskID, "must be a positive integer")
	}
	validationError.Merge("", lv.ValidateDate("date", log.Date))
	validationError.Merge("", lv.ValidateStatus(log.Status))
	if log.ID < 0 {
		validationError.AddInvalidValueError("id", log.ID, "must be a positive integer")
	}

	return validationError.ErrOrNil()
}

// ValidateDays validates an analytics window length. allowZero accepts 0
// as "all time".
func (lv *LogValidator) ValidateDays(days int, allowZero bool) error {
	if days > 0 || (allowZero && days == 0) {
		return nil
	}

	validationError := NewValidationError()
	reason := "must be at least 1"
	if allowZero {
		reason = "must be 0 (all time) or more"
	}
	validationError.AddInvalidRangeError("days", days, reason)
	return validationError
}

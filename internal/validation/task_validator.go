package validation

import (
	"strings"

	"github.com/Manav279/DailyTracker/internal/domain"
)

// TaskValidator provides validation for habit definitions
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator(v *Validator) *TaskValidator {
	if v == nil {
		v = NewValidator()
	}
	return &TaskValidator{validator: v}
}

// ValidateTitle validates a task title and returns it trimmed
func (tv *TaskValidator) ValidateTitle(title string) (string, error) {
	validationError := NewValidationError()
	trimmed := strings.TrimSpace(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return "", validationError
	}
	if max := tv.validator.TitleMaxLength(); !tv.validator.IsWithinLength(trimmed, max) {
		validationError.AddInvalidLengthError("title", trimmed, max)
	}
	if strings.ContainsAny(trimmed, "\n\r\t") {
		validationError.AddInvalidFormatError("title", trimmed, "a single line of text")
	}

	if err := validationError.ErrOrNil(); err != nil {
		return "", err
	}
	return trimmed, nil
}

// ValidatePillar parses a pillar name
func (tv *TaskValidator) ValidatePillar(pillar string) (domain.Pillar, error) {
	if strings.TrimSpace(pillar) == "" {
		validationError := NewValidationError()
		validationError.AddRequiredError("pillar")
		return "", validationError
	}

	p, ok := domain.ParsePillar(pillar)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("pillar", pillar, "must be one of Physical, Mental, Social")
		return "", validationError
	}
	return p, nil
}

// ValidateTaskForCreation validates user input for a new habit and returns
// the normalized task.
func (tv *TaskValidator) ValidateTaskForCreation(title, pillar, frequency string) (domain.Task, error) {
	validationError := NewValidationError()

	cleanTitle, err := tv.ValidateTitle(title)
	validationError.Merge("", err)

	p, err := tv.ValidatePillar(pillar)
	validationError.Merge("", err)

	if err := validationError.ErrOrNil(); err != nil {
		return domain.Task{}, err
	}
	return domain.NewTask(cleanTitle, p, strings.TrimSpace(frequency)), nil
}

// ValidateTask validates a stored or imported task
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	_, err := tv.ValidateTitle(task.Title)
	validationError.Merge("", err)

	if !task.Pillar.IsValid() {
		validationError.AddInvalidValueError("pillar", task.Pillar, "must be one of Physical, Mental, Social")
	}
	if task.ID < 0 {
		validationError.AddInvalidValueError("id", task.ID, "must be a positive integer")
	}

	return validationError.ErrOrNil()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id domain.ID) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

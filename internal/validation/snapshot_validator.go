package validation

import (
	"fmt"

	"github.com/Manav279/DailyTracker/internal/domain"
)

// maxReportedSnapshotErrors bounds the field errors collected from one document.
const maxReportedSnapshotErrors = 20

// SnapshotValidator validates every entity of an imported backup
type SnapshotValidator struct {
	tasks   *TaskValidator
	logs    *LogValidator
	journal *JournalValidator
}

// NewSnapshotValidator creates a new snapshot validator
func NewSnapshotValidator(v *Validator) *SnapshotValidator {
	if v == nil {
		v = NewValidator()
	}
	return &SnapshotValidator{
		tasks:   NewTaskValidator(v),
		logs:    NewLogValidator(v),
		journal: NewJournalValidator(v),
	}
}

// ValidateEntities checks each entity. Field names are prefixed with the
// collection and index, e.g. "taskLogs[3].date".
func (sv *SnapshotValidator) ValidateEntities(tasks []*domain.Task, logs []*domain.TaskLog, journal []*domain.JournalEntry) error {
	validationError := NewValidationError()

	for i, task := range tasks {
		if task == nil {
			validationError.AddRequiredError(fmt.Sprintf("tasks[%d]", i))
			continue
		}
		validationError.Merge(fmt.Sprintf("tasks[%d]", i), sv.tasks.ValidateTask(*task))
	}
	for i, log := range logs {
		if log == nil {
			validationError.AddRequiredError(fmt.Sprintf("taskLogs[%d]", i))
			continue
		}
		validationError.Merge(fmt.Sprintf("taskLogs[%d]", i), sv.logs.ValidateTaskLog(*log))
	}
	for i, entry := range journal {
		if entry == nil {
			validationError.AddRequiredError(fmt.Sprintf("journal[%d]", i))
			continue
		}
		validationError.Merge(fmt.Sprintf("journal[%d]", i), sv.journal.ValidateEntry(*entry))
	}

	if len(validationError.Errors) > maxReportedSnapshotErrors {
		validationError.Errors = validationError.Errors[:maxReportedSnapshotErrors]
	}
	return validationError.ErrOrNil()
}

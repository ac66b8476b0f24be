package domain

// LogStatus is the stored outcome of a habit on a day.
type LogStatus string

const (
	StatusCompleted LogStatus = "completed"
	StatusSkipped   LogStatus = "skipped"
)

// IsValid reports whether s can be stored on a TaskLog.
func (s LogStatus) IsValid() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// TaskStatus is the status shown for a habit on a day. Pending is never
// stored; it is the absence of a log.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = TaskStatus(StatusCompleted)
	TaskSkipped   TaskStatus = TaskStatus(StatusSkipped)
)

// TaskLog records the outcome of one habit on one calendar date.
// TaskID is not enforced as a foreign key; it may point at a deleted task.
type TaskLog struct {
	ID         ID        `json:"id,omitempty" yaml:"id"`
	TaskID     ID        `json:"taskId" yaml:"taskId"`
	Date       string    `json:"date" yaml:"date"`
	Status     LogStatus `json:"status" yaml:"status"`
	LoggedLate bool      `json:"loggedLate" yaml:"loggedLate"`
}

// IsCompleted reports whether the log counts as a completion.
func (l TaskLog) IsCompleted() bool {
	return l.Status == StatusCompleted
}

// TaskDayStatus is a habit together with its status on a given date.
type TaskDayStatus struct {
	Task       Task       `json:"task" yaml:"task"`
	Date       string     `json:"date" yaml:"date"`
	Status     TaskStatus `json:"status" yaml:"status"`
	LogID      ID         `json:"logId,omitempty" yaml:"logId,omitempty"`
	LoggedLate bool       `json:"loggedLate" yaml:"loggedLate"`
}

package domain

// DefaultFrequency is stored when a habit is created without one.
const DefaultFrequency = "daily"

// Task is a recurring habit.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        ID     `json:"id,omitempty" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Pillar    Pillar `json:"pillar" yaml:"pillar"`
	Frequency string `json:"frequency" yaml:"frequency"`
}

// NewTask creates a new, not yet persisted Task.
func NewTask(title string, pillar Pillar, frequency string) Task {
	if frequency == "" {
		frequency = DefaultFrequency
	}
	return Task{
		Title:     title,
		Pillar:    pillar,
		Frequency: frequency,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Pillar.IsValid()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

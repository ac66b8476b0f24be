package domain

// JournalEntry is the free-text journal for one date. At most one entry
// exists per date.
type JournalEntry struct {
	ID      ID     `json:"id,omitempty" yaml:"id"`
	Date    string `json:"date" yaml:"date"`
	Content string `json:"content" yaml:"content"`
}

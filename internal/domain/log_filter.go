package domain

// LogFilter selects task logs. Nil fields do not constrain the result.
// Date, TaskID and Status match by equality; DateFrom and DateTo bound the
// date inclusively.
type LogFilter struct {
	Date     *string
	TaskID   *ID
	Status   *LogStatus
	DateFrom *string
	DateTo   *string
}

// OnDate restricts the filter to a single date.
func (f LogFilter) OnDate(date string) LogFilter {
	f.Date = &date
	return f
}

// ForTask restricts the filter to one task.
func (f LogFilter) ForTask(id ID) LogFilter {
	f.TaskID = &id
	return f
}

// WithStatus restricts the filter to one status.
func (f LogFilter) WithStatus(status LogStatus) LogFilter {
	f.Status = &status
	return f
}

// Between restricts the filter to the inclusive range [from, to].
func (f LogFilter) Between(from, to string) LogFilter {
	f.DateFrom = &from
	f.DateTo = &to
	return f
}

// CompletedOn is the filter used for per-day completion counts.
func CompletedOn(date string) LogFilter {
	return LogFilter{}.OnDate(date).WithStatus(StatusCompleted)
}

// Matches reports whether log satisfies every set constraint. Dates compare
// lexically, which orders YYYY-MM-DD strings chronologically.
func (f LogFilter) Matches(log TaskLog) bool {
	if f.Date != nil && log.Date != *f.Date {
		return false
	}
	if f.TaskID != nil && log.TaskID != *f.TaskID {
		return false
	}
	if f.Status != nil && log.Status != *f.Status {
		return false
	}
	if f.DateFrom != nil && log.Date < *f.DateFrom {
		return false
	}
	if f.DateTo != nil && log.Date > *f.DateTo {
		return false
	}
	return true
}

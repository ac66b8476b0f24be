package sqlite

import (
	"strings"
)

// FormatBoolForDB stores a boolean as the INTEGER 0 or 1.
func FormatBoolForDB(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ParseBoolFromDB reads an INTEGER flag. Any non-zero value is true.
func ParseBoolFromDB(v int64) bool {
	return v != 0
}

// BuildLogConditions renders a LogFilter as a WHERE clause and its
// arguments. An empty filter yields an empty clause.
func BuildLogConditions(filter LogFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Date != nil {
		conditions = append(conditions, "date = ?")
		args = append(args, *filter.Date)
	}
	if filter.TaskID != nil {
		conditions = append(conditions, "task_id = ?")
		args = append(args, *filter.TaskID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, *filter.DateTo)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

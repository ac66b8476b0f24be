package domain

import "time"

// DateLayout is the storage form of a calendar date.
const DateLayout = "2006-01-02"

// CalendarDay reduces t to midnight UTC of its calendar date in t's own
// location. Day arithmetic on the result never crosses a DST transition.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays moves t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return CalendarDay(t).AddDate(0, 0, n)
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return CalendarDay(t).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsValidDate reports whether s is a real YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	t, err := ParseDate(s)
	return err == nil && t.Format(DateLayout) == s
}

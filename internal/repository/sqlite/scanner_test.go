package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface for testing
type TestRows struct {
	rows    [][]interface{}
	current int
	err     error
	scanErr error
}

func (tr *TestRows) Next() bool {
	tr.current++
	return tr.current <= len(tr.rows)
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	if tr.scanErr != nil {
		return tr.scanErr
	}
	return (&TestScanner{data: tr.rows[tr.current-1]}).Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTaskLog(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *TaskLog
		expectError bool
	}{
		{
			name: "completed on time",
			scanner: &TestScanner{
				data: []interface{}{int64(1), int64(10), "2024-01-15", "completed", int64(0)},
			},
			expected: &TaskLog{ID: 1, TaskID: 10, Date: "2024-01-15", Status: "completed"},
		},
		{
			name: "logged late",
			scanner: &TestScanner{
				data: []interface{}{int64(2), int64(10), "2024-01-14", "completed", int64(1)},
			},
			expected: &TaskLog{ID: 2, TaskID: 10, Date: "2024-01-14", Status: "completed", LoggedLate: true},
		},
		{
			name:        "scanner error",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTaskLog(tt.scanner)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanTask(t *testing.T) {
	result, err := ScanTask(&TestScanner{data: []interface{}{int64(4), "Read", "Mental", "daily"}})
	require.NoError(t, err)
	assert.Equal(t, &Task{ID: 4, Title: "Read", Pillar: "Mental", Frequency: "daily"}, result)

	_, err = ScanTask(&TestScanner{err: errors.New("boom")})
	assert.Error(t, err)
}

func TestScanJournalEntries(t *testing.T) {
	rows := &TestRows{rows: [][]interface{}{
		{int64(1), "2024-01-01", "first"},
		{int64(2), "2024-01-02", "second"},
	}}

	entries, err := ScanJournalEntries(rows)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[1].Content)
}

func TestScanTasks_Errors(t *testing.T) {
	_, err := ScanTasks(&TestRows{rows: [][]interface{}{{int64(1), "a", "Social", "daily"}}, scanErr: errors.New("scan failed")})
	assert.EqualError(t, err, "scan failed")

	_, err = ScanTasks(&TestRows{err: errors.New("iteration failed")})
	assert.EqualError(t, err, "iteration failed")

	tasks, err := ScanTasks(&TestRows{})
	assert.NoError(t, err)
	assert.Empty(t, tasks)
}

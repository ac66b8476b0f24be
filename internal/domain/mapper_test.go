package domain

import (
	"testing"

	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	task := Task{ID: 1, Title: "Run", Pillar: PillarPhysical, Frequency: "daily"}

	result := mapper.ToDatabase(task)

	expected := sqlite.Task{ID: 1, Title: "Run", Pillar: "Physical", Frequency: "daily"}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	row := sqlite.Task{ID: 3, Title: "Call mum", Pillar: "Social", Frequency: "weekly"}

	result := mapper.FromDatabase(row)

	expected := Task{ID: 3, Title: "Call mum", Pillar: PillarSocial, Frequency: "weekly"}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()
	rows := []*sqlite.Task{
		{ID: 1, Title: "Run", Pillar: "Physical", Frequency: "daily"},
		{ID: 2, Title: "Read", Pillar: "Mental", Frequency: "daily"},
	}

	result := mapper.FromDatabaseSlice(rows)

	assert.Len(t, result, 2)
	assert.Equal(t, ID(1), result[0].ID)
	assert.Equal(t, PillarMental, result[1].Pillar)
	assert.Equal(t, rows, mapper.ToDatabaseSlice(result))
}

func TestTaskMapper_EmptySlice(t *testing.T) {
	mapper := NewTaskMapper()
	assert.Empty(t, mapper.FromDatabaseSlice(nil))
	assert.Empty(t, mapper.ToDatabaseSlice([]*Task{}))
}

func TestTaskLogMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskLogMapper()
	log := TaskLog{ID: 7, TaskID: 2, Date: "2024-01-02", Status: StatusSkipped, LoggedLate: true}

	row := mapper.ToDatabase(log)
	assert.Equal(t, sqlite.TaskLog{ID: 7, TaskID: 2, Date: "2024-01-02", Status: "skipped", LoggedLate: true}, row)
	assert.Equal(t, log, mapper.FromDatabase(row))
}

func TestTaskLogMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskLogMapper()
	rows := []*sqlite.TaskLog{
		{ID: 1, TaskID: 1, Date: "2024-01-01", Status: "completed"},
		{ID: 2, TaskID: 9, Date: "2024-01-02", Status: "completed", LoggedLate: true},
	}

	result := mapper.FromDatabaseSlice(rows)

	assert.Len(t, result, 2)
	assert.Equal(t, ID(9), result[1].TaskID)
	assert.True(t, result[1].LoggedLate)
	assert.True(t, result[0].IsCompleted())
}

func TestJournalMapper_RoundTrip(t *testing.T) {
	mapper := NewJournalMapper()
	entry := JournalEntry{ID: 4, Date: "2024-03-01", Content: "quiet day"}

	row := mapper.ToDatabase(entry)
	assert.Equal(t, sqlite.JournalEntry{ID: 4, Date: "2024-03-01", Content: "quiet day"}, row)
	assert.Equal(t, entry, mapper.FromDatabase(row))

	entries := mapper.FromDatabaseSlice([]*sqlite.JournalEntry{&row})
	assert.Equal(t, []*JournalEntry{&entry}, entries)
}

func TestLogFilterMapper_ToDatabase(t *testing.T) {
	mapper := NewLogFilterMapper()

	empty := mapper.ToDatabase(LogFilter{})
	assert.Nil(t, empty.Date)
	assert.Nil(t, empty.TaskID)
	assert.Nil(t, empty.Status)

	filter := LogFilter{}.ForTask(5).WithStatus(StatusCompleted).Between("2024-01-01", "2024-01-07")
	row := mapper.ToDatabase(filter)
	if assert.NotNil(t, row.TaskID) {
		assert.Equal(t, int64(5), *row.TaskID)
	}
	if assert.NotNil(t, row.Status) {
		assert.Equal(t, "completed", *row.Status)
	}
	assert.Equal(t, "2024-01-01", *row.DateFrom)
	assert.Equal(t, "2024-01-07", *row.DateTo)
}

func TestNewMapper(t *testing.T) {
	mappers := NewMapper()

	assert.NotNil(t, mappers.Task)
	assert.NotNil(t, mappers.TaskLog)
	assert.NotNil(t, mappers.Journal)
	assert.NotNil(t, mappers.LogFilter)
}

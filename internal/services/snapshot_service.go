package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/logging"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// snapshotDocument is the decoding form of a backup. Pointers tell a missing
// field apart from an empty one.
type snapshotDocument struct {
	Version   *int                    `json:"version"`
	Timestamp string                  `json:"timestamp"`
	ExportID  string                  `json:"exportId"`
	Tasks     *[]*domain.Task         `json:"tasks"`
	TaskLogs  *[]*domain.TaskLog      `json:"taskLogs"`
	Journal   *[]*domain.JournalEntry `json:"journal"`
}

type snapshotServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.SnapshotValidator
	log       *slog.Logger
}

// NewSnapshotService creates a new SnapshotService instance
func NewSnapshotService(repo sqlite.Repository, validator *validation.Validator) SnapshotService {
	return &snapshotServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewSnapshotValidator(validator),
		log:       logging.Component("snapshot"),
	}
}

// Export reads the whole store into a new snapshot stamped with now.
func (s *snapshotServiceImpl) Export(ctx context.Context, now time.Time) (*Snapshot, error) {
	stored, err := s.repo.ExportAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Version:   SnapshotVersion,
		Timestamp: now.UTC().Format(time.RFC3339),
		ExportID:  uuid.NewString(),
		Tasks:     s.mapper.Task.FromDatabaseSlice(stored.Tasks),
		TaskLogs:  s.mapper.TaskLog.FromDatabaseSlice(stored.TaskLogs),
		Journal:   s.mapper.Journal.FromDatabaseSlice(stored.Journal),
	}
	s.log.Debug("snapshot exported", slog.String("exportId", snapshot.ExportID),
		slog.Int("tasks", len(snapshot.Tasks)), slog.Int("taskLogs", len(snapshot.TaskLogs)),
		slog.Int("journal", len(snapshot.Journal)))
	return snapshot, nil
}

// WriteExport exports and writes the snapshot to w as indented JSON.
func (s *snapshotServiceImpl) WriteExport(ctx context.Context, w io.Writer, now time.Time) (*Snapshot, error) {
	snapshot, err := s.Export(ctx, now)
	if err != nil {
		return nil, err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypePermission, "failed to write backup")
	}
	return snapshot, nil
}

// Import reads a backup from r and merges it into the store. Rows are
// matched by id; the document is fully validated before anything is written.
func (s *snapshotServiceImpl) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var doc snapshotDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.NewSnapshotError("not valid JSON", err)
	}

	switch {
	case doc.Tasks == nil:
		return nil, errors.NewSnapshotError("missing tasks array", nil)
	case doc.TaskLogs == nil:
		return nil, errors.NewSnapshotError("missing taskLogs array", nil)
	case doc.Journal == nil:
		return nil, errors.NewSnapshotError("missing journal array", nil)
	}
	if doc.Version != nil && *doc.Version > SnapshotVersion {
		return nil, errors.NewSnapshotError(fmt.Sprintf("unsupported version %d", *doc.Version), nil)
	}

	tasks, logs, journal := *doc.Tasks, *doc.TaskLogs, *doc.Journal
	if err := s.validator.ValidateEntities(tasks, logs, journal); err != nil {
		return nil, errors.NewSnapshotError("invalid entities", err)
	}

	stored := &sqlite.Snapshot{
		Tasks:    s.mapper.Task.ToDatabaseSlice(tasks),
		TaskLogs: s.mapper.TaskLog.ToDatabaseSlice(logs),
		Journal:  s.mapper.Journal.ToDatabaseSlice(journal),
	}
	if err := s.repo.ImportSnapshot(ctx, stored); err != nil {
		return nil, err
	}

	return &ImportResult{Tasks: len(tasks), TaskLogs: len(logs), Journal: len(journal)}, nil
}

// ClearAll deletes every task, log and journal entry.
func (s *snapshotServiceImpl) ClearAll(ctx context.Context) error {
	if err := s.repo.ClearAll(ctx); err != nil {
		return err
	}
	s.log.Info("all data cleared")
	return nil
}

package services

import (
	"context"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// DefaultRecentEntriesLimit is used when RecentEntries gets a non-positive limit.
const DefaultRecentEntriesLimit = 30

type journalServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.JournalValidator
}

// NewJournalService creates a new JournalService instance
func NewJournalService(repo sqlite.Repository, validator *validation.Validator) JournalService {
	return &journalServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewJournalValidator(validator),
	}
}

// GetEntry returns the entry for date, or nil when the day has none.
func (j *journalServiceImpl) GetEntry(ctx context.Context, date string) (*domain.JournalEntry, error) {
	if err := j.validator.ValidateEntry(domain.JournalEntry{Date: date}); err != nil {
		return nil, errors.NewValidationError("invalid date", err)
	}

	row, err := j.repo.GetJournalEntry(ctx, date)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry := j.mapper.Journal.FromDatabase(*row)
	return &entry, nil
}

// SaveEntry creates the entry for date or replaces its content.
func (j *journalServiceImpl) SaveEntry(ctx context.Context, date, content string) (*domain.JournalEntry, error) {
	entry := domain.JournalEntry{Date: date, Content: content}
	if err := j.validator.ValidateEntry(entry); err != nil {
		return nil, errors.NewValidationError("invalid journal entry", err)
	}

	row := j.mapper.Journal.ToDatabase(entry)
	if err := j.repo.SaveJournalEntry(ctx, &row); err != nil {
		return nil, err
	}

	saved := j.mapper.Journal.FromDatabase(row)
	return &saved, nil
}

// RecentEntries returns up to limit entries, newest date first.
func (j *journalServiceImpl) RecentEntries(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentEntriesLimit
	}

	rows, err := j.repo.ListJournalEntries(ctx, limit)
	if err != nil {
		return nil, err
	}
	return j.mapper.Journal.FromDatabaseSlice(rows), nil
}

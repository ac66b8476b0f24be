package services

import (
	"context"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
)

// repositoryReader serves RecordReader from the sqlite repository
type repositoryReader struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewRecordReader adapts repo to the RecordReader interface
func NewRecordReader(repo sqlite.Repository) RecordReader {
	return &repositoryReader{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

func (r *repositoryReader) ListAllTasks(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapper.Task.FromDatabaseSlice(rows), nil
}

func (r *repositoryReader) ListLogs(ctx context.Context, filter domain.LogFilter) ([]*domain.TaskLog, error) {
	rows, err := r.repo.ListTaskLogs(ctx, r.mapper.LogFilter.ToDatabase(filter))
	if err != nil {
		return nil, err
	}
	return r.mapper.TaskLog.FromDatabaseSlice(rows), nil
}

func (r *repositoryReader) CountLogs(ctx context.Context, filter domain.LogFilter) (int, error) {
	return r.repo.CountTaskLogs(ctx, r.mapper.LogFilter.ToDatabase(filter))
}

func (r *repositoryReader) CountTasks(ctx context.Context) (int, error) {
	return r.repo.CountTasks(ctx)
}

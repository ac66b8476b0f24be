package services

import (
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// NewServiceContainer wires every service to repo. A nil validator uses
// the default limits.
func NewServiceContainer(repo sqlite.Repository, validator *validation.Validator) *ServiceContainer {
	if validator == nil {
		validator = validation.NewValidator()
	}
	return &ServiceContainer{
		AnalyticsService: NewAnalyticsService(NewRecordReader(repo)),
		TaskService:      NewTaskService(repo, validator),
		JournalService:   NewJournalService(repo, validator),
		SnapshotService:  NewSnapshotService(repo, validator),
		QuoteService:     NewQuoteService(),
	}
}

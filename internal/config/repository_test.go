package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "nested", "dt")
	t.Setenv("DT_DB_DIR", dir)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(filepath.Join(dir, "dt.db"))
	assert.NoError(t, err)

	require.NoError(t, repo.CreateTask(context.Background(), &sqlite.Task{Title: "Run", Pillar: "Physical", Frequency: "daily"}))
	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestCreateRepository_AppliesQueryTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("DT_DB_DIR", t.TempDir())

	tests := []struct {
		name        string
		timeout     time.Duration
		wantTimeout bool
	}{
		{"expired bound", time.Nanosecond, true},
		{"default bound", 10 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewLoader().Load()
			require.NoError(t, err)
			cfg.Database.QueryTimeout = tt.timeout

			repo, err := CreateRepository(cfg)
			require.NoError(t, err)
			defer repo.Close()

			_, err = repo.CountTasks(context.Background())
			if tt.wantTimeout {
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	n, err := repo.CountTasks(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

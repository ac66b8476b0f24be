package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manav279/DailyTracker/internal/config"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value string
		want  Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(environmentVar, tt.value)
			assert.Equal(t, tt.want, getEnvironment())
		})
	}
}

func TestRepositoryFactory_OpenAPI(t *testing.T) {
	t.Run("testing uses an in-memory store", func(t *testing.T) {
		businessAPI, closer, err := NewRepositoryFactory(Testing).OpenAPI(config.NewConfig())
		require.NoError(t, err)
		defer closer.Close()

		task, err := businessAPI.AddTask(context.Background(), "Stretch", "Physical", "")
		require.NoError(t, err)
		assert.True(t, task.ID.Assigned())
	})

	t.Run("production uses the configured path", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Database.Dir = filepath.Join(t.TempDir(), "nested")
		cfg.Database.Filename = "habits.db"

		businessAPI, closer, err := NewRepositoryFactory(Production).OpenAPI(cfg)
		require.NoError(t, err)

		tasks, err := businessAPI.ListTasks(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tasks)
		require.NoError(t, closer.Close())

		assert.FileExists(t, filepath.Join(cfg.Database.Dir, "habits.db"))
	})
}

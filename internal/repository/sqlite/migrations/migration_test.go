package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, kind, name string) bool {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = ? AND name = ?`, kind, name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestLoadMigrations_Ordered(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "000001_create_tables", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
	assert.NotEmpty(t, migrations[1].Down)
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	for _, table := range []string{"tasks", "task_logs", "journal", "migrations"} {
		assert.True(t, tableExists(t, db, "table", table), table)
	}
	for _, index := range []string{"idx_task_logs_date", "idx_task_logs_task_id", "idx_task_logs_status", "idx_journal_date"} {
		assert.True(t, tableExists(t, db, "index", index), index)
	}

	applied, err := AppliedVersions(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, applied)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}

func TestJournalDateIsUnique(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))

	_, err := db.Exec(`INSERT INTO journal (date, content) VALUES ('2024-01-01', 'a')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO journal (date, content) VALUES ('2024-01-01', 'b')`)
	assert.Error(t, err)

	// task_logs deliberately has no uniqueness on (task_id, date)
	_, err = db.Exec(`INSERT INTO task_logs (task_id, date, status) VALUES (1, '2024-01-01', 'completed'), (1, '2024-01-01', 'completed')`)
	assert.NoError(t, err)
}

func TestRollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))

	version, err := Rollback(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.False(t, tableExists(t, db, "index", "idx_journal_date"))
	assert.True(t, tableExists(t, db, "table", "journal"))

	version, err = Rollback(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.False(t, tableExists(t, db, "table", "tasks"))

	version, err = Rollback(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 12, extractVersion("000012_something.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.md"))
}

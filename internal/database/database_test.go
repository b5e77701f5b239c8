package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskforce/internal/config"
)

func TestConnectMigrateAndIndex(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: config.DriverSQLite,
		DatabaseDSN: filepath.Join(t.TempDir(), "taskforce.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	for _, table := range []string{"members", "expected_tasks", "tasks"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, AddIndexes(db))
	assert.True(t, db.Migrator().HasIndex("tasks", "idx_tasks_created_at_id"))

	// Second run finds the indexes and skips them.
	require.NoError(t, AddIndexes(db))
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{StoreDriver: config.DriverREST})
	assert.Error(t, err)
}

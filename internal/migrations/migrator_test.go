package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var resourceTables = []string{"help_requests", "menu_item_reviews", "recommendation_requests", "articles", "dining_commons"}

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Logf("Warning: failed to close test database: %v", closeErr)
		}
	})
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestMigrator_RunMigrations(t *testing.T) {
	db := openTestDB(t, "TestMigrator_RunMigrations")

	migrator := NewMigrator(db)
	for _, migration := range GetInitialMigrations() {
		migrator.AddMigration(migration)
	}

	err := migrator.RunMigrations()
	require.NoError(t, err)

	version, err := migrator.GetCurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(5), version)

	for _, table := range resourceTables {
		assert.True(t, tableExists(t, db, table), "expected table %s", table)
	}
	assert.True(t, tableExists(t, db, "schema_migrations"))

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = 2 AND name = 'create_menu_item_reviews_table'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMigrator_RunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t, "TestMigrator_RunMigrations_Idempotent")

	for i := 0; i < 2; i++ {
		migrator := NewMigrator(db)
		for _, migration := range GetInitialMigrations() {
			migrator.AddMigration(migration)
		}
		require.NoError(t, migrator.RunMigrations())
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestMigrator_AddMigration(t *testing.T) {
	db := openTestDB(t, "TestMigrator_AddMigration")

	migrator := NewMigrator(db)

	// Add migrations out of order
	migrator.AddMigration(Migration{Version: 3, Name: "third"})
	migrator.AddMigration(Migration{Version: 1, Name: "first"})
	migrator.AddMigration(Migration{Version: 2, Name: "second"})

	migrations := migrator.GetMigrations()
	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Equal(t, int64(2), migrations[1].Version)
	assert.Equal(t, int64(3), migrations[2].Version)
}

func TestMigrator_FailedMigrationIsNotRecorded(t *testing.T) {
	db := openTestDB(t, "TestMigrator_FailedMigrationIsNotRecorded")

	migrator := NewMigrator(db)
	migrator.AddMigration(Migration{
		Version: 1,
		Name:    "broken",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec("CREATE TABLE half_done (id INTEGER)"); err != nil {
				return err
			}
			return errors.New("boom")
		},
	})

	err := migrator.RunMigrations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migration 1 (broken)")

	version, err := migrator.GetCurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
	assert.False(t, tableExists(t, db, "half_done"), "DDL should roll back with the transaction")
}

func TestMigrator_RollbackTo(t *testing.T) {
	db := openTestDB(t, "TestMigrator_RollbackTo")

	migrator := NewMigrator(db)
	for _, migration := range GetInitialMigrations() {
		migrator.AddMigration(migration)
	}
	require.NoError(t, migrator.RunMigrations())

	require.NoError(t, migrator.RollbackTo(3))

	version, err := migrator.GetCurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	assert.True(t, tableExists(t, db, "help_requests"))
	assert.True(t, tableExists(t, db, "recommendation_requests"))
	assert.False(t, tableExists(t, db, "articles"))
	assert.False(t, tableExists(t, db, "dining_commons"))

	// Re-applying brings the dropped tables back
	require.NoError(t, migrator.RunMigrations())
	assert.True(t, tableExists(t, db, "dining_commons"))
}

func TestNewSchemaMigrator(t *testing.T) {
	db := openTestDB(t, "TestNewSchemaMigrator")

	migrator := NewSchemaMigrator(db)
	assert.Len(t, migrator.GetMigrations(), len(GetInitialMigrations()))

	require.NoError(t, migrator.RunMigrations())
	for _, table := range resourceTables {
		assert.True(t, tableExists(t, db, table), "expected table %s", table)
	}
}

package migrations

import (
	"database/sql"
)

// NewSchemaMigrator returns a migrator with every schema migration registered
func NewSchemaMigrator(db *sql.DB) *Migrator {
	migrator := NewMigrator(db)
	for _, migration := range GetInitialMigrations() {
		migrator.AddMigration(migration)
	}
	return migrator
}

// GetInitialMigrations returns the migrations creating one table per resource type
func GetInitialMigrations() []Migration {
	return []Migration{
		createTable(1, "create_help_requests_table", "help_requests", `
			CREATE TABLE help_requests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				requester_email TEXT NOT NULL,
				team_id TEXT NOT NULL,
				table_or_breakout_room TEXT NOT NULL,
				explanation TEXT NOT NULL,
				solved INTEGER NOT NULL,
				request_time TEXT NOT NULL
			)
		`),
		createTable(2, "create_menu_item_reviews_table", "menu_item_reviews", `
			CREATE TABLE menu_item_reviews (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				item_id INTEGER NOT NULL,
				reviewer_email TEXT NOT NULL,
				stars INTEGER NOT NULL,
				date_reviewed TEXT NOT NULL,
				comments TEXT NOT NULL
			)
		`),
		createTable(3, "create_recommendation_requests_table", "recommendation_requests", `
			CREATE TABLE recommendation_requests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				requester_email TEXT NOT NULL,
				professor_email TEXT NOT NULL,
				explanation TEXT NOT NULL,
				date_requested TEXT NOT NULL,
				date_needed TEXT NOT NULL,
				done INTEGER NOT NULL
			)
		`),
		createTable(4, "create_articles_table", "articles", `
			CREATE TABLE articles (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				url TEXT NOT NULL,
				explanation TEXT NOT NULL,
				email TEXT NOT NULL,
				date_added TEXT NOT NULL
			)
		`),
		createTable(5, "create_dining_commons_table", "dining_commons", `
			CREATE TABLE dining_commons (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				code TEXT NOT NULL,
				name TEXT NOT NULL,
				has_sack_meal INTEGER NOT NULL,
				has_take_out_meal INTEGER NOT NULL,
				has_dining_cam INTEGER NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL
			)
		`),
	}
}

// createTable builds a migration that creates a table and drops it on revert.
// Timestamps are TEXT columns so the driver never converts them to a zone.
func createTable(version int64, name, table, ddl string) Migration {
	return Migration{
		Version: version,
		Name:    name,
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(ddl)
			return err
		},
		Down: func(tx *sql.Tx) error {
			_, err := tx.Exec(`DROP TABLE IF EXISTS ` + table)
			return err
		},
	}
}

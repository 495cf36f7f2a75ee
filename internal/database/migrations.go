package database

import (
	"fmt"
	"strings"
)

// Migration is one versioned schema change.
type Migration struct {
	ID          int
	Description string
	SQL         string
}

// migrations contains all database migrations in order.
var migrations = []Migration{
	{
		ID:          1,
		Description: "Initial career schema",
		SQL: `
CREATE TABLE IF NOT EXISTS player (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL,
	hometown TEXT NOT NULL DEFAULT 'Pennsylvania',
	age INTEGER NOT NULL,
	grade INTEGER NOT NULL,
	career_stage TEXT NOT NULL,
	weight_class INTEGER NOT NULL,
	fatigue INTEGER NOT NULL,
	injury_risk INTEGER NOT NULL,
	weight_cut_pressure INTEGER NOT NULL DEFAULT 0,
	money INTEGER NOT NULL DEFAULT 0,
	strength INTEGER NOT NULL,
	speed INTEGER NOT NULL,
	stamina INTEGER NOT NULL,
	technique INTEGER NOT NULL,
	mentality INTEGER NOT NULL,
	toughness INTEGER NOT NULL,
	confidence INTEGER NOT NULL,
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	pins INTEGER NOT NULL DEFAULT 0,
	majors INTEGER NOT NULL DEFAULT 0,
	decisions INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS injuries (
	position INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	severity TEXT NOT NULL,
	remaining_weeks INTEGER NOT NULL,
	stat_penalty INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS finance_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
	entry TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS achievements (
	position INTEGER PRIMARY KEY,
	entry TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS season (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	week INTEGER NOT NULL,
	in_season INTEGER NOT NULL DEFAULT 0,
	postseason_phase TEXT NOT NULL DEFAULT '',
	recruitment_interest INTEGER NOT NULL DEFAULT 0
);`,
	},
	// Future migrations can be added here
}

// runMigrations executes all pending migrations.
func (d *SQLiteDatabase) runMigrations() error {
	if err := d.ensureSchemaVersionTable(); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := d.getCurrentSchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.ID > currentVersion {
			if err := d.applyMigration(migration); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", migration.ID, err)
			}
		}
	}
	return nil
}

// ensureSchemaVersionTable creates the schema_version table if missing.
func (d *SQLiteDatabase) ensureSchemaVersionTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := d.db.Exec(query)
	return err
}

// getCurrentSchemaVersion returns the highest applied version.
func (d *SQLiteDatabase) getCurrentSchemaVersion() (int, error) {
	query := `SELECT COALESCE(MAX(version), 0) FROM schema_version;`

	var version int
	if err := d.db.QueryRow(query).Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

// applyMigration applies a single migration in a transaction.
func (d *SQLiteDatabase) applyMigration(migration Migration) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	statements := strings.Split(migration.SQL, ";")
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || strings.HasPrefix(stmt, "--") {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration statement: %w", err)
		}
	}

	recordQuery := `INSERT INTO schema_version (version) VALUES (?);`
	if _, err := tx.Exec(recordQuery, migration.ID); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// validateSchema checks that the career tables exist with their key
// columns before the database is considered usable.
func (d *SQLiteDatabase) validateSchema() error {
	query := `
	SELECT name FROM pragma_table_info('player')
	WHERE name IN ('name', 'career_stage', 'weight_class', 'fatigue', 'injury_risk');`

	rows, err := d.db.Query(query)
	if err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}
	defer rows.Close()

	columnCount := 0
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan column name: %w", err)
		}
		columnCount++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if columnCount < 5 {
		return fmt.Errorf("database schema is invalid or incomplete")
	}
	return nil
}

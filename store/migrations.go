// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect selects the SQL flavour of an SQLStore.
type Dialect int

const (
	// SQLite covers SQLite and libSQL.
	SQLite Dialect = iota
	// MySQL covers MySQL and MariaDB.
	MySQL
)

// String returns the dialect name.
func (d Dialect) String() string {
	if d == MySQL {
		return "mysql"
	}

	return "sqlite"
}

// migration is one versioned schema change.
type migration struct {
	Version int
	Name    string
	SQL     map[Dialect][]string
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "sessions",
		SQL: map[Dialect][]string{
			SQLite: {
				`CREATE TABLE IF NOT EXISTS sessions (
	id         VARCHAR(36) PRIMARY KEY,
	name       TEXT        NOT NULL,
	status     VARCHAR(16) NOT NULL,
	nodes      INTEGER     NOT NULL,
	edges      INTEGER     NOT NULL,
	state      TEXT        NOT NULL,
	updated_at TIMESTAMP   NOT NULL
)`,
				`CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions (updated_at)`,
			},
			MySQL: {
				`CREATE TABLE IF NOT EXISTS sessions (
	id         VARCHAR(36)  NOT NULL PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	status     VARCHAR(16)  NOT NULL,
	nodes      INT          NOT NULL,
	edges      INT          NOT NULL,
	state      LONGTEXT     NOT NULL,
	updated_at DATETIME(6)  NOT NULL,
	INDEX idx_sessions_updated_at (updated_at)
)`,
			},
		},
	},
}

const createSchemaVersion = `CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER     NOT NULL PRIMARY KEY,
	name    VARCHAR(64) NOT NULL
)`

// runMigrations creates schema_version and applies every pending migration,
// each in its own transaction.
func runMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, createSchemaVersion); err != nil {
		return fmt.Errorf("store: create schema_version: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("store: read schema_version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("store: begin migration %d: %w", m.Version, err)
		}
		for _, stmt := range m.SQL[d] {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("store: migration %d (%s): %w", m.Version, m.Name, err)
			}
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version, name) VALUES (?, ?)`, m.Version, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("store: record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("store: commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

// NewLibSQLStore opens (creating if needed) an embedded libSQL database and
// applies migrations. path is a file URI such as "file:/var/lib/bf/sessions.db".
func NewLibSQLStore(ctx context.Context, path string) (*SQLStore, error) {
	db, err := sql.Open("libsql", path)
	if err != nil {
		return nil, fmt.Errorf("store: open libsql: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Some PRAGMAs return a row, so QueryRow rather than Exec.
	for _, p := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		var result string
		_ = db.QueryRowContext(ctx, p).Scan(&result)
	}

	s := NewSQLStore(db, SQLite)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/bellmanford/snapshot"
)

// SQLStore keeps sessions in a "sessions" table.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewSQLStore wraps an open database. Call Migrate before first use.
func NewSQLStore(db *sql.DB, d Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: d, now: time.Now}
}

// DB returns the underlying handle.
func (s *SQLStore) DB() *sql.DB { return s.db }

// Dialect returns the SQL flavour in use.
func (s *SQLStore) Dialect() Dialect { return s.dialect }

// Migrate applies pending schema migrations.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return runMigrations(ctx, s.db, s.dialect)
}

// Close implements Store.
func (s *SQLStore) Close() error { return s.db.Close() }

const columns = `id, name, status, nodes, edges, state, updated_at`

func (s *SQLStore) upsertSQL() string {
	if s.dialect == MySQL {
		return `INSERT INTO sessions (` + columns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE name = VALUES(name), status = VALUES(status), nodes = VALUES(nodes),
	edges = VALUES(edges), state = VALUES(state), updated_at = VALUES(updated_at)`
	}

	return `INSERT INTO sessions (` + columns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET name = excluded.name, status = excluded.status, nodes = excluded.nodes,
	edges = excluded.edges, state = excluded.state, updated_at = excluded.updated_at`
}

// Save implements Store.
func (s *SQLStore) Save(ctx context.Context, sess *Session) error {
	staged, err := prepare(sess, s.now())
	if err != nil {
		return err
	}
	state, err := snapshot.Encode(staged.State)
	if err != nil {
		return err
	}
	sum := summarize(staged)
	if _, err := s.db.ExecContext(ctx, s.upsertSQL(),
		sum.ID, sum.Name, sum.Status, sum.Nodes, sum.Edges, string(state), sum.UpdatedAt,
	); err != nil {
		return fmt.Errorf("store: save %s: %w", staged.ID, err)
	}

	commit(sess, staged)

	return nil
}

// Load implements Store.
func (s *SQLStore) Load(ctx context.Context, id string) (*Session, error) {
	if err := CheckID(id); err != nil {
		return nil, err
	}
	var (
		sess  = &Session{}
		state string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, state, updated_at FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.Name, &state, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", id, err)
	}
	if sess.State, err = snapshot.Decode([]byte(state)); err != nil {
		return nil, fmt.Errorf("store: session %s: %w", id, err)
	}

	return sess, nil
}

// List implements Store.
func (s *SQLStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, status, nodes, edges, updated_at FROM sessions ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Status, &sum.Nodes, &sum.Edges, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return out, nil
}

// Delete implements Store.
func (s *SQLStore) Delete(ctx context.Context, id string) error {
	if err := CheckID(id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n == 0 {
		return notFound(id)
	}

	return nil
}

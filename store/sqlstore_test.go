// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/snapshot"
)

func newMock(t *testing.T, d Dialect) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	s := NewSQLStore(db, d)
	s.now = fixedClock()
	t.Cleanup(func() {
		mock.ExpectClose()
		require.NoError(t, s.Close())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	return s, mock
}

func q(sql string) string { return regexp.QuoteMeta(sql) }

func TestMigrateFreshSQLite(t *testing.T) {
	s, mock := newMock(t, SQLite)
	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS schema_version")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q("SELECT COALESCE(MAX(version), 0) FROM schema_version")).
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS sessions")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("CREATE INDEX IF NOT EXISTS idx_sessions_updated_at")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("INSERT INTO schema_version (version, name) VALUES (?, ?)")).
		WithArgs(1, "sessions").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Migrate(context.Background()))
}

func TestMigrateMySQLRollsBackOnFailure(t *testing.T) {
	s, mock := newMock(t, MySQL)
	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS schema_version")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q("SELECT COALESCE(MAX(version), 0) FROM schema_version")).
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(q("INDEX idx_sessions_updated_at (updated_at)")).WillReturnError(errors.New("access denied"))
	mock.ExpectRollback()

	err := s.Migrate(context.Background())
	require.ErrorContains(t, err, "migration 1 (sessions)")
}

func TestMigrateUpToDate(t *testing.T) {
	s, mock := newMock(t, SQLite)
	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS schema_version")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q("SELECT COALESCE(MAX(version), 0) FROM schema_version")).
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(len(migrations)))

	require.NoError(t, s.Migrate(context.Background()))
}

func TestSQLSaveUsesDialectUpsert(t *testing.T) {
	for _, tc := range []struct {
		d      Dialect
		clause string
	}{
		{SQLite, "ON CONFLICT(id) DO UPDATE"},
		{MySQL, "ON DUPLICATE KEY UPDATE"},
	} {
		t.Run(tc.d.String(), func(t *testing.T) {
			s, mock := newMock(t, tc.d)
			st := demoState(t)
			want, err := snapshot.Encode(st)
			require.NoError(t, err)

			mock.ExpectExec(q(tc.clause)).
				WithArgs(sqlmock.AnyArg(), "demo", "running", 4, 4, string(want), time.Date(2024, 5, 1, 12, 0, 1, 0, time.UTC)).
				WillReturnResult(sqlmock.NewResult(1, 1))

			sess := &Session{Name: "demo", State: st}
			require.NoError(t, s.Save(context.Background(), sess))
			require.NoError(t, CheckID(sess.ID))
		})
	}
}

func TestSQLLoad(t *testing.T) {
	s, mock := newMock(t, SQLite)
	st := demoState(t)
	data, err := snapshot.Encode(st)
	require.NoError(t, err)
	id := NewSessionID()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(q("SELECT id, name, state, updated_at FROM sessions WHERE id = ?")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "state", "updated_at"}).AddRow(id, "demo", string(data), at))

	got, err := s.Load(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, at, got.UpdatedAt)
	require.Empty(t, cmp.Diff(st, got.State, stateOpts))
}

func TestSQLLoadMissing(t *testing.T) {
	s, mock := newMock(t, SQLite)
	id := NewSessionID()
	mock.ExpectQuery(q("SELECT id, name, state, updated_at FROM sessions")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "state", "updated_at"}))

	_, err := s.Load(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLLoadCorruptRowFailsClosed(t *testing.T) {
	s, mock := newMock(t, SQLite)
	id := NewSessionID()
	mock.ExpectQuery(q("SELECT id, name, state, updated_at FROM sessions")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "state", "updated_at"}).
			AddRow(id, "demo", `{"nodes": 3, "status": "running"}`, time.Now()))

	_, err := s.Load(context.Background(), id)
	require.ErrorIs(t, err, bellmanford.ErrMalformedState)
}

func TestSQLList(t *testing.T) {
	s, mock := newMock(t, MySQL)
	a, b := NewSessionID(), NewSessionID()
	newer := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	mock.ExpectQuery(q("SELECT id, name, status, nodes, edges, updated_at FROM sessions ORDER BY updated_at DESC, id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "nodes", "edges", "updated_at"}).
			AddRow(a, "new", "completed", 5, 7, newer).
			AddRow(b, "old", "negative-cycle", 3, 3, older))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Summary{
		{ID: a, Name: "new", Status: "completed", Nodes: 5, Edges: 7, UpdatedAt: newer},
		{ID: b, Name: "old", Status: "negative-cycle", Nodes: 3, Edges: 3, UpdatedAt: older},
	}, got)
}

func TestSQLDelete(t *testing.T) {
	s, mock := newMock(t, SQLite)
	id := NewSessionID()
	mock.ExpectExec(q("DELETE FROM sessions WHERE id = ?")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("DELETE FROM sessions WHERE id = ?")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), id))
	require.ErrorIs(t, s.Delete(context.Background(), id), ErrNotFound)
}

func TestSQLSaveSurfacesDriverErrors(t *testing.T) {
	s, mock := newMock(t, SQLite)
	mock.ExpectExec(q("INSERT INTO sessions")).WillReturnError(sql.ErrConnDone)

	sess := &Session{Name: "x", State: demoState(t)}
	err := s.Save(context.Background(), sess)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.Empty(t, sess.ID, "failed save must not hand out an id")
	require.True(t, sess.UpdatedAt.IsZero())
}

// Package store is the persistence collaborator: it saves and restores named
// sessions, each holding one bellmanford.State.
//
// Backends:
//
//   - FileStore: one JSON document per session in a directory.
//   - SQLStore: database/sql with versioned migrations; NewLibSQLStore opens
//     an embedded libSQL file and NewMySQLStore a MySQL server.
//   - RedisStore: a string key per session and a sorted-set index.
//
// Open selects a backend from a Config.
//
// States are always written and read through the snapshot codec, so a
// tampered or truncated row fails to load with bellmanford.ErrMalformedState
// instead of producing an inconsistent engine state.
package store

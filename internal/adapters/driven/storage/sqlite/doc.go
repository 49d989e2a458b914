// Package sqlite is the SQLite-backed implementation of driven.RunStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Each completed
// analysis run is stored as one row holding the run summary; the import
// graph itself is never persisted and is rebuilt on every invocation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory as pairs of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.archlint/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite

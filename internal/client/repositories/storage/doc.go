// Package storage provides the client's durable key-value store.
//
// # Overview
//
// The store keeps string values under string keys, the same contract a
// browser's localStorage offers: Get, Set, Remove. Callers encode their
// own values (the session store writes JSON). A SQLite-backed
// implementation (SQLiteRepository) persists data in the `storage` table
// created by the embedded goose migrations (see internal/client/migrations).
//
// # Semantics
//
//   - Get on a missing key returns ("", false, nil).
//   - Set overwrites (upsert).
//   - Remove is idempotent.
//   - CompareAndSwap replaces a value only if it still equals the expected
//     one, inside a single transaction.
//
// Typical Usage
//
//	repo := storage.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "yukam-theme", "dark")
//	v, ok, _ := repo.Get(ctx, "yukam-theme")
//	_ = repo.Remove(ctx, "yukam-theme")
package storage

// Package users provides the persistence layer for the clinic user registry.
//
// # Overview
//
// The package defines a Repository interface over UserRecord models (see
// internal/models) and a SQLite-backed implementation (SQLiteRepository)
// persisting through a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Data Model
//
// Each user row carries the immutable ledger key, name, enumerated status,
// optional contact fields, a soft-constrained role, and the monotonically
// non-decreasing lifetime hours total. Rows are never deleted individually;
// deactivation only flips the status flag, and DeleteAll exists solely for
// the full database reset.
//
// # Filtering
//
// Find accepts a structured Filter compiled to a parameterized LIKE
// conjunction. Filter values travel as SQL arguments, never as query text,
// which replaces the ad hoc filter-string concatenation of the original
// application.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	_ = repo.Insert(ctx, user)
//	active := models.StatusActive
//	list, _ := repo.Find(ctx, users.Filter{Status: &active, Role: "Volunteer"})
package users

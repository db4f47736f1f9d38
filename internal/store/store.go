// Package store opens the local attendance database, applies schema
// migrations, and owns whole-database operations: the explicit save
// checkpoint, the full irreversible reset, and orderly close.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clinicops/timekeeper/internal/dbx"
	"github.com/clinicops/timekeeper/internal/migrations"
	"github.com/clinicops/timekeeper/internal/repositories/ledgers"
	"github.com/clinicops/timekeeper/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

// Store bundles the open database handle with the repositories built on it.
// The file is opened exclusively by one process instance for its lifetime.
type Store struct {
	db      *sql.DB
	Users   users.Repository
	Ledgers ledgers.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open connects to the SQLite database at dsn, applies migrations, and
// returns a Store with repositories bound to the shared handle.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single local writer; serialize access instead of juggling SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{
		db:      db,
		Users:   users.NewSQLiteRepository(db),
		Ledgers: ledgers.NewSQLiteRepository(db),
	}, nil
}

// DB exposes the underlying handle for transactional service operations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Save is the explicit commit point of the operator workflow. Every mutation
// already commits its own transaction, so Save only forces a WAL checkpoint;
// calling it twice with no intervening mutation changes nothing.
func (s *Store) Save(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("failed to checkpoint database: %w", err)
	}
	return nil
}

// ResetAll destroys every per-user ledger and the whole registry in one
// transaction. Hard and non-recoverable; confirmation is the caller's job.
func (s *Store) ResetAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := ledgers.NewSQLiteRepository(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return users.NewSQLiteRepository(tx).DeleteAll(ctx)
	})
}

// Close checkpoints and closes the database, mirroring the original
// application's commit-and-close on shutdown.
func (s *Store) Close(ctx context.Context) error {
	if err := s.Save(ctx); err != nil {
		_ = s.db.Close()
		return err
	}
	return s.db.Close()
}

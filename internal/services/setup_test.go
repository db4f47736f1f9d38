package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/clinicops/timekeeper/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  key            TEXT PRIMARY KEY,
  last_name      TEXT NOT NULL,
  first_name     TEXT NOT NULL,
  status         INTEGER NOT NULL DEFAULT 1,
  email          TEXT NOT NULL DEFAULT '',
  role           TEXT NOT NULL,
  phone          TEXT NOT NULL DEFAULT '',
  lifetime_total REAL NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	_, err = db.Exec(`
CREATE TABLE ledger_entries (
  user_key  TEXT NOT NULL REFERENCES users(key),
  seq       INTEGER NOT NULL,
  work_date TEXT NOT NULL,
  in_time   TEXT NOT NULL,
  out_time  TEXT NOT NULL,
  PRIMARY KEY (user_key, seq)
);
`)
	require.NoError(t, err)

	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

package ledgers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/clinicops/timekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE ledger_entries (
  user_key  TEXT NOT NULL,
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

func TestAppend_SeqIncrementsPerLedger(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e1 := &models.LedgerEntry{UserKey: "Jane_Doe_00", WorkDate: "2026-08-27", InTime: "09:00", OutTime: "17:15"}
	require.NoError(t, r.Append(ctx, e1))
	assert.Equal(t, int64(1), e1.Seq)

	e2 := &models.LedgerEntry{UserKey: "Jane_Doe_00", WorkDate: "2026-08-28", InTime: "08:00", OutTime: "12:00"}
	require.NoError(t, r.Append(ctx, e2))
	assert.Equal(t, int64(2), e2.Seq)

	// a different ledger starts its own sequence
	e3 := &models.LedgerEntry{UserKey: "Mark_Roe_00", WorkDate: "2026-08-28", InTime: "10:00", OutTime: "14:30"}
	require.NoError(t, r.Append(ctx, e3))
	assert.Equal(t, int64(1), e3.Seq)
}

func TestListByUser_SequenceOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, e := range []*models.LedgerEntry{
		{UserKey: "Jane_Doe_00", WorkDate: "2026-08-25", InTime: "09:00", OutTime: "17:00"},
		{UserKey: "Jane_Doe_00", WorkDate: "2026-08-26", InTime: "09:00", OutTime: "13:30"},
		{UserKey: "Mark_Roe_00", WorkDate: "2026-08-26", InTime: "12:00", OutTime: "18:00"},
	} {
		require.NoError(t, r.Append(ctx, e))
	}

	got, err := r.ListByUser(ctx, "Jane_Doe_00")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Seq)
	assert.Equal(t, "2026-08-25", got[0].WorkDate)
	assert.Equal(t, int64(2), got[1].Seq)
	assert.Equal(t, "13:30", got[1].OutTime)

	got, err = r.ListByUser(ctx, "Nobody_Here_00")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCountByUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n, err := r.CountByUser(ctx, "Jane_Doe_00")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, r.Append(ctx, &models.LedgerEntry{
		UserKey: "Jane_Doe_00", WorkDate: "2026-08-28", InTime: "09:00", OutTime: "10:00",
	}))

	n, err = r.CountByUser(ctx, "Jane_Doe_00")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &models.LedgerEntry{
		UserKey: "Jane_Doe_00", WorkDate: "2026-08-28", InTime: "09:00", OutTime: "10:00",
	}))

	require.NoError(t, r.DeleteAll(ctx))

	n, err := r.CountByUser(ctx, "Jane_Doe_00")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

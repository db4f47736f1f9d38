package ledgers

import (
	"context"
	"fmt"

	"github.com/clinicops/timekeeper/internal/dbx"
	"github.com/clinicops/timekeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Append inserts the entry with seq = MAX(seq)+1 for that ledger, computed
// and assigned in a single statement. Run inside a transaction together with
// the lifetime-total update (see services.Attendance).
func (r *SQLiteRepository) Append(ctx context.Context, e *models.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (user_key, seq, work_date, in_time, out_time)
			VALUES (?, COALESCE((SELECT MAX(seq) FROM ledger_entries WHERE user_key = ?), 0) + 1, ?, ?, ?)
			RETURNING seq`
	row := r.db.QueryRowContext(ctx, query, e.UserKey, e.UserKey, e.WorkDate, e.InTime, e.OutTime)
	if err := row.Scan(&e.Seq); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, key string) ([]models.LedgerEntry, error) {
	query := `SELECT user_key, seq, work_date, in_time, out_time
			FROM ledger_entries WHERE user_key = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to select ledger entries: %w", err)
	}
	defer rows.Close()

	var result []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.UserKey, &e.Seq, &e.WorkDate, &e.InTime, &e.OutTime); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) CountByUser(ctx context.Context, key string) (int, error) {
	var n int
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ledger_entries WHERE user_key = ?`, key)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries`); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}
	return nil
}

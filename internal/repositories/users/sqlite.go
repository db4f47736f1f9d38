package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/clinicops/timekeeper/internal/common"
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

func (r *SQLiteRepository) Insert(ctx context.Context, u *models.UserRecord) error {
	query := `INSERT INTO users (key, last_name, first_name, status, email, role, phone, lifetime_total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.Key, u.LastName, u.FirstName, u.Status, u.Email, u.Role, u.Phone, u.LifetimeTotal)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByKey(ctx context.Context, key string) (*models.UserRecord, error) {
	query := `SELECT key, last_name, first_name, status, email, role, phone, lifetime_total
			FROM users WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	u := &models.UserRecord{}
	err := row.Scan(&u.Key, &u.LastName, &u.FirstName, &u.Status, &u.Email, &u.Role, &u.Phone, &u.LifetimeTotal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

// KeysByName lists keys for the exact name pair in descending order, so the
// highest allocated suffix surfaces first.
func (r *SQLiteRepository) KeysByName(ctx context.Context, first, last string) ([]string, error) {
	query := `SELECT key FROM users WHERE first_name = ? AND last_name = ? ORDER BY key DESC`
	rows, err := r.db.QueryContext(ctx, query, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to select keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *SQLiteRepository) ListRoles(ctx context.Context, status models.Status) ([]string, error) {
	query := `SELECT DISTINCT role FROM users WHERE status = ? ORDER BY role`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to select roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

// Find compiles the filter to a parameterized LIKE conjunction. Field values
// never reach the SQL text, only the argument list.
func (r *SQLiteRepository) Find(ctx context.Context, f Filter) ([]models.UserRecord, error) {
	var conds []string
	var args []any

	if f.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, *f.Status)
	}
	for _, c := range []struct {
		column  string
		pattern string
	}{
		{"first_name", f.First},
		{"last_name", f.Last},
		{"email", f.Email},
		{"role", f.Role},
		{"phone", f.Phone},
	} {
		if c.pattern != "" {
			conds = append(conds, c.column+" LIKE ?")
			args = append(args, c.pattern)
		}
	}

	query := `SELECT key, last_name, first_name, status, email, role, phone, lifetime_total FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY key DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.UserRecord
	for rows.Next() {
		var u models.UserRecord
		if err := rows.Scan(&u.Key, &u.LastName, &u.FirstName, &u.Status, &u.Email, &u.Role, &u.Phone, &u.LifetimeTotal); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SetStatus(ctx context.Context, key string, status models.Status) error {
	query := `UPDATE users SET status = ? WHERE key = ?`
	res, err := r.db.ExecContext(ctx, query, status, key)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) AddToLifetimeTotal(ctx context.Context, key string, hours float64) error {
	query := `UPDATE users SET lifetime_total = lifetime_total + ? WHERE key = ?`
	res, err := r.db.ExecContext(ctx, query, hours, key)
	if err != nil {
		return fmt.Errorf("failed to update lifetime total: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) ListForReport(ctx context.Context) ([]models.UserRecord, error) {
	query := `SELECT key, last_name, first_name, status, email, role, phone, lifetime_total
			FROM users ORDER BY last_name DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.UserRecord
	for rows.Next() {
		var u models.UserRecord
		if err := rows.Scan(&u.Key, &u.LastName, &u.FirstName, &u.Status, &u.Email, &u.Role, &u.Phone, &u.LifetimeTotal); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}

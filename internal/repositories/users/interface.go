package users

import (
	"context"

	"github.com/clinicops/timekeeper/internal/models"
)

// Filter is a structured conjunction of field constraints for user lookup.
// The zero value matches every user. Each non-empty field is compiled to a
// parameterized SQL LIKE constraint, so a plain string means case-insensitive
// equality and callers may embed % wildcards for contains-matching. Absent
// fields are omitted from the query entirely, never matched against "".
type Filter struct {
	Status *models.Status
	First  string
	Last   string
	Email  string
	Role   string
	Phone  string
}

// Repository describes the user-registry storage operations.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Insert adds a new user record. The key must already be allocated
	// and unique for all time.
	Insert(ctx context.Context, u *models.UserRecord) error

	// GetByKey returns a single user or common.ErrNotFound.
	GetByKey(ctx context.Context, key string) (*models.UserRecord, error)

	// KeysByName returns all ledger keys allocated for the exact
	// (first, last) pair, sorted descending so the highest two-digit
	// suffix comes first.
	KeysByName(ctx context.Context, first, last string) ([]string, error)

	// ListRoles returns the distinct roles among users of the given status.
	ListRoles(ctx context.Context, status models.Status) ([]string, error)

	// Find returns users matching the filter, ordered by key descending.
	Find(ctx context.Context, f Filter) ([]models.UserRecord, error)

	// SetStatus flips a user's status; common.ErrNotFound on unknown key.
	SetStatus(ctx context.Context, key string, status models.Status) error

	// AddToLifetimeTotal increments a user's cumulative hours;
	// common.ErrNotFound on unknown key.
	AddToLifetimeTotal(ctx context.Context, key string, hours float64) error

	// ListForReport returns every user, active and inactive, ordered by
	// last name descending (the export row order).
	ListForReport(ctx context.Context) ([]models.UserRecord, error)

	// DeleteAll wipes the registry. Used only by the full reset.
	DeleteAll(ctx context.Context) error
}

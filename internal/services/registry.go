// Package services contains the application services of the time keeper:
// user registry and identity allocation, attendance check-in, and the hours
// report. Services own transaction boundaries; repositories stay dumb.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/clinicops/timekeeper/internal/common"
	"github.com/clinicops/timekeeper/internal/dbx"
	"github.com/clinicops/timekeeper/internal/logging"
	"github.com/clinicops/timekeeper/internal/models"
	"github.com/clinicops/timekeeper/internal/repositories/users"
	"github.com/google/uuid"
)

// Registry manages the catalog of registered people: registration with
// unique ledger-key allocation, role listing, filtered lookup, and
// activation state.
type Registry interface {
	// Register validates and sanitizes the profile fields, allocates a
	// unique ledger key, and inserts the user as active with a zero
	// lifetime total. First, last, and role are required.
	Register(ctx context.Context, first, last, role, email, phone string) (string, error)

	// ListRoles returns the distinct roles among users of the given status.
	ListRoles(ctx context.Context, status models.Status) ([]string, error)

	// FindUsers returns users matching the structured filter.
	FindUsers(ctx context.Context, f users.Filter) ([]models.UserRecord, error)

	// SetStatus activates or deactivates a user. The ledger and lifetime
	// total are untouched either way.
	SetStatus(ctx context.Context, key string, status models.Status) error
}

type registry struct {
	db     *sql.DB
	logger logging.Logger
}

// NewRegistry constructs a Registry bound to the attendance database.
func NewRegistry(db *sql.DB, logger logging.Logger) Registry {
	return &registry{db: db, logger: logger}
}

// CleanInput strips single and double quote characters from free-text input,
// preserving the original application's upstream sanitization. Filters and
// schema stay parameterized regardless; this keeps stored values tidy for
// operators pasting quoted text.
func CleanInput(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\'' || r == '"' {
			return ' '
		}
		return r
	}, s))
}

// allocateKey derives the next unique ledger key for a name pair:
// "First_Last_NN" where NN is one past the highest existing suffix, or "00"
// for the first registration. Pure lookup + compute; the caller writes.
func allocateKey(ctx context.Context, repo users.Repository, first, last string) (string, error) {
	keys, err := repo.KeysByName(ctx, first, last)
	if err != nil {
		return "", fmt.Errorf("key lookup failed: %w", err)
	}

	if len(keys) == 0 {
		return fmt.Sprintf("%s_%s_00", first, last), nil
	}

	// keys are sorted descending, so the first one carries the highest suffix
	top := keys[0]
	idx := strings.LastIndex(top, "_")
	suffix, err := strconv.Atoi(top[idx+1:])
	if err != nil {
		return "", fmt.Errorf("malformed ledger key %q: %w", top, err)
	}

	suffix++
	if suffix > 99 {
		return "", fmt.Errorf("%w: %s %s", common.ErrSuffixOverflow, first, last)
	}

	return fmt.Sprintf("%s_%s_%02d", first, last, suffix), nil
}

func (r *registry) Register(ctx context.Context, first, last, role, email, phone string) (string, error) {
	first = CleanInput(first)
	last = CleanInput(last)
	email = CleanInput(email)
	phone = CleanInput(phone)
	role = strings.TrimSpace(role)

	if first == "" || last == "" || role == "" {
		return "", fmt.Errorf("%w: first name, last name and role are required", common.ErrRequiredField)
	}

	var key string
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		var err error
		key, err = allocateKey(ctx, repo, first, last)
		if err != nil {
			return err
		}

		return repo.Insert(ctx, &models.UserRecord{
			Key:       key,
			FirstName: first,
			LastName:  last,
			Status:    models.StatusActive,
			Email:     email,
			Role:      role,
			Phone:     phone,
		})
	})
	if err != nil {
		return "", err
	}

	r.logger.Info(ctx, "user registered",
		"op", uuid.NewString(), "key", key, "role", role)
	return key, nil
}

func (r *registry) ListRoles(ctx context.Context, status models.Status) ([]string, error) {
	return users.NewSQLiteRepository(r.db).ListRoles(ctx, status)
}

func (r *registry) FindUsers(ctx context.Context, f users.Filter) ([]models.UserRecord, error) {
	return users.NewSQLiteRepository(r.db).Find(ctx, f)
}

func (r *registry) SetStatus(ctx context.Context, key string, status models.Status) error {
	if err := users.NewSQLiteRepository(r.db).SetStatus(ctx, key, status); err != nil {
		return err
	}
	r.logger.Info(ctx, "user status changed",
		"op", uuid.NewString(), "key", key, "status", int(status))
	return nil
}

package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clinicops/timekeeper/internal/common"
	"github.com/clinicops/timekeeper/internal/dbx"
	"github.com/clinicops/timekeeper/internal/logging"
	"github.com/clinicops/timekeeper/internal/models"
	"github.com/clinicops/timekeeper/internal/repositories/ledgers"
	"github.com/clinicops/timekeeper/internal/repositories/users"
	"github.com/clinicops/timekeeper/internal/timex"
	"github.com/google/uuid"
)

// Attendance records work sessions against user ledgers.
type Attendance interface {
	// CheckIn validates the shift, appends a ledger entry, and adds the
	// computed fractional hours to the user's lifetime total — both writes
	// in one transaction. Returns the hours logged.
	//
	// workDate is an ISO calendar date; inTime and outTime are "HH:MM"
	// clock values on that date with outTime strictly later.
	CheckIn(ctx context.Context, key, workDate, inTime, outTime string) (float64, error)

	// ChangeStatus activates or deactivates a user; no ledger effect.
	ChangeStatus(ctx context.Context, key string, status models.Status) error
}

type attendance struct {
	db       *sql.DB
	registry Registry
	logger   logging.Logger
}

// NewAttendance constructs an Attendance service sharing the registry's
// database handle.
func NewAttendance(db *sql.DB, registry Registry, logger logging.Logger) Attendance {
	return &attendance{db: db, registry: registry, logger: logger}
}

func (a *attendance) CheckIn(ctx context.Context, key, workDate, inTime, outTime string) (float64, error) {
	in, err := timex.ParseClock(inTime)
	if err != nil {
		return 0, err
	}
	out, err := timex.ParseClock(outTime)
	if err != nil {
		return 0, err
	}
	if !out.After(in) {
		return 0, common.ErrCheckOutBeforeCheckIn
	}
	if _, err := timex.ParseDate(workDate); err != nil {
		return 0, fmt.Errorf("%w: bad work date %q", common.ErrValidation, workDate)
	}

	hours := timex.Hours(in, out)

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := users.NewSQLiteRepository(tx)
		if _, err := userRepo.GetByKey(ctx, key); err != nil {
			return err
		}

		entry := &models.LedgerEntry{
			UserKey:  key,
			WorkDate: workDate,
			InTime:   in.String(),
			OutTime:  out.String(),
		}
		if err := ledgers.NewSQLiteRepository(tx).Append(ctx, entry); err != nil {
			return err
		}

		return userRepo.AddToLifetimeTotal(ctx, key, hours)
	})
	if err != nil {
		return 0, err
	}

	a.logger.Info(ctx, "checked in",
		"op", uuid.NewString(), "key", key, "date", workDate, "hours", hours)
	return hours, nil
}

func (a *attendance) ChangeStatus(ctx context.Context, key string, status models.Status) error {
	return a.registry.SetStatus(ctx, key, status)
}

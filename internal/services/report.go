package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/clinicops/timekeeper/internal/logging"
	"github.com/clinicops/timekeeper/internal/repositories/ledgers"
	"github.com/clinicops/timekeeper/internal/repositories/users"
	"github.com/clinicops/timekeeper/internal/timex"
)

// Report walks the registry and every ledger to produce per-user and overall
// weekly / monthly / all-time hour totals.
type Report interface {
	// Export writes the tab-separated hours report to w: a header row, one
	// row per user (active and inactive alike, last name descending), and a
	// trailing overall-totals block.
	Export(ctx context.Context, w io.Writer) error
}

type report struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// NewReport constructs a Report service. now supplies "today" for the rolling
// windows; pass nil for the wall clock.
func NewReport(db *sql.DB, logger logging.Logger, now func() time.Time) Report {
	if now == nil {
		now = time.Now
	}
	return &report{db: db, logger: logger, now: now}
}

func (r *report) Export(ctx context.Context, w io.Writer) error {
	today := r.now()

	// ISO date strings compare lexically in calendar order, so the window
	// checks stay plain string comparisons. Both windows are inclusive and
	// overlap: a shift inside 7 days also counts in the 30-day bucket.
	oneWeek := timex.FormatDate(today.AddDate(0, 0, -7))
	oneMonth := timex.FormatDate(today.AddDate(0, 0, -30))

	userRepo := users.NewSQLiteRepository(r.db)
	ledgerRepo := ledgers.NewSQLiteRepository(r.db)

	list, err := userRepo.ListForReport(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if _, err := fmt.Fprint(w, "Last Name\tFirst Name\tWeekly Total\tMonthly Total\tTotal Hours\n"); err != nil {
		return err
	}

	var totalWeek, totalMonth, totalTime float64

	for _, u := range list {
		entries, err := ledgerRepo.ListByUser(ctx, u.Key)
		if err != nil {
			return fmt.Errorf("failed to read ledger for %s: %w", u.Key, err)
		}

		var week, month, all float64
		for _, e := range entries {
			hours, err := timex.HoursBetween(e.InTime, e.OutTime)
			if err != nil {
				return fmt.Errorf("bad ledger entry %s/%d: %w", e.UserKey, e.Seq, err)
			}

			all += hours
			if e.WorkDate >= oneWeek {
				week += hours
			}
			if e.WorkDate >= oneMonth {
				month += hours
			}
		}

		totalWeek += week
		totalMonth += month
		totalTime += all

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			u.LastName, u.FirstName,
			timex.FormatHours(week), timex.FormatHours(month), timex.FormatHours(all)); err != nil {
			return err
		}
	}

	// casing of "Monthly total" matches the original export format
	if _, err := fmt.Fprintf(w, "\nWeekly Total\t%s\nMonthly total\t%s\nTotal\t%s",
		timex.FormatHours(totalWeek), timex.FormatHours(totalMonth), timex.FormatHours(totalTime)); err != nil {
		return err
	}

	r.logger.Info(ctx, "report exported", "users", len(list))
	return nil
}

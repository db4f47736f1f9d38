package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicops/timekeeper/internal/models"
	"github.com/clinicops/timekeeper/internal/repositories/users"
	"github.com/clinicops/timekeeper/internal/timex"
)

// checkIn walks the operator through the main workflow: pick a role, pick an
// active user, enter in/out clock times. The work date is always today, as
// in the original application.
func (a *App) checkIn(ctx context.Context) {
	role, err := GetSimpleText(a.reader, "Role", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	active := models.StatusActive
	f := users.Filter{Status: &active}
	if role != "" {
		f.Role = role
	}

	list, err := a.registry.FindUsers(ctx, f)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	u, err := SelectUser(a.reader, list, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if u == nil {
		return
	}

	inTime, err := GetSimpleText(a.reader, "Check in time (HH:MM)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	outTime, err := GetSimpleText(a.reader, "Check out time (HH:MM)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	hours, err := a.attendance.CheckIn(ctx, u.Key, timex.FormatDate(time.Now()), inTime, outTime)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Checked In %s (%s hours)\n", u.Label(), timex.FormatHours(hours))
}

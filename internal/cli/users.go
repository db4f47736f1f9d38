package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/clinicops/timekeeper/internal/models"
	"github.com/clinicops/timekeeper/internal/repositories/users"
	"github.com/clinicops/timekeeper/internal/services"
)

func (a *App) listRoles(ctx context.Context) {
	roles, err := a.registry.ListRoles(ctx, models.StatusActive)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(roles) == 0 {
		fmt.Fprintln(a.out, "No active users yet.")
		return
	}
	for _, role := range roles {
		fmt.Fprintln(a.out, role)
	}
}

func (a *App) listUsers(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: users <role>")
		return
	}
	role := strings.Join(args, " ")

	active := models.StatusActive
	list, err := a.registry.FindUsers(ctx, users.Filter{Status: &active, Role: role})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No active users for role", role)
		return
	}
	for _, u := range list {
		fmt.Fprintln(a.out, u.Label())
	}
}

func (a *App) addUser(ctx context.Context) {
	first, err := GetSimpleText(a.reader, "First Name (Required)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	last, err := GetSimpleText(a.reader, "Last Name (Required)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	role, err := GetSimpleText(a.reader, "Role (Required): "+strings.Join(models.Roles, ", "), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	phone, err := GetSimpleText(a.reader, "Phone Number", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	key, err := a.registry.Register(ctx, first, last, role, email, phone)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Added user", key)
}

// changeStatus drives the activate/deactivate dialog: an optional filter
// over the opposite-status users, a numbered pick, then the status flip.
// The filtered result set is passed through explicitly; nothing is kept
// between commands.
func (a *App) changeStatus(ctx context.Context, activate bool) {
	target := models.StatusInactive
	searched := models.StatusActive
	verb := "Deactivated"
	if activate {
		target = models.StatusActive
		searched = models.StatusInactive
		verb = "Activated"
	}

	f := users.Filter{Status: &searched}
	var err error
	if f.First, err = GetSimpleText(a.reader, "First Name (filter, optional)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if f.Last, err = GetSimpleText(a.reader, "Last Name (filter, optional)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if f.Role, err = GetSimpleText(a.reader, "Role (filter, optional)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	f.First = services.CleanInput(f.First)
	f.Last = services.CleanInput(f.Last)

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

	if err := a.attendance.ChangeStatus(ctx, u.Key, target); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, verb, u.Label())
}

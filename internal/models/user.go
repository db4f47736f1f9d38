// Package models defines the persisted data structures of the attendance
// ledger: registered users and their session-log entries.
package models

import "fmt"

// Status marks whether a user currently shows up for check-in.
// Deactivation never touches the user's ledger or lifetime total.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

// Roles offered by the CLI when registering a user. The store treats role as
// a soft constraint: any non-empty value is accepted.
var Roles = []string{"OMS", "Staff", "Public Health Services", "Volunteer"}

// UserRecord is one registered person in the clinic registry.
//
// Key is the unique ledger key ("First_Last_NN"), immutable once assigned
// and never reused, even after deactivation. LifetimeTotal is cumulative
// fractional hours across all logged sessions and only ever grows.
type UserRecord struct {
	Key           string
	FirstName     string
	LastName      string
	Status        Status
	Email         string
	Role          string
	Phone         string
	LifetimeTotal float64
}

// Label renders the display name used in selection lists:
// "Last, First (email)" or "Last, First" when no email is recorded.
func (u UserRecord) Label() string {
	if u.Email != "" && u.Email != "NA" {
		return fmt.Sprintf("%s, %s (%s)", u.LastName, u.FirstName, u.Email)
	}
	return fmt.Sprintf("%s, %s", u.LastName, u.FirstName)
}

package models

// LedgerEntry is one logged work session. Entries are append-only: never
// mutated, never deleted outside a full database reset.
//
// Seq increments per ledger starting at 1. WorkDate is an ISO calendar date
// ("2006-01-02"); InTime and OutTime are clock-of-day strings ("HH:MM") on
// that same day, with OutTime strictly later than InTime.
type LedgerEntry struct {
	UserKey  string
	Seq      int64
	WorkDate string
	InTime   string
	OutTime  string
}

package ledgers

import (
	"context"

	"github.com/clinicops/timekeeper/internal/models"
)

// Repository describes storage operations on per-user session logs.
// Every user's ledger lives in one shared table keyed by ledger key; a
// logically separate log per user, without the original's table-per-user
// schema generation.
type Repository interface {
	// Append adds a session entry to the user's ledger, assigning the next
	// per-ledger sequence number. The assigned value is written back to
	// e.Seq. Entries are append-only.
	Append(ctx context.Context, e *models.LedgerEntry) error

	// ListByUser returns a user's full ledger in sequence order.
	ListByUser(ctx context.Context, key string) ([]models.LedgerEntry, error)

	// CountByUser returns the number of entries in a user's ledger.
	CountByUser(ctx context.Context, key string) (int, error)

	// DeleteAll wipes every ledger. Used only by the full reset.
	DeleteAll(ctx context.Context) error
}

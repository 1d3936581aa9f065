package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsConflictViolation reports whether err is a postgres unique or exclusion
// violation. The partial unique index on (stylist_id, scheduled_at) trips
// this when two writers race for the same slot.
func IsConflictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}

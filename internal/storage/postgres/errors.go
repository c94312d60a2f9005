package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"sportsync/internal/domain"
)

const uniqueViolation = "23505"

// translateErr maps driver errors onto the domain sentinels processors
// branch on.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicate
	}
	return err
}

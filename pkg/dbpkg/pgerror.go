package dbpkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PGError holds driver independent details of a postgres error.
type PGError struct {
	Code       string
	Constraint string
	Message    string
}

// AsPGError extracts postgres error details from either lib/pq or pgx errors.
func AsPGError(err error) (PGError, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return PGError{
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Message:    pqErr.Message,
		}, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return PGError{
			Code:       pgErr.Code,
			Constraint: pgErr.ConstraintName,
			Message:    pgErr.Message,
		}, true
	}

	return PGError{}, false
}

package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes translated into domain errors.
const (
	uniqueViolation           = "23505"
	checkViolation            = "23514"
	invalidTextRepresentation = "22P02"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool {
	return isPgError(err, uniqueViolation)
}

func isCheckViolation(err error) bool {
	return isPgError(err, checkViolation)
}

// isMalformedID reports whether a lookup failed because the key is not a
// valid UUID. Such a key can never match a row.
func isMalformedID(err error) bool {
	return isPgError(err, invalidTextRepresentation)
}

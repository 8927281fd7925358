package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateKey is returned when an insert violates a unique
// constraint (username, email or either token column). The service
// layer translates it into its caller-facing taxonomy; every other
// database error propagates untouched as an infrastructure failure.
var ErrDuplicateKey = errors.New("duplicate key value violates a unique constraint")

const pqUniqueViolation = "23505"

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicateKey
	}
	return err
}

package db

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the ledger reacts to.
const (
	codeUniqueViolation  = "23505"
	codeLockNotAvailable = "55P03"
)

// IsUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// IsLockNotAvailable reports whether err was raised because a row or advisory
// lock could not be taken within lock_timeout.
func IsLockNotAvailable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeLockNotAvailable
}

package auth

import (
	"errors"

	"github.com/lib/pq"
)

const sqlStateUniqueViolation = "23505"

// isEmailAlreadyExistsError recognizes both the service-level sentinel and
// the race where two concurrent registrations pass the pre-check and one
// insert trips the users_email_key constraint.
func isEmailAlreadyExistsError(err error) bool {
	if errors.Is(err, ErrEmailAlreadyExists) {
		return true
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != sqlStateUniqueViolation {
		return false
	}
	return pqErr.Constraint == "users_email_key" ||
		(pqErr.Table == "users" && pqErr.Column == "email")
}

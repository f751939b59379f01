package provider

import (
	"errors"

	"github.com/lib/pq"
)

const sqlStateUniqueViolation = "23505"

// mapInsertError converts unique-violation errors from the artists/studios
// tables into domain sentinels. The one-profile-per-user and slug invariants
// are enforced by constraints, so two concurrent creates racing past the
// service-level pre-check still resolve to a single row.
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if string(pqErr.Code) != sqlStateUniqueViolation {
		return err
	}

	switch pqErr.Constraint {
	case "artists_user_id_key", "studios_user_id_key":
		return ErrProfileAlreadyExists
	case "artists_slug_key", "studios_slug_key":
		return ErrSlugTaken
	}
	return err
}

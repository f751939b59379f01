package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking not found")
	ErrProviderRequired  = errors.New("exactly one of artist_id or studio_id is required")
	ErrProviderNotFound  = errors.New("provider not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrNotOwner          = errors.New("caller does not own the booked provider profile")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidRole       = errors.New("role must be client, artist or studio")
)

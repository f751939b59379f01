package catalog

import "errors"

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrPortfolioNotFound = errors.New("portfolio item not found")
	ErrProviderNotFound  = errors.New("provider not found")
	ErrProviderRequired  = errors.New("exactly one of artist_id or studio_id is required")
	ErrNotOwner          = errors.New("caller does not own this provider profile")
)

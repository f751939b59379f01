package catalog

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

// Service is one row of a provider's service menu (matches services table).
// Price is in minor currency units.
type Service struct {
	ID              uuid.UUID      `db:"id"`
	ArtistID        *uuid.UUID     `db:"artist_id"`
	StudioID        *uuid.UUID     `db:"studio_id"`
	Name            string         `db:"name"`
	Description     sql.NullString `db:"description"`
	Price           int64          `db:"price"`
	DurationMinutes sql.NullInt32  `db:"duration_minutes"`
	CreatedAt       time.Time      `db:"created_at"`
}

// Ref returns the provider reference of the row
func (s *Service) Ref() (provider.Ref, bool) {
	return provider.RefFromIDs(s.ArtistID, s.StudioID)
}

// Portfolio is one portfolio image of a provider (matches portfolios table)
type Portfolio struct {
	ID          uuid.UUID      `db:"id"`
	ArtistID    *uuid.UUID     `db:"artist_id"`
	StudioID    *uuid.UUID     `db:"studio_id"`
	ImageURL    string         `db:"image_url"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Ref returns the provider reference of the row
func (p *Portfolio) Ref() (provider.Ref, bool) {
	return provider.RefFromIDs(p.ArtistID, p.StudioID)
}

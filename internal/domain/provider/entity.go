package provider

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Kind discriminates the two provider profile types
type Kind string

const (
	KindArtist Kind = "artist"
	KindStudio Kind = "studio"
)

// Ref is a tagged reference to exactly one provider profile.
// Child resources (services, portfolio items, bookings) carry two nullable
// foreign keys in the database; application code works with Ref so the
// "which one is set" question is answered once, at the boundary.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

// ArtistRef builds a Ref to an artist profile
func ArtistRef(id uuid.UUID) Ref { return Ref{Kind: KindArtist, ID: id} }

// StudioRef builds a Ref to a studio profile
func StudioRef(id uuid.UUID) Ref { return Ref{Kind: KindStudio, ID: id} }

// RefFromIDs converts the two-nullable-columns wire shape into a Ref.
// Returns false unless exactly one id is set.
func RefFromIDs(artistID, studioID *uuid.UUID) (Ref, bool) {
	switch {
	case artistID != nil && studioID == nil:
		return ArtistRef(*artistID), true
	case studioID != nil && artistID == nil:
		return StudioRef(*studioID), true
	default:
		return Ref{}, false
	}
}

// Artist represents a makeup artist profile (matches artists table)
type Artist struct {
	ID           uuid.UUID      `db:"id"`
	UserID       uuid.UUID      `db:"user_id"`
	Name         string         `db:"name"`
	Bio          sql.NullString `db:"bio"`
	Slug         string         `db:"slug"`
	State        string         `db:"state"`
	City         string         `db:"city"`
	Instagram    sql.NullString `db:"instagram"`
	Whatsapp     sql.NullString `db:"whatsapp"`
	PriceRange   sql.NullString `db:"price_range"`
	ProfileImage sql.NullString `db:"profile_image"`
	Specialties  pq.StringArray `db:"specialties"`
	IsVerified   bool           `db:"is_verified"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Studio represents a makeup studio profile (matches studios table).
// Structurally parallel to Artist: address instead of social handles,
// a contact phone, a description instead of a bio.
type Studio struct {
	ID           uuid.UUID      `db:"id"`
	UserID       uuid.UUID      `db:"user_id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	Slug         string         `db:"slug"`
	State        string         `db:"state"`
	City         string         `db:"city"`
	Address      sql.NullString `db:"address"`
	Phone        sql.NullString `db:"phone"`
	PriceRange   sql.NullString `db:"price_range"`
	ProfileImage sql.NullString `db:"profile_image"`
	IsVerified   bool           `db:"is_verified"`
	CreatedAt    time.Time      `db:"created_at"`
}

package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

// Status is the booking lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the full lifecycle table. Declined, completed and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the lifecycle allows moving to next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Booking represents a client's booking request against a provider
// (matches bookings table)
type Booking struct {
	ID          uuid.UUID      `db:"id"`
	ArtistID    *uuid.UUID     `db:"artist_id"`
	StudioID    *uuid.UUID     `db:"studio_id"`
	ClientID    uuid.UUID      `db:"client_id"`
	ServiceID   *uuid.UUID     `db:"service_id"`
	BookingDate time.Time      `db:"booking_date"`
	BookingTime string         `db:"booking_time"`
	Location    sql.NullString `db:"location"`
	Notes       sql.NullString `db:"notes"`
	Status      Status         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

// ProviderRef returns the provider reference of the booking
func (b *Booking) ProviderRef() (provider.Ref, bool) {
	return provider.RefFromIDs(b.ArtistID, b.StudioID)
}

// ClientListItem is a booking row joined with its provider and service,
// as shown to the requesting client.
type ClientListItem struct {
	Booking
	ProviderName sql.NullString `db:"provider_name"`
	ProviderSlug sql.NullString `db:"provider_slug"`
	ServiceName  sql.NullString `db:"service_name"`
	ServicePrice sql.NullInt64  `db:"service_price"`
}

// ProviderListItem is a booking row joined with the requesting client and
// service, as shown to the booked provider.
type ProviderListItem struct {
	Booking
	ClientName   string         `db:"client_name"`
	ClientEmail  string         `db:"client_email"`
	ServiceName  sql.NullString `db:"service_name"`
	ServicePrice sql.NullInt64  `db:"service_price"`
}

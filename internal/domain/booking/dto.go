package booking

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest for POST /bookings. Exactly one of artist_id and
// studio_id must be set.
type CreateBookingRequest struct {
	ArtistID    *uuid.UUID `json:"artist_id" validate:"omitempty"`
	StudioID    *uuid.UUID `json:"studio_id" validate:"omitempty"`
	ServiceID   *uuid.UUID `json:"service_id" validate:"omitempty"`
	BookingDate string     `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime string     `json:"booking_time" validate:"required,hhmm"`
	Location    string     `json:"location" validate:"omitempty,max=500"`
	Notes       string     `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateStatusRequest for PATCH /bookings/{id}/status. Pending is the
// initial state and never a transition target.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed declined completed cancelled"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	ArtistID    *uuid.UUID `json:"artist_id,omitempty"`
	StudioID    *uuid.UUID `json:"studio_id,omitempty"`
	ClientID    uuid.UUID  `json:"client_id"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	BookingDate string     `json:"booking_date"`
	BookingTime string     `json:"booking_time"`
	Location    *string    `json:"location,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   string     `json:"created_at"`
}

// ClientBookingResponse is the client's list view with provider and
// service context joined in.
type ClientBookingResponse struct {
	BookingResponse
	ProviderName *string `json:"provider_name,omitempty"`
	ProviderSlug *string `json:"provider_slug,omitempty"`
	ServiceName  *string `json:"service_name,omitempty"`
	ServicePrice *int64  `json:"service_price,omitempty"`
}

// ProviderBookingResponse is the provider's list view with the requesting
// client and service context joined in.
type ProviderBookingResponse struct {
	BookingResponse
	ClientName   string  `json:"client_name"`
	ClientEmail  string  `json:"client_email"`
	ServiceName  *string `json:"service_name,omitempty"`
	ServicePrice *int64  `json:"service_price,omitempty"`
}

// BookingResponseFromEntity converts entity to response DTO
func BookingResponseFromEntity(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:          b.ID,
		ArtistID:    b.ArtistID,
		StudioID:    b.StudioID,
		ClientID:    b.ClientID,
		ServiceID:   b.ServiceID,
		BookingDate: b.BookingDate.Format(dateLayout),
		BookingTime: b.BookingTime,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
	if b.Location.Valid {
		resp.Location = &b.Location.String
	}
	if b.Notes.Valid {
		resp.Notes = &b.Notes.String
	}
	return resp
}

// ClientBookingResponseFromItem converts a joined client row to a DTO
func ClientBookingResponseFromItem(item *ClientListItem) *ClientBookingResponse {
	resp := &ClientBookingResponse{BookingResponse: *BookingResponseFromEntity(&item.Booking)}
	if item.ProviderName.Valid {
		resp.ProviderName = &item.ProviderName.String
	}
	if item.ProviderSlug.Valid {
		resp.ProviderSlug = &item.ProviderSlug.String
	}
	if item.ServiceName.Valid {
		resp.ServiceName = &item.ServiceName.String
	}
	if item.ServicePrice.Valid {
		resp.ServicePrice = &item.ServicePrice.Int64
	}
	return resp
}

// ProviderBookingResponseFromItem converts a joined provider row to a DTO
func ProviderBookingResponseFromItem(item *ProviderListItem) *ProviderBookingResponse {
	resp := &ProviderBookingResponse{
		BookingResponse: *BookingResponseFromEntity(&item.Booking),
		ClientName:      item.ClientName,
		ClientEmail:     item.ClientEmail,
	}
	if item.ServiceName.Valid {
		resp.ServiceName = &item.ServiceName.String
	}
	if item.ServicePrice.Valid {
		resp.ServicePrice = &item.ServicePrice.Int64
	}
	return resp
}

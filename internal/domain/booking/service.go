package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowbook/glowbook-api/internal/domain/catalog"
	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

// ProviderDirectory is the slice of the provider service the booking
// lifecycle needs: ownership resolution and the caller's own profiles.
type ProviderDirectory interface {
	ResolveOwner(ctx context.Context, ref provider.Ref) (uuid.UUID, error)
	GetMyArtist(ctx context.Context, userID uuid.UUID) (*provider.Artist, error)
	GetMyStudio(ctx context.Context, userID uuid.UUID) (*provider.Studio, error)
}

// ServiceCatalog resolves service menu rows referenced by bookings
type ServiceCatalog interface {
	GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

// Service handles booking lifecycle business logic
type Service struct {
	bookings  Repository
	providers ProviderDirectory
	services  ServiceCatalog
}

func NewService(bookings Repository, providers ProviderDirectory, services ServiceCatalog) *Service {
	return &Service{bookings: bookings, providers: providers, services: services}
}

// Create files a booking request against a provider. The row always
// starts pending, with the authenticated caller as client; neither is
// client-settable.
func (s *Service) Create(ctx context.Context, clientID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	ref, ok := provider.RefFromIDs(req.ArtistID, req.StudioID)
	if !ok {
		return nil, ErrProviderRequired
	}

	if _, err := s.providers.ResolveOwner(ctx, ref); err != nil {
		if errors.Is(err, provider.ErrArtistNotFound) || errors.Is(err, provider.ErrStudioNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("resolve booked provider: %w", err)
	}

	if req.ServiceID != nil {
		svc, err := s.services.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("resolve booked service: %w", err)
		}
		// a service from another provider's menu is treated as absent
		if svcRef, ok := svc.Ref(); !ok || svcRef != ref {
			return nil, ErrServiceNotFound
		}
	}

	date, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("parse booking date: %w", err)
	}

	b := &Booking{
		ID:          uuid.New(),
		ArtistID:    req.ArtistID,
		StudioID:    req.StudioID,
		ClientID:    clientID,
		ServiceID:   req.ServiceID,
		BookingDate: date,
		BookingTime: req.BookingTime,
		Location:    nullString(req.Location),
		Notes:       nullString(req.Notes),
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Transition moves a booking to the next lifecycle state. Only the owner
// of the booked provider profile may do this; the client cannot.
func (s *Service) Transition(ctx context.Context, callerID, bookingID uuid.UUID, next Status) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	ref, ok := b.ProviderRef()
	if !ok {
		return nil, fmt.Errorf("booking %s has no provider reference", bookingID)
	}
	owner, err := s.providers.ResolveOwner(ctx, ref)
	if err != nil {
		if errors.Is(err, provider.ErrArtistNotFound) || errors.Is(err, provider.ErrStudioNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("resolve booking owner: %w", err)
	}
	if owner != callerID {
		return nil, ErrNotOwner
	}

	if !b.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	b.Status = next
	return b, nil
}

// ListForClient returns the caller's bookings as requester
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]*ClientListItem, error) {
	return s.bookings.ListByClient(ctx, clientID)
}

// ListForProvider returns bookings against the caller's artist or studio
// profile, depending on role. A caller without a profile for the role has
// no bookings, so the list is simply empty.
func (s *Service) ListForProvider(ctx context.Context, userID uuid.UUID, kind provider.Kind) ([]*ProviderListItem, error) {
	var ref provider.Ref
	switch kind {
	case provider.KindArtist:
		artist, err := s.providers.GetMyArtist(ctx, userID)
		if err != nil {
			if errors.Is(err, provider.ErrArtistNotFound) {
				return []*ProviderListItem{}, nil
			}
			return nil, fmt.Errorf("resolve caller artist: %w", err)
		}
		ref = provider.ArtistRef(artist.ID)
	case provider.KindStudio:
		studio, err := s.providers.GetMyStudio(ctx, userID)
		if err != nil {
			if errors.Is(err, provider.ErrStudioNotFound) {
				return []*ProviderListItem{}, nil
			}
			return nil, fmt.Errorf("resolve caller studio: %w", err)
		}
		ref = provider.StudioRef(studio.ID)
	default:
		return nil, ErrInvalidRole
	}

	return s.bookings.ListByProvider(ctx, ref)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

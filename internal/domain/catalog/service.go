package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

// OwnerResolver answers who owns a provider profile. Satisfied by the
// provider service.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, ref provider.Ref) (uuid.UUID, error)
}

// CatalogService handles service menu and portfolio business logic
type CatalogService struct {
	services   ServiceRepository
	portfolios PortfolioRepository
	owners     OwnerResolver
}

func NewCatalogService(services ServiceRepository, portfolios PortfolioRepository, owners OwnerResolver) *CatalogService {
	return &CatalogService{services: services, portfolios: portfolios, owners: owners}
}

// requireOwnership resolves the referenced profile and checks that userID
// owns it. A dangling reference maps to ErrProviderNotFound so handlers
// answer 404 without leaking which profiles exist.
func (s *CatalogService) requireOwnership(ctx context.Context, ref provider.Ref, userID uuid.UUID) error {
	owner, err := s.owners.ResolveOwner(ctx, ref)
	if err != nil {
		if errors.Is(err, provider.ErrArtistNotFound) || errors.Is(err, provider.ErrStudioNotFound) {
			return ErrProviderNotFound
		}
		return fmt.Errorf("resolve provider owner: %w", err)
	}
	if owner != userID {
		return ErrNotOwner
	}
	return nil
}

// CreateService adds a row to the caller's service menu
func (s *CatalogService) CreateService(ctx context.Context, userID uuid.UUID, req *CreateServiceRequest) (*Service, error) {
	ref, ok := provider.RefFromIDs(req.ArtistID, req.StudioID)
	if !ok {
		return nil, ErrProviderRequired
	}
	if err := s.requireOwnership(ctx, ref, userID); err != nil {
		return nil, err
	}

	svc := &Service{
		ID:          uuid.New(),
		ArtistID:    req.ArtistID,
		StudioID:    req.StudioID,
		Name:        req.Name,
		Description: nullString(req.Description),
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}
	if req.DurationMinutes > 0 {
		svc.DurationMinutes = sql.NullInt32{Int32: int32(req.DurationMinutes), Valid: true}
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServices returns a provider's service menu
func (s *CatalogService) ListServices(ctx context.Context, ref provider.Ref) ([]*Service, error) {
	return s.services.ListByProvider(ctx, ref)
}

// DeleteService removes a service menu row owned by the caller.
// The row's provider is re-resolved before delete; a bare delete-by-id
// would let anyone remove other providers' rows.
func (s *CatalogService) DeleteService(ctx context.Context, userID, serviceID uuid.UUID) error {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	ref, ok := svc.Ref()
	if !ok {
		return fmt.Errorf("service %s has no provider reference", serviceID)
	}
	if err := s.requireOwnership(ctx, ref, userID); err != nil {
		return err
	}

	return s.services.Delete(ctx, serviceID)
}

// GetService returns a service row by id
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// AddPortfolioItem adds an image to the caller's portfolio
func (s *CatalogService) AddPortfolioItem(ctx context.Context, userID uuid.UUID, req *CreatePortfolioRequest) (*Portfolio, error) {
	ref, ok := provider.RefFromIDs(req.ArtistID, req.StudioID)
	if !ok {
		return nil, ErrProviderRequired
	}
	if err := s.requireOwnership(ctx, ref, userID); err != nil {
		return nil, err
	}

	item := &Portfolio{
		ID:          uuid.New(),
		ArtistID:    req.ArtistID,
		StudioID:    req.StudioID,
		ImageURL:    req.ImageURL,
		Description: nullString(req.Description),
		CreatedAt:   time.Now(),
	}

	if err := s.portfolios.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListPortfolio returns a provider's portfolio
func (s *CatalogService) ListPortfolio(ctx context.Context, ref provider.Ref) ([]*Portfolio, error) {
	return s.portfolios.ListByProvider(ctx, ref)
}

// DeletePortfolioItem removes a portfolio image owned by the caller
func (s *CatalogService) DeletePortfolioItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.portfolios.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get portfolio item: %w", err)
	}
	if item == nil {
		return ErrPortfolioNotFound
	}

	ref, ok := item.Ref()
	if !ok {
		return fmt.Errorf("portfolio item %s has no provider reference", itemID)
	}
	if err := s.requireOwnership(ctx, ref, userID); err != nil {
		return err
	}

	return s.portfolios.Delete(ctx, itemID)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

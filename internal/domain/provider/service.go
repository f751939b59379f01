package provider

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/glowbook/glowbook-api/internal/pkg/slugify"
)

// DetailLoader supplies the nested catalog rows for provider detail pages.
// Implemented by an adapter over the catalog repository, wired in main.
type DetailLoader interface {
	ServicesFor(ctx context.Context, ref Ref) ([]ServiceItem, error)
	PortfolioFor(ctx context.Context, ref Ref) ([]PortfolioItem, error)
}

// Service handles provider profile business logic
type Service struct {
	artists ArtistRepository
	studios StudioRepository
	details DetailLoader
}

func NewService(artists ArtistRepository, studios StudioRepository, details DetailLoader) *Service {
	return &Service{artists: artists, studios: studios, details: details}
}

// CreateArtist creates the caller's artist profile. One profile per user.
func (s *Service) CreateArtist(ctx context.Context, userID uuid.UUID, req *CreateArtistRequest) (*Artist, error) {
	existing, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing artist: %w", err)
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify.WithSuffix(req.Name)
	}

	artist := &Artist{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Bio:          nullString(req.Bio),
		Slug:         slug,
		State:        req.State,
		City:         req.City,
		Instagram:    nullString(req.Instagram),
		Whatsapp:     nullString(req.Whatsapp),
		PriceRange:   nullString(req.PriceRange),
		ProfileImage: nullString(req.ProfileImage),
		Specialties:  pq.StringArray(req.Specialties),
		IsVerified:   false,
		CreatedAt:    time.Now(),
	}
	if artist.Specialties == nil {
		artist.Specialties = pq.StringArray{}
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// UpdateArtist updates an artist profile owned by userID
func (s *Service) UpdateArtist(ctx context.Context, id, userID uuid.UUID, req *UpdateArtistRequest) (*Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}
	if artist.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != "" {
		artist.Name = req.Name
	}
	if req.Bio != "" {
		artist.Bio = nullString(req.Bio)
	}
	if req.State != "" {
		artist.State = req.State
	}
	if req.City != "" {
		artist.City = req.City
	}
	if req.Instagram != "" {
		artist.Instagram = nullString(req.Instagram)
	}
	if req.Whatsapp != "" {
		artist.Whatsapp = nullString(req.Whatsapp)
	}
	if req.PriceRange != "" {
		artist.PriceRange = nullString(req.PriceRange)
	}
	if req.ProfileImage != "" {
		artist.ProfileImage = nullString(req.ProfileImage)
	}
	if req.Specialties != nil {
		artist.Specialties = pq.StringArray(req.Specialties)
	}

	if err := s.artists.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// CreateStudio creates the caller's studio profile. One profile per user.
func (s *Service) CreateStudio(ctx context.Context, userID uuid.UUID, req *CreateStudioRequest) (*Studio, error) {
	existing, err := s.studios.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing studio: %w", err)
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify.WithSuffix(req.Name)
	}

	studio := &Studio{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Description:  nullString(req.Description),
		Slug:         slug,
		State:        req.State,
		City:         req.City,
		Address:      nullString(req.Address),
		Phone:        nullString(req.Phone),
		PriceRange:   nullString(req.PriceRange),
		ProfileImage: nullString(req.ProfileImage),
		IsVerified:   false,
		CreatedAt:    time.Now(),
	}

	if err := s.studios.Create(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

// UpdateStudio updates a studio profile owned by userID
func (s *Service) UpdateStudio(ctx context.Context, id, userID uuid.UUID, req *UpdateStudioRequest) (*Studio, error) {
	studio, err := s.studios.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get studio: %w", err)
	}
	if studio == nil {
		return nil, ErrStudioNotFound
	}
	if studio.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != "" {
		studio.Name = req.Name
	}
	if req.Description != "" {
		studio.Description = nullString(req.Description)
	}
	if req.State != "" {
		studio.State = req.State
	}
	if req.City != "" {
		studio.City = req.City
	}
	if req.Address != "" {
		studio.Address = nullString(req.Address)
	}
	if req.Phone != "" {
		studio.Phone = nullString(req.Phone)
	}
	if req.PriceRange != "" {
		studio.PriceRange = nullString(req.PriceRange)
	}
	if req.ProfileImage != "" {
		studio.ProfileImage = nullString(req.ProfileImage)
	}

	if err := s.studios.Update(ctx, studio); err != nil {
		return nil, err
	}
	return studio, nil
}

// ListArtists returns the artist directory narrowed by filter
func (s *Service) ListArtists(ctx context.Context, filter *Filter) ([]*Artist, error) {
	return s.artists.List(ctx, filter)
}

// ListStudios returns the studio directory narrowed by filter
func (s *Service) ListStudios(ctx context.Context, filter *Filter) ([]*Studio, error) {
	return s.studios.List(ctx, filter)
}

// GetArtistDetailBySlug loads an artist with its service menu and portfolio
func (s *Service) GetArtistDetailBySlug(ctx context.Context, slug string) (*Artist, []ServiceItem, []PortfolioItem, error) {
	artist, err := s.artists.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get artist by slug: %w", err)
	}
	if artist == nil {
		return nil, nil, nil, ErrArtistNotFound
	}

	ref := ArtistRef(artist.ID)
	services, err := s.details.ServicesFor(ctx, ref)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load artist services: %w", err)
	}
	portfolio, err := s.details.PortfolioFor(ctx, ref)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load artist portfolio: %w", err)
	}
	return artist, services, portfolio, nil
}

// GetStudioDetailBySlug loads a studio with its service menu and portfolio
func (s *Service) GetStudioDetailBySlug(ctx context.Context, slug string) (*Studio, []ServiceItem, []PortfolioItem, error) {
	studio, err := s.studios.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get studio by slug: %w", err)
	}
	if studio == nil {
		return nil, nil, nil, ErrStudioNotFound
	}

	ref := StudioRef(studio.ID)
	services, err := s.details.ServicesFor(ctx, ref)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load studio services: %w", err)
	}
	portfolio, err := s.details.PortfolioFor(ctx, ref)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load studio portfolio: %w", err)
	}
	return studio, services, portfolio, nil
}

// GetMyArtist returns the caller's artist profile, if any
func (s *Service) GetMyArtist(ctx context.Context, userID uuid.UUID) (*Artist, error) {
	artist, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get artist by user: %w", err)
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}
	return artist, nil
}

// GetMyStudio returns the caller's studio profile, if any
func (s *Service) GetMyStudio(ctx context.Context, userID uuid.UUID) (*Studio, error) {
	studio, err := s.studios.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get studio by user: %w", err)
	}
	if studio == nil {
		return nil, ErrStudioNotFound
	}
	return studio, nil
}

// ResolveOwner returns the user id that owns the referenced profile.
// Callers in catalog and booking use it as the authorization gate.
func (s *Service) ResolveOwner(ctx context.Context, ref Ref) (uuid.UUID, error) {
	switch ref.Kind {
	case KindArtist:
		artist, err := s.artists.GetByID(ctx, ref.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resolve artist owner: %w", err)
		}
		if artist == nil {
			return uuid.Nil, ErrArtistNotFound
		}
		return artist.UserID, nil
	case KindStudio:
		studio, err := s.studios.GetByID(ctx, ref.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resolve studio owner: %w", err)
		}
		if studio == nil {
			return uuid.Nil, ErrStudioNotFound
		}
		return studio.UserID, nil
	default:
		return uuid.Nil, fmt.Errorf("resolve owner: unknown kind %q", ref.Kind)
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

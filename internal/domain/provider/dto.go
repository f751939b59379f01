package provider

import (
	"time"

	"github.com/google/uuid"
)

// CreateArtistRequest for POST /artists
type CreateArtistRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Bio          string   `json:"bio" validate:"max=2000"`
	Slug         string   `json:"slug" validate:"omitempty,slug,max=120"`
	State        string   `json:"state" validate:"required,min=2,max=100"`
	City         string   `json:"city" validate:"required,min=2,max=100"`
	Instagram    string   `json:"instagram" validate:"omitempty,max=100"`
	Whatsapp     string   `json:"whatsapp" validate:"omitempty,max=30"`
	PriceRange   string   `json:"price_range" validate:"omitempty,max=100"`
	ProfileImage string   `json:"profile_image" validate:"omitempty,url,max=2000"`
	Specialties  []string `json:"specialties" validate:"omitempty,dive,max=50"`
}

// UpdateArtistRequest for PUT /artists/{id}; empty fields are left unchanged
type UpdateArtistRequest struct {
	Name         string   `json:"name" validate:"omitempty,min=2,max=100"`
	Bio          string   `json:"bio" validate:"max=2000"`
	State        string   `json:"state" validate:"omitempty,min=2,max=100"`
	City         string   `json:"city" validate:"omitempty,min=2,max=100"`
	Instagram    string   `json:"instagram" validate:"omitempty,max=100"`
	Whatsapp     string   `json:"whatsapp" validate:"omitempty,max=30"`
	PriceRange   string   `json:"price_range" validate:"omitempty,max=100"`
	ProfileImage string   `json:"profile_image" validate:"omitempty,url,max=2000"`
	Specialties  []string `json:"specialties" validate:"omitempty,dive,max=50"`
}

// CreateStudioRequest for POST /studios
type CreateStudioRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Description  string `json:"description" validate:"max=2000"`
	Slug         string `json:"slug" validate:"omitempty,slug,max=120"`
	State        string `json:"state" validate:"required,min=2,max=100"`
	City         string `json:"city" validate:"required,min=2,max=100"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
	PriceRange   string `json:"price_range" validate:"omitempty,max=100"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url,max=2000"`
}

// UpdateStudioRequest for PUT /studios/{id}; empty fields are left unchanged
type UpdateStudioRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2,max=100"`
	Description  string `json:"description" validate:"max=2000"`
	State        string `json:"state" validate:"omitempty,min=2,max=100"`
	City         string `json:"city" validate:"omitempty,min=2,max=100"`
	Address      string `json:"address" validate:"omitempty,max=500"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
	PriceRange   string `json:"price_range" validate:"omitempty,max=100"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url,max=2000"`
}

// ArtistResponse represents an artist profile in API responses
type ArtistResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Bio          *string   `json:"bio,omitempty"`
	Slug         string    `json:"slug"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	Instagram    *string   `json:"instagram,omitempty"`
	Whatsapp     *string   `json:"whatsapp,omitempty"`
	PriceRange   *string   `json:"price_range,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	Specialties  []string  `json:"specialties"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    string    `json:"created_at"`
}

// StudioResponse represents a studio profile in API responses
type StudioResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Slug         string    `json:"slug"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	PriceRange   *string   `json:"price_range,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    string    `json:"created_at"`
}

// ServiceItem is a catalog row nested in provider detail responses
type ServiceItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           int64     `json:"price"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
}

// PortfolioItem is a portfolio row nested in provider detail responses
type PortfolioItem struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"image_url"`
	Description *string   `json:"description,omitempty"`
}

// ArtistDetailResponse is an artist with its service menu and portfolio
type ArtistDetailResponse struct {
	ArtistResponse
	Services  []ServiceItem   `json:"services"`
	Portfolio []PortfolioItem `json:"portfolio"`
}

// StudioDetailResponse is a studio with its service menu and portfolio
type StudioDetailResponse struct {
	StudioResponse
	Services  []ServiceItem   `json:"services"`
	Portfolio []PortfolioItem `json:"portfolio"`
}

// ArtistResponseFromEntity converts entity to response DTO
func ArtistResponseFromEntity(a *Artist) *ArtistResponse {
	resp := &ArtistResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Slug:        a.Slug,
		State:       a.State,
		City:        a.City,
		Specialties: []string(a.Specialties),
		IsVerified:  a.IsVerified,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if resp.Specialties == nil {
		resp.Specialties = []string{}
	}
	if a.Bio.Valid {
		resp.Bio = &a.Bio.String
	}
	if a.Instagram.Valid {
		resp.Instagram = &a.Instagram.String
	}
	if a.Whatsapp.Valid {
		resp.Whatsapp = &a.Whatsapp.String
	}
	if a.PriceRange.Valid {
		resp.PriceRange = &a.PriceRange.String
	}
	if a.ProfileImage.Valid {
		resp.ProfileImage = &a.ProfileImage.String
	}
	return resp
}

// StudioResponseFromEntity converts entity to response DTO
func StudioResponseFromEntity(s *Studio) *StudioResponse {
	resp := &StudioResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		Name:       s.Name,
		Slug:       s.Slug,
		State:      s.State,
		City:       s.City,
		IsVerified: s.IsVerified,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
	if s.Description.Valid {
		resp.Description = &s.Description.String
	}
	if s.Address.Valid {
		resp.Address = &s.Address.String
	}
	if s.Phone.Valid {
		resp.Phone = &s.Phone.String
	}
	if s.PriceRange.Valid {
		resp.PriceRange = &s.PriceRange.String
	}
	if s.ProfileImage.Valid {
		resp.ProfileImage = &s.ProfileImage.String
	}
	return resp
}

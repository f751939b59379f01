package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CreateServiceRequest for POST /services. Exactly one of artist_id and
// studio_id must be set; the caller must own that profile.
type CreateServiceRequest struct {
	ArtistID        *uuid.UUID `json:"artist_id" validate:"omitempty"`
	StudioID        *uuid.UUID `json:"studio_id" validate:"omitempty"`
	Name            string     `json:"name" validate:"required,min=2,max=100"`
	Description     string     `json:"description" validate:"max=2000"`
	Price           int64      `json:"price" validate:"required,gt=0"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,gt=0,lte=1440"`
}

// CreatePortfolioRequest for POST /portfolios
type CreatePortfolioRequest struct {
	ArtistID    *uuid.UUID `json:"artist_id" validate:"omitempty"`
	StudioID    *uuid.UUID `json:"studio_id" validate:"omitempty"`
	ImageURL    string     `json:"image_url" validate:"required,url,max=2000"`
	Description string     `json:"description" validate:"max=2000"`
}

// ServiceResponse represents a service menu row in API responses
type ServiceResponse struct {
	ID              uuid.UUID  `json:"id"`
	ArtistID        *uuid.UUID `json:"artist_id,omitempty"`
	StudioID        *uuid.UUID `json:"studio_id,omitempty"`
	Name            string     `json:"name"`
	Description     *string    `json:"description,omitempty"`
	Price           int64      `json:"price"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	CreatedAt       string     `json:"created_at"`
}

// PortfolioResponse represents a portfolio item in API responses
type PortfolioResponse struct {
	ID          uuid.UUID  `json:"id"`
	ArtistID    *uuid.UUID `json:"artist_id,omitempty"`
	StudioID    *uuid.UUID `json:"studio_id,omitempty"`
	ImageURL    string     `json:"image_url"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

// ServiceResponseFromEntity converts entity to response DTO
func ServiceResponseFromEntity(s *Service) *ServiceResponse {
	resp := &ServiceResponse{
		ID:        s.ID,
		ArtistID:  s.ArtistID,
		StudioID:  s.StudioID,
		Name:      s.Name,
		Price:     s.Price,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
	if s.Description.Valid {
		resp.Description = &s.Description.String
	}
	if s.DurationMinutes.Valid {
		minutes := int(s.DurationMinutes.Int32)
		resp.DurationMinutes = &minutes
	}
	return resp
}

// PortfolioResponseFromEntity converts entity to response DTO
func PortfolioResponseFromEntity(p *Portfolio) *PortfolioResponse {
	resp := &PortfolioResponse{
		ID:        p.ID,
		ArtistID:  p.ArtistID,
		StudioID:  p.StudioID,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Description.Valid {
		resp.Description = &p.Description.String
	}
	return resp
}

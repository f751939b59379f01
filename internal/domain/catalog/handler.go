package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
	"github.com/glowbook/glowbook-api/internal/middleware"
	"github.com/glowbook/glowbook-api/internal/pkg/response"
	"github.com/glowbook/glowbook-api/internal/pkg/validator"
)

// Handler handles service menu and portfolio HTTP requests
type Handler struct {
	service *CatalogService
}

// NewHandler creates catalog handler
func NewHandler(service *CatalogService) *Handler {
	return &Handler{service: service}
}

// CreateService handles POST /services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	svc, err := h.service.CreateService(r.Context(), userID, &req)
	if err != nil {
		h.writeOwnershipError(w, err, "failed to create service")
		return
	}

	response.Created(w, ServiceResponseFromEntity(svc))
}

// DeleteService handles DELETE /services/{id}
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	if err := h.service.DeleteService(r.Context(), userID, id); err != nil {
		switch err {
		case ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case ErrNotOwner:
			response.Forbidden(w, "You do not own this provider profile")
		case ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			log.Error().Err(err).Str("service_id", id.String()).Msg("failed to delete service")
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// ListArtistServices handles GET /artists/{artistId}/services
func (h *Handler) ListArtistServices(w http.ResponseWriter, r *http.Request) {
	h.listServices(w, r, "artistId", provider.ArtistRef)
}

// ListStudioServices handles GET /studios/{studioId}/services
func (h *Handler) ListStudioServices(w http.ResponseWriter, r *http.Request) {
	h.listServices(w, r, "studioId", provider.StudioRef)
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request, param string, mkRef func(uuid.UUID) provider.Ref) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	services, err := h.service.ListServices(r.Context(), mkRef(id))
	if err != nil {
		log.Error().Err(err).Str("provider_id", id.String()).Msg("failed to list services")
		response.InternalError(w)
		return
	}

	result := make([]*ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, ServiceResponseFromEntity(svc))
	}
	response.OK(w, result)
}

// AddPortfolioItem handles POST /portfolios
func (h *Handler) AddPortfolioItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	item, err := h.service.AddPortfolioItem(r.Context(), userID, &req)
	if err != nil {
		h.writeOwnershipError(w, err, "failed to add portfolio item")
		return
	}

	response.Created(w, PortfolioResponseFromEntity(item))
}

// DeletePortfolioItem handles DELETE /portfolios/{id}
func (h *Handler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid portfolio item ID")
		return
	}

	if err := h.service.DeletePortfolioItem(r.Context(), userID, id); err != nil {
		switch err {
		case ErrPortfolioNotFound:
			response.NotFound(w, "Portfolio item not found")
		case ErrNotOwner:
			response.Forbidden(w, "You do not own this provider profile")
		case ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			log.Error().Err(err).Str("portfolio_id", id.String()).Msg("failed to delete portfolio item")
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// ListArtistPortfolio handles GET /artists/{artistId}/portfolios
func (h *Handler) ListArtistPortfolio(w http.ResponseWriter, r *http.Request) {
	h.listPortfolio(w, r, "artistId", provider.ArtistRef)
}

// ListStudioPortfolio handles GET /studios/{studioId}/portfolios
func (h *Handler) ListStudioPortfolio(w http.ResponseWriter, r *http.Request) {
	h.listPortfolio(w, r, "studioId", provider.StudioRef)
}

func (h *Handler) listPortfolio(w http.ResponseWriter, r *http.Request, param string, mkRef func(uuid.UUID) provider.Ref) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	items, err := h.service.ListPortfolio(r.Context(), mkRef(id))
	if err != nil {
		log.Error().Err(err).Str("provider_id", id.String()).Msg("failed to list portfolio")
		response.InternalError(w)
		return
	}

	result := make([]*PortfolioResponse, 0, len(items))
	for _, item := range items {
		result = append(result, PortfolioResponseFromEntity(item))
	}
	response.OK(w, result)
}

func (h *Handler) writeOwnershipError(w http.ResponseWriter, err error, logMsg string) {
	switch err {
	case ErrProviderRequired:
		response.BadRequest(w, "Exactly one of artist_id or studio_id is required")
	case ErrProviderNotFound:
		response.NotFound(w, "Provider not found")
	case ErrNotOwner:
		response.Forbidden(w, "You do not own this provider profile")
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}

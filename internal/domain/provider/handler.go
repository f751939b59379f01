package provider

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glowbook/glowbook-api/internal/middleware"
	"github.com/glowbook/glowbook-api/internal/pkg/response"
	"github.com/glowbook/glowbook-api/internal/pkg/validator"
)

// Handler handles provider profile HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates provider handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func filterFromQuery(r *http.Request) *Filter {
	f := &Filter{}
	q := r.URL.Query()
	if v := q.Get("search"); v != "" {
		f.Search = &v
	}
	if v := q.Get("state"); v != "" {
		f.State = &v
	}
	if v := q.Get("city"); v != "" {
		f.City = &v
	}
	if v := q.Get("specialty"); v != "" {
		f.Specialty = &v
	}
	return f
}

// ListArtists handles GET /artists
func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.ListArtists(r.Context(), filterFromQuery(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to list artists")
		response.InternalError(w)
		return
	}

	result := make([]*ArtistResponse, 0, len(artists))
	for _, a := range artists {
		result = append(result, ArtistResponseFromEntity(a))
	}
	response.OK(w, result)
}

// GetArtistBySlug handles GET /artists/{slug}
func (h *Handler) GetArtistBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	artist, services, portfolio, err := h.service.GetArtistDetailBySlug(r.Context(), slug)
	if err != nil {
		switch err {
		case ErrArtistNotFound:
			response.NotFound(w, "Artist not found")
		default:
			log.Error().Err(err).Str("slug", slug).Msg("failed to load artist detail")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, &ArtistDetailResponse{
		ArtistResponse: *ArtistResponseFromEntity(artist),
		Services:       services,
		Portfolio:      portfolio,
	})
}

// CreateArtist handles POST /artists
func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	artist, err := h.service.CreateArtist(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrProfileAlreadyExists:
			response.Conflict(w, "Artist profile already exists for this user")
		case ErrSlugTaken:
			response.Conflict(w, "Slug is already taken")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create artist")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ArtistResponseFromEntity(artist))
}

// UpdateArtist handles PUT /artists/{id}
func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid artist ID")
		return
	}

	var req UpdateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	artist, err := h.service.UpdateArtist(r.Context(), id, userID, &req)
	if err != nil {
		switch err {
		case ErrArtistNotFound:
			response.NotFound(w, "Artist not found")
		case ErrNotOwner:
			response.Forbidden(w, "You do not own this profile")
		default:
			log.Error().Err(err).Str("artist_id", id.String()).Msg("failed to update artist")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ArtistResponseFromEntity(artist))
}

// ListStudios handles GET /studios
func (h *Handler) ListStudios(w http.ResponseWriter, r *http.Request) {
	studios, err := h.service.ListStudios(r.Context(), filterFromQuery(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to list studios")
		response.InternalError(w)
		return
	}

	result := make([]*StudioResponse, 0, len(studios))
	for _, s := range studios {
		result = append(result, StudioResponseFromEntity(s))
	}
	response.OK(w, result)
}

// GetStudioBySlug handles GET /studios/{slug}
func (h *Handler) GetStudioBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	studio, services, portfolio, err := h.service.GetStudioDetailBySlug(r.Context(), slug)
	if err != nil {
		switch err {
		case ErrStudioNotFound:
			response.NotFound(w, "Studio not found")
		default:
			log.Error().Err(err).Str("slug", slug).Msg("failed to load studio detail")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, &StudioDetailResponse{
		StudioResponse: *StudioResponseFromEntity(studio),
		Services:       services,
		Portfolio:      portfolio,
	})
}

// CreateStudio handles POST /studios
func (h *Handler) CreateStudio(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateStudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	studio, err := h.service.CreateStudio(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case ErrProfileAlreadyExists:
			response.Conflict(w, "Studio profile already exists for this user")
		case ErrSlugTaken:
			response.Conflict(w, "Slug is already taken")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create studio")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, StudioResponseFromEntity(studio))
}

// UpdateStudio handles PUT /studios/{id}
func (h *Handler) UpdateStudio(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid studio ID")
		return
	}

	var req UpdateStudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	studio, err := h.service.UpdateStudio(r.Context(), id, userID, &req)
	if err != nil {
		switch err {
		case ErrStudioNotFound:
			response.NotFound(w, "Studio not found")
		case ErrNotOwner:
			response.Forbidden(w, "You do not own this profile")
		default:
			log.Error().Err(err).Str("studio_id", id.String()).Msg("failed to update studio")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, StudioResponseFromEntity(studio))
}

// GetMyArtist handles GET /me/artist
func (h *Handler) GetMyArtist(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	artist, err := h.service.GetMyArtist(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrArtistNotFound:
			response.NotFound(w, "Artist profile not found")
		default:
			log.Error().Err(err).Msg("failed to load own artist profile")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ArtistResponseFromEntity(artist))
}

// GetMyStudio handles GET /me/studio
func (h *Handler) GetMyStudio(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	studio, err := h.service.GetMyStudio(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrStudioNotFound:
			response.NotFound(w, "Studio profile not found")
		default:
			log.Error().Err(err).Msg("failed to load own studio profile")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, StudioResponseFromEntity(studio))
}

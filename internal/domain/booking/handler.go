package booking

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

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetUserID(r.Context())

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	b, err := h.service.Create(r.Context(), clientID, &req)
	if err != nil {
		switch err {
		case ErrProviderRequired:
			response.BadRequest(w, "Exactly one of artist_id or studio_id is required")
		case ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			log.Error().Err(err).Str("client_id", clientID.String()).Msg("failed to create booking")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, BookingResponseFromEntity(b))
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	b, err := h.service.Transition(r.Context(), callerID, id, Status(req.Status))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.NotFound(w, "Booking not found")
		case ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case ErrNotOwner:
			response.Forbidden(w, "Only the booked provider can change this booking")
		case ErrInvalidTransition:
			response.BadRequest(w, "Status transition not allowed")
		default:
			log.Error().Err(err).Str("booking_id", id.String()).Msg("failed to update booking status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, BookingResponseFromEntity(b))
}

// List handles GET /bookings?role=client|artist|studio
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	role := r.URL.Query().Get("role")
	if role == "" {
		role = "client"
	}

	switch role {
	case "client":
		items, err := h.service.ListForClient(r.Context(), userID)
		if err != nil {
			log.Error().Err(err).Msg("failed to list client bookings")
			response.InternalError(w)
			return
		}
		result := make([]*ClientBookingResponse, 0, len(items))
		for _, item := range items {
			result = append(result, ClientBookingResponseFromItem(item))
		}
		response.OK(w, result)

	case "artist", "studio":
		kind := provider.KindArtist
		if role == "studio" {
			kind = provider.KindStudio
		}
		items, err := h.service.ListForProvider(r.Context(), userID, kind)
		if err != nil {
			log.Error().Err(err).Str("role", role).Msg("failed to list provider bookings")
			response.InternalError(w)
			return
		}
		result := make([]*ProviderBookingResponse, 0, len(items))
		for _, item := range items {
			result = append(result, ProviderBookingResponseFromItem(item))
		}
		response.OK(w, result)

	default:
		response.BadRequest(w, "Role must be client, artist or studio")
	}
}

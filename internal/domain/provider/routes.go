package provider

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ArtistRoutes returns the artist directory and profile router. The nested
// service menu and portfolio list handlers are passed in so the catalog
// package never has to import this one.
func (h *Handler) ArtistRoutes(authMiddleware func(http.Handler) http.Handler, listServices, listPortfolio http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", h.ListArtists)
	r.Get("/{slug}", h.GetArtistBySlug)
	r.Get("/{artistId}/services", listServices)
	r.Get("/{artistId}/portfolios", listPortfolio)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.CreateArtist)
		r.Put("/{id}", h.UpdateArtist)
	})

	return r
}

// StudioRoutes returns the studio directory and profile router
func (h *Handler) StudioRoutes(authMiddleware func(http.Handler) http.Handler, listServices, listPortfolio http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", h.ListStudios)
	r.Get("/{slug}", h.GetStudioBySlug)
	r.Get("/{studioId}/services", listServices)
	r.Get("/{studioId}/portfolios", listPortfolio)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.CreateStudio)
		r.Put("/{id}", h.UpdateStudio)
	})

	return r
}

// MeRoutes returns the caller's own profile router
func (h *Handler) MeRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Get("/artist", h.GetMyArtist)
	r.Get("/studio", h.GetMyStudio)
	return r
}

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ServiceRoutes returns the service menu router (all protected)
func (h *Handler) ServiceRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Post("/", h.CreateService)
	r.Delete("/{id}", h.DeleteService)
	return r
}

// PortfolioRoutes returns the portfolio router (all protected)
func (h *Handler) PortfolioRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Post("/", h.AddPortfolioItem)
	r.Delete("/{id}", h.DeletePortfolioItem)
	return r
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/glowbook/glowbook-api/internal/config"
	"github.com/glowbook/glowbook-api/internal/domain/auth"
	"github.com/glowbook/glowbook-api/internal/domain/booking"
	"github.com/glowbook/glowbook-api/internal/domain/catalog"
	"github.com/glowbook/glowbook-api/internal/domain/provider"
	"github.com/glowbook/glowbook-api/internal/domain/user"
	"github.com/glowbook/glowbook-api/internal/middleware"
	"github.com/glowbook/glowbook-api/internal/pkg/database"
	"github.com/glowbook/glowbook-api/internal/pkg/jwt"
	pkgresponse "github.com/glowbook/glowbook-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Glowbook API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	artistRepo := provider.NewArtistRepository(db)
	studioRepo := provider.NewStudioRepository(db)
	serviceRepo := catalog.NewServiceRepository(db)
	portfolioRepo := catalog.NewPortfolioRepository(db)
	bookingRepo := booking.NewRepository(db)

	// ---------- Adapters ----------
	detailLoader := &providerDetailAdapter{services: serviceRepo, portfolios: portfolioRepo}

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	providerService := provider.NewService(artistRepo, studioRepo, detailLoader)
	catalogService := catalog.NewCatalogService(serviceRepo, portfolioRepo, providerService)
	bookingService := booking.NewService(bookingRepo, providerService, catalogService)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	providerHandler := provider.NewHandler(providerService)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/artists", providerHandler.ArtistRoutes(authMiddleware,
			catalogHandler.ListArtistServices, catalogHandler.ListArtistPortfolio))
		r.Mount("/studios", providerHandler.StudioRoutes(authMiddleware,
			catalogHandler.ListStudioServices, catalogHandler.ListStudioPortfolio))
		r.Mount("/me", providerHandler.MeRoutes(authMiddleware))
		r.Mount("/services", catalogHandler.ServiceRoutes(authMiddleware))
		r.Mount("/portfolios", catalogHandler.PortfolioRoutes(authMiddleware))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}

// providerDetailAdapter feeds catalog rows into provider detail pages
// without the provider package depending on catalog.
type providerDetailAdapter struct {
	services   catalog.ServiceRepository
	portfolios catalog.PortfolioRepository
}

func (a *providerDetailAdapter) ServicesFor(ctx context.Context, ref provider.Ref) ([]provider.ServiceItem, error) {
	rows, err := a.services.ListByProvider(ctx, ref)
	if err != nil {
		return nil, err
	}

	items := make([]provider.ServiceItem, 0, len(rows))
	for _, row := range rows {
		item := provider.ServiceItem{
			ID:    row.ID,
			Name:  row.Name,
			Price: row.Price,
		}
		if row.Description.Valid {
			item.Description = &row.Description.String
		}
		if row.DurationMinutes.Valid {
			minutes := int(row.DurationMinutes.Int32)
			item.DurationMinutes = &minutes
		}
		items = append(items, item)
	}
	return items, nil
}

func (a *providerDetailAdapter) PortfolioFor(ctx context.Context, ref provider.Ref) ([]provider.PortfolioItem, error) {
	rows, err := a.portfolios.ListByProvider(ctx, ref)
	if err != nil {
		return nil, err
	}

	items := make([]provider.PortfolioItem, 0, len(rows))
	for _, row := range rows {
		item := provider.PortfolioItem{
			ID:       row.ID,
			ImageURL: row.ImageURL,
		}
		if row.Description.Valid {
			item.Description = &row.Description.String
		}
		items = append(items, item)
	}
	return items, nil
}

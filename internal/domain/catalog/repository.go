package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

// ServiceRepository defines service menu data access interface
type ServiceRepository interface {
	Create(ctx context.Context, svc *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	ListByProvider(ctx context.Context, ref provider.Ref) ([]*Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PortfolioRepository defines portfolio data access interface
type PortfolioRepository interface {
	Create(ctx context.Context, item *Portfolio) error
	GetByID(ctx context.Context, id uuid.UUID) (*Portfolio, error)
	ListByProvider(ctx context.Context, ref provider.Ref) ([]*Portfolio, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func providerColumn(ref provider.Ref) string {
	if ref.Kind == provider.KindStudio {
		return "studio_id"
	}
	return "artist_id"
}

// ---- SERVICE REPOSITORY ----

const serviceColumns = `id, artist_id, studio_id, name, description, price, duration_minutes, created_at`

type serviceRepository struct{ db *sqlx.DB }

func NewServiceRepository(db *sqlx.DB) ServiceRepository { return &serviceRepository{db: db} }

func (r *serviceRepository) Create(ctx context.Context, svc *Service) error {
	q := `INSERT INTO services (id, artist_id, studio_id, name, description, price, duration_minutes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.db.ExecContext(ctx, q,
		svc.ID, svc.ArtistID, svc.StudioID, svc.Name, svc.Description,
		svc.Price, svc.DurationMinutes, svc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("service repository create: %w", err)
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	q := fmt.Sprintf(`SELECT %s FROM services WHERE id = $1`, serviceColumns)
	var svc Service
	err := r.db.GetContext(ctx, &svc, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) ListByProvider(ctx context.Context, ref provider.Ref) ([]*Service, error) {
	q := fmt.Sprintf(`SELECT %s FROM services WHERE %s = $1 ORDER BY created_at ASC`,
		serviceColumns, providerColumn(ref))
	services := []*Service{}
	if err := r.db.SelectContext(ctx, &services, q, ref.ID); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}

// ---- PORTFOLIO REPOSITORY ----

const portfolioColumns = `id, artist_id, studio_id, image_url, description, created_at`

type portfolioRepository struct{ db *sqlx.DB }

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository { return &portfolioRepository{db: db} }

func (r *portfolioRepository) Create(ctx context.Context, item *Portfolio) error {
	q := `INSERT INTO portfolios (id, artist_id, studio_id, image_url, description, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.ExecContext(ctx, q,
		item.ID, item.ArtistID, item.StudioID, item.ImageURL, item.Description, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("portfolio repository create: %w", err)
	}
	return nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*Portfolio, error) {
	q := fmt.Sprintf(`SELECT %s FROM portfolios WHERE id = $1`, portfolioColumns)
	var item Portfolio
	err := r.db.GetContext(ctx, &item, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) ListByProvider(ctx context.Context, ref provider.Ref) ([]*Portfolio, error) {
	q := fmt.Sprintf(`SELECT %s FROM portfolios WHERE %s = $1 ORDER BY created_at DESC`,
		portfolioColumns, providerColumn(ref))
	items := []*Portfolio{}
	if err := r.db.SelectContext(ctx, &items, q, ref.ID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	return err
}

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

// Repository defines booking data access interface
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ClientListItem, error)
	ListByProvider(ctx context.Context, ref provider.Ref) ([]*ProviderListItem, error)
}

const bookingColumns = `id, artist_id, studio_id, client_id, service_id, booking_date,
	booking_time, location, notes, status, created_at`

type repository struct{ db *sqlx.DB }

func NewRepository(db *sqlx.DB) Repository { return &repository{db: db} }

func (r *repository) Create(ctx context.Context, b *Booking) error {
	q := `INSERT INTO bookings (
		id, artist_id, studio_id, client_id, service_id, booking_date,
		booking_time, location, notes, status, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.db.ExecContext(ctx, q,
		b.ID, b.ArtistID, b.StudioID, b.ClientID, b.ServiceID, b.BookingDate,
		b.BookingTime, b.Location, b.Notes, b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("booking repository create: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	q := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	var b Booking
	err := r.db.GetContext(ctx, &b, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ClientListItem, error) {
	q := `SELECT
		b.id, b.artist_id, b.studio_id, b.client_id, b.service_id, b.booking_date,
		b.booking_time, b.location, b.notes, b.status, b.created_at,
		COALESCE(a.name, st.name) AS provider_name,
		COALESCE(a.slug, st.slug) AS provider_slug,
		sv.name AS service_name,
		sv.price AS service_price
	FROM bookings b
	LEFT JOIN artists a ON b.artist_id = a.id
	LEFT JOIN studios st ON b.studio_id = st.id
	LEFT JOIN services sv ON b.service_id = sv.id
	WHERE b.client_id = $1
	ORDER BY b.booking_date DESC`

	items := []*ClientListItem{}
	if err := r.db.SelectContext(ctx, &items, q, clientID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListByProvider(ctx context.Context, ref provider.Ref) ([]*ProviderListItem, error) {
	column := "b.artist_id"
	if ref.Kind == provider.KindStudio {
		column = "b.studio_id"
	}

	q := fmt.Sprintf(`SELECT
		b.id, b.artist_id, b.studio_id, b.client_id, b.service_id, b.booking_date,
		b.booking_time, b.location, b.notes, b.status, b.created_at,
		u.display_name AS client_name,
		u.email AS client_email,
		sv.name AS service_name,
		sv.price AS service_price
	FROM bookings b
	JOIN users u ON b.client_id = u.id
	LEFT JOIN services sv ON b.service_id = sv.id
	WHERE %s = $1
	ORDER BY b.booking_date DESC`, column)

	items := []*ProviderListItem{}
	if err := r.db.SelectContext(ctx, &items, q, ref.ID); err != nil {
		return nil, err
	}
	return items, nil
}

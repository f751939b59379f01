package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Filter represents directory search filters.
// Conditions are conjunctive; a nil field means no constraint.
type Filter struct {
	Search    *string // substring match on name and bio/description
	State     *string // exact match
	City      *string // exact match
	Specialty *string // artists only: array membership
}

// ArtistRepository defines artist profile data access interface
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	GetBySlug(ctx context.Context, slug string) (*Artist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Artist, error)
	Update(ctx context.Context, artist *Artist) error
	List(ctx context.Context, filter *Filter) ([]*Artist, error)
}

// StudioRepository defines studio profile data access interface
type StudioRepository interface {
	Create(ctx context.Context, studio *Studio) error
	GetByID(ctx context.Context, id uuid.UUID) (*Studio, error)
	GetBySlug(ctx context.Context, slug string) (*Studio, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Studio, error)
	Update(ctx context.Context, studio *Studio) error
	List(ctx context.Context, filter *Filter) ([]*Studio, error)
}

// ---- ARTIST REPOSITORY ----

const artistColumns = `id, user_id, name, bio, slug, state, city, instagram, whatsapp,
	price_range, profile_image, specialties, is_verified, created_at`

type artistRepository struct{ db *sqlx.DB }

func NewArtistRepository(db *sqlx.DB) ArtistRepository { return &artistRepository{db: db} }

func (r *artistRepository) Create(ctx context.Context, a *Artist) error {
	q := `INSERT INTO artists (
		id, user_id, name, bio, slug, state, city, instagram, whatsapp,
		price_range, profile_image, specialties, is_verified, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.UserID, a.Name, a.Bio, a.Slug, a.State, a.City, a.Instagram, a.Whatsapp,
		a.PriceRange, a.ProfileImage, a.Specialties, a.IsVerified, a.CreatedAt,
	)
	return mapInsertError(err)
}

func (r *artistRepository) GetByID(ctx context.Context, id uuid.UUID) (*Artist, error) {
	q := fmt.Sprintf(`SELECT %s FROM artists WHERE id = $1`, artistColumns)
	var a Artist
	err := r.db.GetContext(ctx, &a, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *artistRepository) GetBySlug(ctx context.Context, slug string) (*Artist, error) {
	q := fmt.Sprintf(`SELECT %s FROM artists WHERE slug = $1`, artistColumns)
	var a Artist
	err := r.db.GetContext(ctx, &a, q, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *artistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Artist, error) {
	q := fmt.Sprintf(`SELECT %s FROM artists WHERE user_id = $1`, artistColumns)
	var a Artist
	err := r.db.GetContext(ctx, &a, q, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *artistRepository) Update(ctx context.Context, a *Artist) error {
	q := `UPDATE artists SET
		name=$2, bio=$3, state=$4, city=$5, instagram=$6, whatsapp=$7,
		price_range=$8, profile_image=$9, specialties=$10
	WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.Name, a.Bio, a.State, a.City, a.Instagram, a.Whatsapp,
		a.PriceRange, a.ProfileImage, a.Specialties,
	)
	return err
}

func (r *artistRepository) List(ctx context.Context, filter *Filter) ([]*Artist, error) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR bio ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}
	if filter.State != nil && *filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", argIndex))
		args = append(args, *filter.State)
		argIndex++
	}
	if filter.City != nil && *filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", argIndex))
		args = append(args, *filter.City)
		argIndex++
	}
	if filter.Specialty != nil && *filter.Specialty != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(specialties)", argIndex))
		args = append(args, *filter.Specialty)
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	q := fmt.Sprintf(`SELECT %s FROM artists %s ORDER BY created_at DESC`, artistColumns, where)
	artists := []*Artist{}
	if err := r.db.SelectContext(ctx, &artists, q, args...); err != nil {
		return nil, err
	}
	return artists, nil
}

// ---- STUDIO REPOSITORY ----

const studioColumns = `id, user_id, name, description, slug, state, city, address, phone,
	price_range, profile_image, is_verified, created_at`

type studioRepository struct{ db *sqlx.DB }

func NewStudioRepository(db *sqlx.DB) StudioRepository { return &studioRepository{db: db} }

func (r *studioRepository) Create(ctx context.Context, s *Studio) error {
	q := `INSERT INTO studios (
		id, user_id, name, description, slug, state, city, address, phone,
		price_range, profile_image, is_verified, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.db.ExecContext(ctx, q,
		s.ID, s.UserID, s.Name, s.Description, s.Slug, s.State, s.City, s.Address, s.Phone,
		s.PriceRange, s.ProfileImage, s.IsVerified, s.CreatedAt,
	)
	return mapInsertError(err)
}

func (r *studioRepository) GetByID(ctx context.Context, id uuid.UUID) (*Studio, error) {
	q := fmt.Sprintf(`SELECT %s FROM studios WHERE id = $1`, studioColumns)
	var s Studio
	err := r.db.GetContext(ctx, &s, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *studioRepository) GetBySlug(ctx context.Context, slug string) (*Studio, error) {
	q := fmt.Sprintf(`SELECT %s FROM studios WHERE slug = $1`, studioColumns)
	var s Studio
	err := r.db.GetContext(ctx, &s, q, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *studioRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Studio, error) {
	q := fmt.Sprintf(`SELECT %s FROM studios WHERE user_id = $1`, studioColumns)
	var s Studio
	err := r.db.GetContext(ctx, &s, q, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *studioRepository) Update(ctx context.Context, s *Studio) error {
	q := `UPDATE studios SET
		name=$2, description=$3, state=$4, city=$5, address=$6, phone=$7,
		price_range=$8, profile_image=$9
	WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q,
		s.ID, s.Name, s.Description, s.State, s.City, s.Address, s.Phone,
		s.PriceRange, s.ProfileImage,
	)
	return err
}

func (r *studioRepository) List(ctx context.Context, filter *Filter) ([]*Studio, error) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}
	if filter.State != nil && *filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", argIndex))
		args = append(args, *filter.State)
		argIndex++
	}
	if filter.City != nil && *filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", argIndex))
		args = append(args, *filter.City)
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	q := fmt.Sprintf(`SELECT %s FROM studios %s ORDER BY created_at DESC`, studioColumns, where)
	studios := []*Studio{}
	if err := r.db.SelectContext(ctx, &studios, q, args...); err != nil {
		return nil, err
	}
	return studios, nil
}

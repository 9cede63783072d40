package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/alpinaconnect/backend/internal/domain"
)

// GuideRepo defines the persistence operations for guides.
type GuideRepo interface {
	// GetByID retrieves a single guide by its UUID primary key.
	// Returns domain.ErrNotFound if no guide with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Guide, error)

	// List returns all guides ordered by name.
	List(ctx context.Context) ([]domain.Guide, error)
}

// pgGuideRepo is the Postgres implementation of GuideRepo.
type pgGuideRepo struct {
	db db
}

// NewGuideRepo constructs a GuideRepo backed by the provided db connection.
func NewGuideRepo(db db) GuideRepo {
	return &pgGuideRepo{db: db}
}

const guideColumns = `id, name, email, phone, albo_number, bio, avatar_url, rating, created_at`

// GetByID retrieves a guide by primary key.
func (r *pgGuideRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Guide, error) {
	const q = `SELECT ` + guideColumns + ` FROM guides WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanGuide(row)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("repo.GuideRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all guides ordered by name.
func (r *pgGuideRepo) List(ctx context.Context) ([]domain.Guide, error) {
	const q = `SELECT ` + guideColumns + ` FROM guides ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.GuideRepo.List: %w", err)
	}
	defer rows.Close()

	var guides []domain.Guide
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.GuideRepo.List: scan: %w", err)
		}
		guides = append(guides, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.GuideRepo.List: rows: %w", err)
	}

	return guides, nil
}

// scanGuide maps a single database row into a domain.Guide.
func scanGuide(s scanner) (domain.Guide, error) {
	var (
		g  domain.Guide
		id pgtype.UUID
	)

	err := s.Scan(&id, &g.Name, &g.Email, &g.Phone, &g.AlboNumber,
		&g.Bio, &g.AvatarURL, &g.Rating, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Guide{}, domain.ErrNotFound
		}
		return domain.Guide{}, err
	}

	g.ID = uuid.UUID(id.Bytes)
	return g, nil
}

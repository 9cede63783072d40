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

// ReviewRepo defines the persistence operations for guide reviews.
type ReviewRepo interface {
	// Create inserts a new review and returns the persisted record.
	Create(ctx context.Context, review domain.Review) (domain.Review, error)

	// ListByGuide returns a guide's reviews, newest first.
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error)
}

// pgReviewRepo is the Postgres implementation of ReviewRepo.
type pgReviewRepo struct {
	db db
}

// NewReviewRepo constructs a ReviewRepo backed by the provided db connection.
func NewReviewRepo(db db) ReviewRepo {
	return &pgReviewRepo{db: db}
}

const reviewColumns = `id, guide_id, client_id, author_name, rating, comment, created_at`

// Create inserts a new review row.
func (r *pgReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	const q = `
		INSERT INTO reviews (guide_id, client_id, author_name, rating, comment)
		VALUES (@guide_id, @client_id, @author_name, @rating, @comment)
		RETURNING ` + reviewColumns

	args := pgx.NamedArgs{
		"guide_id":    review.GuideID,
		"client_id":   review.ClientID,
		"author_name": review.AuthorName,
		"rating":      review.Rating,
		"comment":     review.Comment,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReview(row)
	if err != nil {
		return domain.Review{}, fmt.Errorf("repo.ReviewRepo.Create: %w", err)
	}
	return result, nil
}

// ListByGuide returns a guide's reviews, newest first.
func (r *pgReviewRepo) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error) {
	const q = `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE guide_id = @guide_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"guide_id": guideID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListByGuide: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReviewRepo.ListByGuide: scan: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListByGuide: rows: %w", err)
	}

	return reviews, nil
}

// scanReview maps a single database row into a domain.Review.
func scanReview(s scanner) (domain.Review, error) {
	var (
		rv       domain.Review
		id       pgtype.UUID
		guideID  pgtype.UUID
		clientID pgtype.UUID
	)

	err := s.Scan(&id, &guideID, &clientID, &rv.AuthorName, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, err
	}

	rv.ID = uuid.UUID(id.Bytes)
	rv.GuideID = uuid.UUID(guideID.Bytes)
	rv.ClientID = uuid.UUID(clientID.Bytes)
	return rv, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/repo"
)

// ReviewService implements business logic for guide reviews.
// It holds the guide and client repos because posting a review requires both
// parties to exist, and the author name is denormalized from the client.
type ReviewService struct {
	reviews repo.ReviewRepo
	guides  repo.GuideRepo
	clients repo.ClientRepo
}

// NewReviewService constructs a ReviewService backed by the provided repos.
func NewReviewService(reviews repo.ReviewRepo, guides repo.GuideRepo, clients repo.ClientRepo) *ReviewService {
	return &ReviewService{reviews: reviews, guides: guides, clients: clients}
}

// Create validates and persists a new review of a guide.
// Returns domain.ErrValidation if the rating is outside 1..5 or the comment
// is empty. Returns domain.ErrNotFound if the guide or client does not exist.
func (s *ReviewService) Create(ctx context.Context, guideID, clientID uuid.UUID, rating int, comment string) (domain.Review, error) {
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if strings.TrimSpace(comment) == "" {
		return domain.Review{}, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	if _, err := s.guides.GetByID(ctx, guideID); err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w", err)
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w", err)
	}

	review := domain.Review{
		GuideID:    guideID,
		ClientID:   clientID,
		AuthorName: client.Name,
		Rating:     rating,
		Comment:    comment,
	}
	result, err := s.reviews.Create(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w", err)
	}
	return result, nil
}

// ListByGuide returns a guide's reviews, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReviewService) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByGuide(ctx, guideID)
	if err != nil {
		return nil, fmt.Errorf("service.ReviewService.ListByGuide: %w", err)
	}
	if reviews == nil {
		return []domain.Review{}, nil
	}
	return reviews, nil
}

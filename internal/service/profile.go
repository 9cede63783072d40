package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/repo"
)

// ProfileService serves client and guide profile reads.
// Profiles are consumed by the marketplace UI; the booking core treats the
// client profile payload as opaque.
type ProfileService struct {
	clients repo.ClientRepo
	guides  repo.GuideRepo
}

// NewProfileService constructs a ProfileService backed by the provided repos.
func NewProfileService(clients repo.ClientRepo, guides repo.GuideRepo) *ProfileService {
	return &ProfileService{clients: clients, guides: guides}
}

// GetClient returns a single client by ID.
func (s *ProfileService) GetClient(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ProfileService.GetClient: %w", err)
	}
	return client, nil
}

// GetGuide returns a single guide by ID.
func (s *ProfileService) GetGuide(ctx context.Context, id uuid.UUID) (domain.Guide, error) {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		return domain.Guide{}, fmt.Errorf("service.ProfileService.GetGuide: %w", err)
	}
	return guide, nil
}

// ListGuides returns all guides ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ProfileService) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	guides, err := s.guides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.ListGuides: %w", err)
	}
	if guides == nil {
		return []domain.Guide{}, nil
	}
	return guides, nil
}

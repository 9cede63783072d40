// Package service contains the business logic for the AlpinaConnect API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/repo"
)

// CatalogService implements business logic for trip catalog operations.
// It holds the guide repo because creating a trip requires verifying the
// owning guide exists, and the request repo because a single-trip read
// returns the full aggregate with its active requests.
type CatalogService struct {
	trips    repo.TripRepo
	guides   repo.GuideRepo
	requests repo.RequestRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(trips repo.TripRepo, guides repo.GuideRepo, requests repo.RequestRepo) *CatalogService {
	return &CatalogService{trips: trips, guides: guides, requests: requests}
}

// Create validates the trip, verifies the owning guide exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the guide does not exist.
func (s *CatalogService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if _, err := s.guides.GetByID(ctx, trip.GuideID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.Create: %w", err)
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip with its active booking requests attached.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.GetByID: %w", err)
	}
	trip, err = attachRequests(ctx, s.requests, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.GetByID: %w", err)
	}
	return trip, nil
}

// ListPaged returns one catalog page and the total count for the filter.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) ListPaged(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.List(ctx, p, activity)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CatalogService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip.
// Only the owning guide may update a trip; anyone else gets domain.ErrForbidden.
func (s *CatalogService) Update(ctx context.Context, guideID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	existing, err := s.trips.GetByID(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.Update: %w", err)
	}
	if existing.GuideID != guideID {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.Update: %w", domain.ErrForbidden)
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CatalogService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip. Only the owning guide may delete it.
func (s *CatalogService) Delete(ctx context.Context, guideID, tripID uuid.UUID) error {
	existing, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.CatalogService.Delete: %w", err)
	}
	if existing.GuideID != guideID {
		return fmt.Errorf("service.CatalogService.Delete: %w", domain.ErrForbidden)
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.CatalogService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Title and location must be non-empty (whitespace-only is rejected).
//   - The availability window must not be reversed (from after to).
//   - MaxParticipants and DurationDays must be positive; Price non-negative.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if trip.AvailableFrom.IsZero() || trip.AvailableTo.IsZero() {
		return fmt.Errorf("%w: availability window is required", domain.ErrValidation)
	}
	if trip.AvailableTo.Before(trip.AvailableFrom) {
		return fmt.Errorf("%w: available_to must not be before available_from", domain.ErrValidation)
	}
	if trip.MaxParticipants < 1 {
		return fmt.Errorf("%w: max_participants must be at least 1", domain.ErrValidation)
	}
	if trip.DurationDays < 1 {
		return fmt.Errorf("%w: duration_days must be at least 1", domain.ErrValidation)
	}
	if trip.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}

// attachRequests loads the trip's active requests and splits them into the
// Pending and Enrolled lists, preserving submission order.
func attachRequests(ctx context.Context, requests repo.RequestRepo, trip domain.Trip) (domain.Trip, error) {
	active, err := requests.ListActiveByTrip(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, err
	}
	trip.Pending = []domain.Request{}
	trip.Enrolled = []domain.Request{}
	for _, req := range active {
		switch req.Status {
		case domain.StatusPending:
			trip.Pending = append(trip.Pending, req)
		case domain.StatusEnrolled:
			trip.Enrolled = append(trip.Enrolled, req)
		}
	}
	return trip, nil
}

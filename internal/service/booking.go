package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/booking"
	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/metrics"
	"github.com/alpinaconnect/backend/internal/repo"
)

// BookingService orchestrates the request workflow around the pure booking
// core: it loads the trip aggregate, runs the transition, and persists the
// outcome. Each operation is a single read-then-write on one trip within one
// request; the request repo's status guards and unique index keep the
// invariants intact if two requests race.
type BookingService struct {
	trips    repo.TripRepo
	clients  repo.ClientRepo
	requests repo.RequestRepo
	metrics  *metrics.Metrics
}

// NewBookingService constructs a BookingService backed by the provided repos.
// metrics may be nil in tests.
func NewBookingService(trips repo.TripRepo, clients repo.ClientRepo, requests repo.RequestRepo, m *metrics.Metrics) *BookingService {
	return &BookingService{trips: trips, clients: clients, requests: requests, metrics: m}
}

// Submit files a booking request for the client on the trip.
// The availability evaluator runs first; on any rejection the trip is left
// untouched and the rejection reason is returned for user-facing messaging.
// Returns domain.ErrNotFound if the trip or client does not exist.
func (s *BookingService) Submit(ctx context.Context, tripID, clientID uuid.UUID, date time.Time) (domain.Request, error) {
	trip, err := s.loadAggregate(ctx, tripID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.BookingService.Submit: %w", err)
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.BookingService.Submit: %w", err)
	}

	trip, err = booking.Submit(trip, client, date)
	if err != nil {
		s.metrics.Refused(refusalReason(err))
		return domain.Request{}, fmt.Errorf("service.BookingService.Submit: %w", err)
	}

	// The accepted request is the one just appended.
	created, err := s.requests.Create(ctx, trip.Pending[len(trip.Pending)-1])
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRequest) {
			// A concurrent submit won the unique index — same outcome as
			// the evaluator catching it.
			s.metrics.Refused(refusalReason(err))
		}
		return domain.Request{}, fmt.Errorf("service.BookingService.Submit: %w", err)
	}

	s.metrics.Submitted()
	return created, nil
}

// Approve moves a pending request into the enrolled list.
// Only the guide who owns the trip may approve; anyone else gets
// domain.ErrForbidden. Capacity is re-checked at decision time so a guide
// cannot over-enroll by approving more requests than there are seats.
func (s *BookingService) Approve(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error) {
	trip, err := s.loadOwnedAggregate(ctx, guideID, tripID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.BookingService.Approve: %w", err)
	}

	if _, err := booking.Approve(trip, clientID); err != nil {
		s.metrics.Refused(refusalReason(err))
		return domain.Request{}, fmt.Errorf("service.BookingService.Approve: %w", err)
	}

	decided, err := s.requests.Decide(ctx, tripID, clientID, domain.StatusEnrolled)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.BookingService.Approve: %w", err)
	}

	s.metrics.Approved()
	return decided, nil
}

// Reject removes a pending request. The client is not enrolled; the decided
// row is kept with status rejected as an audit record.
// Only the guide who owns the trip may reject.
func (s *BookingService) Reject(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error) {
	trip, err := s.loadOwnedAggregate(ctx, guideID, tripID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.BookingService.Reject: %w", err)
	}

	if _, err := booking.Reject(trip, clientID); err != nil {
		s.metrics.Refused(refusalReason(err))
		return domain.Request{}, fmt.Errorf("service.BookingService.Reject: %w", err)
	}

	decided, err := s.requests.Decide(ctx, tripID, clientID, domain.StatusRejected)
	if err != nil {
		return domain.Request{}, fmt.Errorf("service.BookingService.Reject: %w", err)
	}

	s.metrics.Rejected()
	return decided, nil
}

// ListRequests returns a trip's requests for the owning guide, optionally
// filtered by status. Always returns a non-nil slice.
func (s *BookingService) ListRequests(ctx context.Context, guideID, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListRequests: %w", err)
	}
	if trip.GuideID != guideID {
		return nil, fmt.Errorf("service.BookingService.ListRequests: %w", domain.ErrForbidden)
	}

	reqs, err := s.requests.ListByTrip(ctx, tripID, status)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListRequests: %w", err)
	}
	if reqs == nil {
		return []domain.Request{}, nil
	}
	return reqs, nil
}

// loadAggregate fetches a trip with its active requests attached.
func (s *BookingService) loadAggregate(ctx context.Context, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	return attachRequests(ctx, s.requests, trip)
}

// loadOwnedAggregate fetches the aggregate and verifies guide ownership.
func (s *BookingService) loadOwnedAggregate(ctx context.Context, guideID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.loadAggregate(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	if trip.GuideID != guideID {
		return domain.Trip{}, domain.ErrForbidden
	}
	return trip, nil
}

// refusalReason maps a booking rejection to its metric label.
func refusalReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateRequest):
		return "duplicate"
	case errors.Is(err, domain.ErrOutOfWindow):
		return "out_of_window"
	case errors.Is(err, domain.ErrTripFull):
		return "full"
	case errors.Is(err, domain.ErrNotPending):
		return "not_pending"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	default:
		return "other"
	}
}

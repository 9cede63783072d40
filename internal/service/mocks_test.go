package service_test

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs. This is idiomatic Go:
// no mock generation library required for simple cases.

import (
	"context"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/repo"
)

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error)
	listAll func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error) {
	return m.list(ctx, p, activity)
}
func (m *mockTripRepo) ListAll(ctx context.Context) ([]domain.Trip, error) {
	return m.listAll(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockRequestRepo struct {
	create           func(ctx context.Context, req domain.Request) (domain.Request, error)
	listByTrip       func(ctx context.Context, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error)
	listActiveByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Request, error)
	listAll          func(ctx context.Context) ([]domain.Request, error)
	decide           func(ctx context.Context, tripID, clientID uuid.UUID, to domain.RequestStatus) (domain.Request, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, req domain.Request) (domain.Request, error) {
	return m.create(ctx, req)
}
func (m *mockRequestRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error) {
	return m.listByTrip(ctx, tripID, status)
}
func (m *mockRequestRepo) ListActiveByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Request, error) {
	return m.listActiveByTrip(ctx, tripID)
}
func (m *mockRequestRepo) ListAll(ctx context.Context) ([]domain.Request, error) {
	return m.listAll(ctx)
}
func (m *mockRequestRepo) Decide(ctx context.Context, tripID, clientID uuid.UUID, to domain.RequestStatus) (domain.Request, error) {
	return m.decide(ctx, tripID, clientID, to)
}

var _ repo.RequestRepo = (*mockRequestRepo)(nil)

type mockClientRepo struct {
	create  func(ctx context.Context, client domain.Client) (domain.Client, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Client, error)
}

func (m *mockClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	return m.create(ctx, client)
}
func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	return m.getByID(ctx, id)
}

var _ repo.ClientRepo = (*mockClientRepo)(nil)

type mockGuideRepo struct {
	getByID func(ctx context.Context, id uuid.UUID) (domain.Guide, error)
	list    func(ctx context.Context) ([]domain.Guide, error)
}

func (m *mockGuideRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Guide, error) {
	return m.getByID(ctx, id)
}
func (m *mockGuideRepo) List(ctx context.Context) ([]domain.Guide, error) {
	return m.list(ctx)
}

var _ repo.GuideRepo = (*mockGuideRepo)(nil)

type mockReviewRepo struct {
	create      func(ctx context.Context, review domain.Review) (domain.Review, error)
	listByGuide func(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	return m.create(ctx, review)
}
func (m *mockReviewRepo) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error) {
	return m.listByGuide(ctx, guideID)
}

var _ repo.ReviewRepo = (*mockReviewRepo)(nil)

// noActiveRequests is a request repo stub for tests that only need the
// aggregate loader to succeed with an empty working set.
func noActiveRequests() *mockRequestRepo {
	return &mockRequestRepo{
		listActiveByTrip: func(_ context.Context, _ uuid.UUID) ([]domain.Request, error) {
			return nil, nil
		},
	}
}

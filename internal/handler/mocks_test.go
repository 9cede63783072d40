package handler_test

// Hand-written test doubles for the handler-side service interfaces.
// Each method is a function field; set only the ones your test needs.

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/handler"
)

type mockCatalog struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, guideID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, guideID, tripID uuid.UUID) error
}

func (m *mockCatalog) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockCatalog) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockCatalog) ListPaged(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, p, activity)
}
func (m *mockCatalog) Update(ctx context.Context, guideID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, guideID, trip)
}
func (m *mockCatalog) Delete(ctx context.Context, guideID, tripID uuid.UUID) error {
	return m.delete(ctx, guideID, tripID)
}

var _ handler.CatalogServicer = (*mockCatalog)(nil)

type mockBooking struct {
	submit       func(ctx context.Context, tripID, clientID uuid.UUID, date time.Time) (domain.Request, error)
	approve      func(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error)
	reject       func(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error)
	listRequests func(ctx context.Context, guideID, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error)
}

func (m *mockBooking) Submit(ctx context.Context, tripID, clientID uuid.UUID, date time.Time) (domain.Request, error) {
	return m.submit(ctx, tripID, clientID, date)
}
func (m *mockBooking) Approve(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error) {
	return m.approve(ctx, guideID, tripID, clientID)
}
func (m *mockBooking) Reject(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error) {
	return m.reject(ctx, guideID, tripID, clientID)
}
func (m *mockBooking) ListRequests(ctx context.Context, guideID, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error) {
	return m.listRequests(ctx, guideID, tripID, status)
}

var _ handler.BookingServicer = (*mockBooking)(nil)

type mockProfiles struct {
	getClient  func(ctx context.Context, id uuid.UUID) (domain.Client, error)
	getGuide   func(ctx context.Context, id uuid.UUID) (domain.Guide, error)
	listGuides func(ctx context.Context) ([]domain.Guide, error)
}

func (m *mockProfiles) GetClient(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	return m.getClient(ctx, id)
}
func (m *mockProfiles) GetGuide(ctx context.Context, id uuid.UUID) (domain.Guide, error) {
	return m.getGuide(ctx, id)
}
func (m *mockProfiles) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	return m.listGuides(ctx)
}

var _ handler.ProfileServicer = (*mockProfiles)(nil)

type mockReviews struct {
	create      func(ctx context.Context, guideID, clientID uuid.UUID, rating int, comment string) (domain.Review, error)
	listByGuide func(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error)
}

func (m *mockReviews) Create(ctx context.Context, guideID, clientID uuid.UUID, rating int, comment string) (domain.Review, error) {
	return m.create(ctx, guideID, clientID, rating, comment)
}
func (m *mockReviews) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error) {
	return m.listByGuide(ctx, guideID)
}

var _ handler.ReviewServicer = (*mockReviews)(nil)

type mockStats struct {
	increment func(ctx context.Context, page string) (int64, error)
	get       func(ctx context.Context, page string) (int64, error)
}

func (m *mockStats) Increment(ctx context.Context, page string) (int64, error) {
	return m.increment(ctx, page)
}
func (m *mockStats) Get(ctx context.Context, page string) (int64, error) {
	return m.get(ctx, page)
}

var _ handler.StatsServicer = (*mockStats)(nil)

type mockExport struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExport) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExport)(nil)

// deps bundles the mocks for one test server. Zero-value fields are fine for
// endpoints the test never touches.
type deps struct {
	catalog  *mockCatalog
	bookings *mockBooking
	profiles *mockProfiles
	reviews  *mockReviews
	stats    *mockStats
	export   *mockExport
}

// newTestServer mounts a full router around the given mocks and returns an
// httptest server. Routing runs exactly as in production, so path parameter
// extraction is covered too.
func newTestServer(d deps) *httptest.Server {
	if d.catalog == nil {
		d.catalog = &mockCatalog{}
	}
	if d.bookings == nil {
		d.bookings = &mockBooking{}
	}
	if d.profiles == nil {
		d.profiles = &mockProfiles{}
	}
	if d.reviews == nil {
		d.reviews = &mockReviews{}
	}
	if d.stats == nil {
		d.stats = &mockStats{}
	}
	if d.export == nil {
		d.export = &mockExport{}
	}

	srv := handler.NewServer(d.catalog, d.bookings, d.profiles, d.reviews, d.stats, d.export)
	r := chi.NewRouter()
	srv.Register(r)
	return httptest.NewServer(r)
}

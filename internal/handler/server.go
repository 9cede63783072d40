// Package handler implements the HTTP handlers for the AlpinaConnect API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, booking.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
)

// CatalogServicer defines the trip-catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CatalogServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error)
	Update(ctx context.Context, guideID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, guideID, tripID uuid.UUID) error
}

// BookingServicer defines the request-workflow operations.
type BookingServicer interface {
	Submit(ctx context.Context, tripID, clientID uuid.UUID, date time.Time) (domain.Request, error)
	Approve(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error)
	Reject(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error)
	ListRequests(ctx context.Context, guideID, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error)
}

// ProfileServicer defines client/guide profile reads.
type ProfileServicer interface {
	GetClient(ctx context.Context, id uuid.UUID) (domain.Client, error)
	GetGuide(ctx context.Context, id uuid.UUID) (domain.Guide, error)
	ListGuides(ctx context.Context) ([]domain.Guide, error)
}

// ReviewServicer defines guide-review operations.
type ReviewServicer interface {
	Create(ctx context.Context, guideID, clientID uuid.UUID, rating int, comment string) (domain.Review, error)
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]domain.Review, error)
}

// StatsServicer defines the page-view counter operations.
type StatsServicer interface {
	Increment(ctx context.Context, page string) (int64, error)
	Get(ctx context.Context, page string) (int64, error)
}

// ExportServicer defines the full-data export.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handlers' dependencies. Wire it in main.go via Register.
type Server struct {
	catalog  CatalogServicer
	bookings BookingServicer
	profiles ProfileServicer
	reviews  ReviewServicer
	stats    StatsServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, bookings BookingServicer, profiles ProfileServicer,
	reviews ReviewServicer, stats StatsServicer, export ExportServicer) *Server {
	return &Server{
		catalog:  catalog,
		bookings: bookings,
		profiles: profiles,
		reviews:  reviews,
		stats:    stats,
		export:   export,
	}
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/requests", s.SubmitRequest)
			r.Get("/requests", s.ListRequests)
			r.Post("/requests/{clientID}/approve", s.ApproveRequest)
			r.Post("/requests/{clientID}/reject", s.RejectRequest)
		})
	})

	r.Get("/clients/{clientID}", s.GetClient)

	r.Route("/guides", func(r chi.Router) {
		r.Get("/", s.ListGuides)
		r.Get("/{guideID}", s.GetGuide)
		r.Get("/{guideID}/reviews", s.ListReviews)
		r.Post("/{guideID}/reviews", s.CreateReview)
	})

	r.Post("/stats/views/{page}", s.IncrementViews)
	r.Get("/stats/views/{page}", s.GetViews)

	r.Get("/export", s.Export)
}

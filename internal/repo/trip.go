// Package repo contains all database access logic for the AlpinaConnect API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/alpinaconnect/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation is the Postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// TripRepo defines the persistence operations for trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	// The Pending/Enrolled slices are not populated — the service layer
	// assembles the full aggregate from the request repo when it needs one.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns one page of trips ordered by available_from ascending,
	// plus the total row count for the filter. An empty activity matches all.
	List(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error)

	// ListAll returns every trip ordered by available_from ascending.
	// Used by the export assembler, which needs the whole catalog.
	ListAll(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, title, location, latitude, longitude,
	available_from, available_to, duration_days, price, difficulty, activity,
	description, equipment, guide_id, max_participants, image_url,
	created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (title, location, latitude, longitude,
			available_from, available_to, duration_days, price, difficulty,
			activity, description, equipment, guide_id, max_participants, image_url)
		VALUES (@title, @location, @latitude, @longitude,
			@available_from, @available_to, @duration_days, @price, @difficulty,
			@activity, @description, @equipment, @guide_id, @max_participants, @image_url)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of the catalog plus the total count for the filter.
// Soonest-opening trips come first, matching the marketplace ordering.
func (r *pgTripRepo) List(ctx context.Context, p domain.PaginationParams, activity string) ([]domain.Trip, int64, error) {
	const countQ = `
		SELECT count(*) FROM trips
		WHERE (@activity = '' OR activity = @activity)`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"activity": activity}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE (@activity = '' OR activity = @activity)
		ORDER BY available_from ASC, created_at ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"activity": activity,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, total, nil
}

// ListAll returns every trip in the catalog.
func (r *pgTripRepo) ListAll(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY available_from ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListAll: %w", err)
	}
	defer rows.Close()

	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListAll: %w", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET title            = @title,
		    location         = @location,
		    latitude         = @latitude,
		    longitude        = @longitude,
		    available_from   = @available_from,
		    available_to     = @available_to,
		    duration_days    = @duration_days,
		    price            = @price,
		    difficulty       = @difficulty,
		    activity         = @activity,
		    description      = @description,
		    equipment        = @equipment,
		    max_participants = @max_participants,
		    image_url        = @image_url,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := tripArgs(trip)
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key. Booking requests cascade.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs maps a domain.Trip's mutable fields to named SQL arguments.
func tripArgs(trip domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"title":            trip.Title,
		"location":         trip.Location,
		"latitude":         trip.Latitude,
		"longitude":        trip.Longitude,
		"available_from":   trip.AvailableFrom,
		"available_to":     trip.AvailableTo,
		"duration_days":    trip.DurationDays,
		"price":            trip.Price,
		"difficulty":       trip.Difficulty,
		"activity":         trip.Activity,
		"description":      trip.Description,
		"equipment":        trip.Equipment,
		"guide_id":         trip.GuideID,
		"max_participants": trip.MaxParticipants,
		"image_url":        trip.ImageURL,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and DATE conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t       domain.Trip
		id      pgtype.UUID
		guideID pgtype.UUID
		from    pgtype.Date
		to      pgtype.Date
	)

	err := s.Scan(&id, &t.Title, &t.Location, &t.Latitude, &t.Longitude,
		&from, &to, &t.DurationDays, &t.Price, &t.Difficulty, &t.Activity,
		&t.Description, &t.Equipment, &guideID, &t.MaxParticipants, &t.ImageURL,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.GuideID = uuid.UUID(guideID.Bytes)
	t.AvailableFrom = domain.Date(from.Time)
	t.AvailableTo = domain.Date(to.Time)
	return t, nil
}

// collectTrips drains rows into a slice, checking the iteration error.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

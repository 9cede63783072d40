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

// RequestRepo defines the persistence operations for booking requests.
//
// Requests are never deleted: a decision flips the status column, so the
// table doubles as the audit trail for everything a guide has turned down.
// A partial unique index on (trip_id, client_id) over pending/enrolled rows
// backs the duplicate-request invariant at the storage layer, closing the
// race between two concurrent submits that both saw a clean snapshot.
type RequestRepo interface {
	// Create inserts a pending request and returns the persisted record.
	// Returns domain.ErrDuplicateRequest if the client already has an active
	// (pending or enrolled) request on the trip.
	Create(ctx context.Context, req domain.Request) (domain.Request, error)

	// ListByTrip returns the trip's requests ordered by submission time.
	// An empty status matches all three states.
	ListByTrip(ctx context.Context, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error)

	// ListActiveByTrip returns the trip's pending and enrolled requests,
	// ordered by submission time. This is the working set for transitions.
	ListActiveByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Request, error)

	// ListAll returns every request across all trips, ordered by trip then
	// submission time. Used by the export assembler.
	ListAll(ctx context.Context) ([]domain.Request, error)

	// Decide flips a request from pending to the given decided status,
	// stamping decided_at, and returns the updated record.
	// Returns domain.ErrNotPending when the client has no pending request on
	// the trip — including when a concurrent decision got there first, since
	// the UPDATE is guarded by status = 'pending'.
	Decide(ctx context.Context, tripID, clientID uuid.UUID, to domain.RequestStatus) (domain.Request, error)
}

// pgRequestRepo is the Postgres implementation of RequestRepo.
type pgRequestRepo struct {
	db db
}

// NewRequestRepo constructs a RequestRepo backed by the provided db connection.
func NewRequestRepo(db db) RequestRepo {
	return &pgRequestRepo{db: db}
}

const requestColumns = `id, trip_id, client_id, client_name, requested_date,
	status, created_at, updated_at, decided_at`

// Create inserts a pending request row.
func (r *pgRequestRepo) Create(ctx context.Context, req domain.Request) (domain.Request, error) {
	const q = `
		INSERT INTO booking_requests (trip_id, client_id, client_name, requested_date, status)
		VALUES (@trip_id, @client_id, @client_name, @requested_date, @status)
		RETURNING ` + requestColumns

	args := pgx.NamedArgs{
		"trip_id":        req.TripID,
		"client_id":      req.ClientID,
		"client_name":    req.ClientName,
		"requested_date": req.RequestedDate,
		"status":         string(domain.StatusPending),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRequest(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Request{}, fmt.Errorf("repo.RequestRepo.Create: %w", domain.ErrDuplicateRequest)
		}
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.Create: %w", err)
	}
	return result, nil
}

// ListByTrip returns the trip's requests, optionally filtered by status.
func (r *pgRequestRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, status domain.RequestStatus) ([]domain.Request, error) {
	const q = `
		SELECT ` + requestColumns + `
		FROM booking_requests
		WHERE trip_id = @trip_id
		  AND (@status = '' OR status = @status)
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID, "status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("repo.RequestRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	reqs, err := collectRequests(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.RequestRepo.ListByTrip: %w", err)
	}
	return reqs, nil
}

// ListActiveByTrip returns the pending and enrolled requests for a trip.
func (r *pgRequestRepo) ListActiveByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Request, error) {
	const q = `
		SELECT ` + requestColumns + `
		FROM booking_requests
		WHERE trip_id = @trip_id
		  AND status IN ('pending', 'enrolled')
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.RequestRepo.ListActiveByTrip: %w", err)
	}
	defer rows.Close()

	reqs, err := collectRequests(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.RequestRepo.ListActiveByTrip: %w", err)
	}
	return reqs, nil
}

// ListAll returns every booking request in the system.
func (r *pgRequestRepo) ListAll(ctx context.Context) ([]domain.Request, error) {
	const q = `
		SELECT ` + requestColumns + `
		FROM booking_requests
		ORDER BY trip_id, created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RequestRepo.ListAll: %w", err)
	}
	defer rows.Close()

	reqs, err := collectRequests(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.RequestRepo.ListAll: %w", err)
	}
	return reqs, nil
}

// Decide flips a pending request to its decided status.
// The WHERE status = 'pending' guard makes concurrent double-decisions lose
// cleanly: whichever UPDATE runs second affects zero rows.
func (r *pgRequestRepo) Decide(ctx context.Context, tripID, clientID uuid.UUID, to domain.RequestStatus) (domain.Request, error) {
	const q = `
		UPDATE booking_requests
		SET status     = @to,
		    decided_at = now(),
		    updated_at = now()
		WHERE trip_id   = @trip_id
		  AND client_id = @client_id
		  AND status    = 'pending'
		RETURNING ` + requestColumns

	args := pgx.NamedArgs{
		"trip_id":   tripID,
		"client_id": clientID,
		"to":        string(to),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Request{}, fmt.Errorf("repo.RequestRepo.Decide: %w", domain.ErrNotPending)
		}
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.Decide: %w", err)
	}
	return result, nil
}

// scanRequest maps a single database row into a domain.Request.
func scanRequest(s scanner) (domain.Request, error) {
	var (
		req      domain.Request
		id       pgtype.UUID
		tripID   pgtype.UUID
		clientID pgtype.UUID
		date     pgtype.Date
		status   string
	)

	err := s.Scan(&id, &tripID, &clientID, &req.ClientName, &date,
		&status, &req.CreatedAt, &req.UpdatedAt, &req.DecidedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Request{}, domain.ErrNotFound
		}
		return domain.Request{}, err
	}

	req.ID = uuid.UUID(id.Bytes)
	req.TripID = uuid.UUID(tripID.Bytes)
	req.ClientID = uuid.UUID(clientID.Bytes)
	req.RequestedDate = domain.Date(date.Time)
	req.Status = domain.RequestStatus(status)
	return req, nil
}

// collectRequests drains rows into a slice, checking the iteration error.
func collectRequests(rows pgx.Rows) ([]domain.Request, error) {
	var reqs []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return reqs, nil
}

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

// ClientRepo defines the persistence operations for clients.
type ClientRepo interface {
	// Create inserts a new client and returns the persisted record.
	Create(ctx context.Context, client domain.Client) (domain.Client, error)

	// GetByID retrieves a single client by its UUID primary key.
	// Returns domain.ErrNotFound if no client with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

// Create inserts a new client row. The profile payload is stored verbatim.
func (r *pgClientRepo) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	const q = `
		INSERT INTO clients (name, email, profile)
		VALUES (@name, @email, @profile)
		RETURNING id, name, email, profile, created_at`

	args := pgx.NamedArgs{
		"name":    client.Name,
		"email":   client.Email,
		"profile": client.Profile,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanClient(row)
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a client by primary key.
func (r *pgClientRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	const q = `
		SELECT id, name, email, profile, created_at
		FROM clients
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanClient(row)
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return result, nil
}

// scanClient maps a single database row into a domain.Client.
func scanClient(s scanner) (domain.Client, error) {
	var (
		c  domain.Client
		id pgtype.UUID
	)

	err := s.Scan(&id, &c.Name, &c.Email, &c.Profile, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}

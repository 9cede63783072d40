package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks where a booking request sits in its lifecycle.
// The per-client state machine is pending → enrolled or pending → rejected;
// both outcomes are terminal. Rejected requests are kept as an audit record
// rather than deleted, so a guide can see what they turned down.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusEnrolled RequestStatus = "enrolled"
	StatusRejected RequestStatus = "rejected"
)

// Request is a client's intent to join a trip on a specific date.
// ClientName is denormalized from the client record at submission time so
// guide-facing listings don't need a join.
//
// RequestedDate is an inclusive calendar date and must fall inside the
// owning trip's availability window; the booking core enforces this before
// a request is ever persisted.
type Request struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	ClientID      uuid.UUID
	ClientName    string
	RequestedDate time.Time
	Status        RequestStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DecidedAt     *time.Time // nil while pending
}

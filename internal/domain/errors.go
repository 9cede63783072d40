package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, availability window reversed).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the acting guide does not own the trip being
// modified. Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// Booking rejection reasons. These are the outcomes the availability
// evaluator and the approval workflow can produce; all are locally
// recoverable and map to HTTP 409 Conflict.

// ErrDuplicateRequest means the client already has a pending request or an
// enrollment on this trip. Terminal for the attempt — no retry will help.
var ErrDuplicateRequest = errors.New("duplicate request")

// ErrOutOfWindow means the requested date falls outside the trip's
// availability window. The client may resubmit with a corrected date.
var ErrOutOfWindow = errors.New("requested date outside availability window")

// ErrTripFull means the trip already has max_participants enrolled clients.
var ErrTripFull = errors.New("trip is full")

// ErrNotPending means a guide tried to approve or reject a client who is not
// in the pending set — typically because the request was already decided.
// Callers should refresh trip state before retrying.
var ErrNotPending = errors.New("client has no pending request")

// ErrCapacityExceeded means an approval would push enrollment past
// max_participants. Unlike ErrTripFull it is raised at decision time,
// guarding against a guide approving more pending requests than seats.
var ErrCapacityExceeded = errors.New("approval would exceed trip capacity")

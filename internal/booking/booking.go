// Package booking implements the pure state-transition core of the
// AlpinaConnect request workflow. Every function takes a trip snapshot and
// returns a new snapshot; callers own persistence. Nothing here touches a
// database, a clock, or a logger, which keeps the invariants testable in
// isolation.
//
// The per-client lifecycle on a trip is:
//
//	NoRequest → Pending → Enrolled   (Submit, then Approve)
//	NoRequest → Pending → Rejected   (Submit, then Reject)
//
// Enrolled and Rejected are terminal for the decided request. A rejected
// client no longer appears in the trip's active lists, so they may submit
// again; the persistence layer keeps the rejected row as an audit record.
package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
)

// CanRequest reports whether a client may request the given date on a trip.
// It is a pure predicate over the trip snapshot — no side effects.
//
// Rejection reasons are mutually exclusive and checked in a fixed order,
// first match wins:
//
//  1. domain.ErrDuplicateRequest — the client is already pending or enrolled.
//  2. domain.ErrOutOfWindow — the date is outside [AvailableFrom, AvailableTo].
//  3. domain.ErrTripFull — enrollment already reached MaxParticipants.
//
// A nil return means the request is acceptable.
func CanRequest(trip domain.Trip, clientID uuid.UUID, date time.Time) error {
	if hasClient(trip.Pending, clientID) || hasClient(trip.Enrolled, clientID) {
		return domain.ErrDuplicateRequest
	}
	if date.Before(trip.AvailableFrom) || date.After(trip.AvailableTo) {
		return domain.ErrOutOfWindow
	}
	if len(trip.Enrolled) >= trip.MaxParticipants {
		return domain.ErrTripFull
	}
	return nil
}

// Submit appends a pending request for the client to the trip.
// On any rejection the original trip is returned unchanged alongside the
// rejection reason. On success the returned trip carries a new pending
// request annotated with the requested date, appended at the end —
// submission order is preserved, there is no priority logic.
//
// The input trip is never mutated: the pending slice is copied before the
// append, so callers holding the old snapshot see no change.
func Submit(trip domain.Trip, client domain.Client, date time.Time) (domain.Trip, error) {
	if err := CanRequest(trip, client.ID, date); err != nil {
		return trip, err
	}

	req := domain.Request{
		TripID:        trip.ID,
		ClientID:      client.ID,
		ClientName:    client.Name,
		RequestedDate: date,
		Status:        domain.StatusPending,
	}
	trip.Pending = append(copyRequests(trip.Pending), req)
	return trip, nil
}

// Approve moves the client's pending request into the enrolled list,
// preserving the requested-date annotation.
//
// Returns domain.ErrNotPending if the client has no pending request — a
// second approval of the same client fails rather than enrolling twice.
// Returns domain.ErrCapacityExceeded if enrollment is already at
// MaxParticipants; a guide cannot over-enroll a trip by approving more
// pending requests than there are seats.
func Approve(trip domain.Trip, clientID uuid.UUID) (domain.Trip, error) {
	i := indexOf(trip.Pending, clientID)
	if i < 0 {
		return trip, domain.ErrNotPending
	}
	if len(trip.Enrolled) >= trip.MaxParticipants {
		return trip, domain.ErrCapacityExceeded
	}

	req := trip.Pending[i]
	req.Status = domain.StatusEnrolled

	trip.Pending = removeAt(trip.Pending, i)
	trip.Enrolled = append(copyRequests(trip.Enrolled), req)
	return trip, nil
}

// Reject removes the client's pending request from the trip. The client is
// not enrolled and does not reappear in any active list. Persistence keeps
// the decided row with status rejected so the decision is auditable.
//
// Returns domain.ErrNotPending if the client has no pending request, so
// re-invoking after a decision is a safe no-op failure.
func Reject(trip domain.Trip, clientID uuid.UUID) (domain.Trip, error) {
	i := indexOf(trip.Pending, clientID)
	if i < 0 {
		return trip, domain.ErrNotPending
	}
	trip.Pending = removeAt(trip.Pending, i)
	return trip, nil
}

// hasClient reports whether any request in rs belongs to clientID.
func hasClient(rs []domain.Request, clientID uuid.UUID) bool {
	return indexOf(rs, clientID) >= 0
}

// indexOf returns the position of clientID's request in rs, or -1.
func indexOf(rs []domain.Request, clientID uuid.UUID) int {
	for i, r := range rs {
		if r.ClientID == clientID {
			return i
		}
	}
	return -1
}

// copyRequests returns a fresh slice with the same elements.
// Transitions copy before appending so snapshots held by callers stay intact.
func copyRequests(rs []domain.Request) []domain.Request {
	out := make([]domain.Request, len(rs))
	copy(out, rs)
	return out
}

// removeAt returns a copy of rs without the element at index i,
// preserving the order of the remaining elements.
func removeAt(rs []domain.Request, i int) []domain.Request {
	out := make([]domain.Request, 0, len(rs)-1)
	out = append(out, rs[:i]...)
	return append(out, rs[i+1:]...)
}

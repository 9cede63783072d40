package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpinaconnect/backend/internal/booking"
	"github.com/alpinaconnect/backend/internal/domain"
)

// day returns the calendar date offset days from a fixed anchor.
// Using a fixed anchor instead of time.Now keeps the tests deterministic.
func day(offset int) time.Time {
	anchor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return anchor.AddDate(0, 0, offset)
}

// tripFixture mirrors the marketplace's first seed trip: window from two days
// ago to 25 days out, four seats, one client already enrolled.
func tripFixture() (domain.Trip, domain.Client) {
	enrolled := domain.Client{ID: uuid.New(), Name: "Elena Bianchi"}
	trip := domain.Trip{
		ID:              uuid.New(),
		Title:           "Freeride a Courmayeur",
		AvailableFrom:   day(-2),
		AvailableTo:     day(25),
		MaxParticipants: 4,
		Enrolled: []domain.Request{{
			TripID:        uuid.New(),
			ClientID:      enrolled.ID,
			ClientName:    enrolled.Name,
			RequestedDate: day(1),
			Status:        domain.StatusEnrolled,
		}},
	}
	return trip, enrolled
}

func clientFixture(name string) domain.Client {
	return domain.Client{ID: uuid.New(), Name: name}
}

// ---- CanRequest ------------------------------------------------------------

func TestCanRequest_OK(t *testing.T) {
	trip, _ := tripFixture()

	err := booking.CanRequest(trip, uuid.New(), day(2))

	assert.NoError(t, err)
}

func TestCanRequest_WindowBoundsInclusive(t *testing.T) {
	trip, _ := tripFixture()

	assert.NoError(t, booking.CanRequest(trip, uuid.New(), trip.AvailableFrom),
		"first day of the window is bookable")
	assert.NoError(t, booking.CanRequest(trip, uuid.New(), trip.AvailableTo),
		"last day of the window is bookable")
}

func TestCanRequest_BeforeWindow(t *testing.T) {
	trip, _ := tripFixture()

	err := booking.CanRequest(trip, uuid.New(), day(-3))

	assert.ErrorIs(t, err, domain.ErrOutOfWindow)
}

func TestCanRequest_AfterWindow(t *testing.T) {
	trip, _ := tripFixture()

	err := booking.CanRequest(trip, uuid.New(), day(26))

	assert.ErrorIs(t, err, domain.ErrOutOfWindow)
}

func TestCanRequest_DuplicateEnrolled(t *testing.T) {
	trip, enrolled := tripFixture()

	err := booking.CanRequest(trip, enrolled.ID, day(10))

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestCanRequest_DuplicatePending(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")
	trip, err := booking.Submit(trip, client, day(2))
	require.NoError(t, err)

	err = booking.CanRequest(trip, client.ID, day(2))

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

// Duplicate wins over an out-of-window date: the rejection reasons are
// checked in a fixed order and the first match is reported.
func TestCanRequest_DuplicateBeatsOutOfWindow(t *testing.T) {
	trip, enrolled := tripFixture()

	err := booking.CanRequest(trip, enrolled.ID, day(-30))

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestCanRequest_Full(t *testing.T) {
	trip, _ := tripFixture()
	trip.MaxParticipants = 1 // the one enrolled client fills the trip

	err := booking.CanRequest(trip, uuid.New(), day(2))

	assert.ErrorIs(t, err, domain.ErrTripFull)
}

// Out-of-window wins over a full trip for a new client.
func TestCanRequest_OutOfWindowBeatsFull(t *testing.T) {
	trip, _ := tripFixture()
	trip.MaxParticipants = 1

	err := booking.CanRequest(trip, uuid.New(), day(30))

	assert.ErrorIs(t, err, domain.ErrOutOfWindow)
}

// ---- Submit ----------------------------------------------------------------

func TestSubmit_AppendsPending(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")

	got, err := booking.Submit(trip, client, day(2))

	require.NoError(t, err)
	require.Len(t, got.Pending, 1)
	assert.Equal(t, client.ID, got.Pending[0].ClientID)
	assert.Equal(t, client.Name, got.Pending[0].ClientName)
	assert.True(t, got.Pending[0].RequestedDate.Equal(day(2)))
	assert.Equal(t, domain.StatusPending, got.Pending[0].Status)
	assert.Len(t, got.Enrolled, 1, "enrollment is untouched by a submit")
}

func TestSubmit_PreservesOrder(t *testing.T) {
	trip, _ := tripFixture()
	first := clientFixture("Mario Rossi")
	second := clientFixture("Roberto Verdi")

	trip, err := booking.Submit(trip, first, day(2))
	require.NoError(t, err)
	trip, err = booking.Submit(trip, second, day(3))
	require.NoError(t, err)

	require.Len(t, trip.Pending, 2)
	assert.Equal(t, first.ID, trip.Pending[0].ClientID, "requests keep submission order")
	assert.Equal(t, second.ID, trip.Pending[1].ClientID)
}

func TestSubmit_RejectionLeavesTripUnchanged(t *testing.T) {
	trip, _ := tripFixture()

	got, err := booking.Submit(trip, clientFixture("Mario Rossi"), day(40))

	assert.ErrorIs(t, err, domain.ErrOutOfWindow)
	assert.Equal(t, trip, got, "a rejected submit returns the original snapshot")
}

func TestSubmit_SecondSubmitIsDuplicate(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")

	trip, err := booking.Submit(trip, client, day(2))
	require.NoError(t, err)

	// Same client again, even with a different valid date.
	_, err = booking.Submit(trip, client, day(5))

	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
}

func TestSubmit_DoesNotMutateInput(t *testing.T) {
	trip, _ := tripFixture()
	before := len(trip.Pending)

	_, err := booking.Submit(trip, clientFixture("Mario Rossi"), day(2))

	require.NoError(t, err)
	assert.Len(t, trip.Pending, before, "the caller's snapshot must not grow")
}

// ---- Approve ---------------------------------------------------------------

func TestApprove_MovesPendingToEnrolled(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")
	trip, err := booking.Submit(trip, client, day(2))
	require.NoError(t, err)

	got, err := booking.Approve(trip, client.ID)

	require.NoError(t, err)
	assert.Empty(t, got.Pending)
	require.Len(t, got.Enrolled, 2)
	moved := got.Enrolled[1]
	assert.Equal(t, client.ID, moved.ClientID)
	assert.Equal(t, domain.StatusEnrolled, moved.Status)
	assert.True(t, moved.RequestedDate.Equal(day(2)), "requested date survives the move")
}

func TestApprove_NotPending(t *testing.T) {
	trip, _ := tripFixture()

	got, err := booking.Approve(trip, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotPending)
	assert.Equal(t, trip, got)
}

func TestApprove_AlreadyEnrolledIsNotPending(t *testing.T) {
	trip, enrolled := tripFixture()

	_, err := booking.Approve(trip, enrolled.ID)

	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestApprove_CapacityExceeded(t *testing.T) {
	trip, _ := tripFixture()
	trip.MaxParticipants = 2
	a := clientFixture("Mario Rossi")
	b := clientFixture("Roberto Verdi")

	trip, err := booking.Submit(trip, a, day(2))
	require.NoError(t, err)
	trip, err = booking.Submit(trip, b, day(3))
	require.NoError(t, err)

	// Seat 2 of 2 goes to a.
	trip, err = booking.Approve(trip, a.ID)
	require.NoError(t, err)

	// No seat left for b, even though the request is pending.
	got, err := booking.Approve(trip, b.ID)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, got.Pending, 1, "the pending request survives a capacity refusal")
	assert.Len(t, got.Enrolled, 2)
}

// ---- Reject ----------------------------------------------------------------

func TestReject_RemovesPending(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")
	trip, err := booking.Submit(trip, client, day(2))
	require.NoError(t, err)

	got, err := booking.Reject(trip, client.ID)

	require.NoError(t, err)
	assert.Empty(t, got.Pending)
	assert.Len(t, got.Enrolled, 1, "a rejected client is never enrolled")
}

func TestReject_NotPending(t *testing.T) {
	trip, _ := tripFixture()

	got, err := booking.Reject(trip, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotPending)
	assert.Equal(t, trip, got)
}

func TestReject_ClientMaySubmitAgain(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")

	trip, err := booking.Submit(trip, client, day(2))
	require.NoError(t, err)
	trip, err = booking.Reject(trip, client.ID)
	require.NoError(t, err)

	// Once off the active lists the client can try a different date.
	trip, err = booking.Submit(trip, client, day(5))

	require.NoError(t, err)
	assert.Len(t, trip.Pending, 1)
}

// ---- full scenario ---------------------------------------------------------

// Walks the submit → approve → stale reject sequence on the seed-style trip.
func TestWorkflow_SubmitApproveThenStaleReject(t *testing.T) {
	trip, _ := tripFixture()
	client := clientFixture("Mario Rossi")

	trip, err := booking.Submit(trip, client, day(2))
	require.NoError(t, err)
	require.Len(t, trip.Pending, 1)

	trip, err = booking.Approve(trip, client.ID)
	require.NoError(t, err)
	require.Empty(t, trip.Pending)
	require.Len(t, trip.Enrolled, 2)

	// The request was already decided — a late reject must fail cleanly.
	got, err := booking.Reject(trip, client.ID)

	assert.ErrorIs(t, err, domain.ErrNotPending)
	assert.Equal(t, trip, got, "a stale decision leaves the trip unchanged")
}

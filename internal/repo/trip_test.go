package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/repo"
	"github.com/alpinaconnect/backend/testutil"
)

// newTestTx opens a transaction against the test database. It is automatically
// rolled back when the test finishes, giving free per-test isolation — all
// repos built on top of it see each other's writes but leave no trace.
//
// Requires TEST_DATABASE_URL to be set; TestMain has already applied the
// migrations by the time any test runs.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// insertGuide creates a guide row directly and returns its id. Trips carry a
// NOT NULL guide FK, so every trip fixture needs one.
func insertGuide(t *testing.T, tx pgx.Tx) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := tx.QueryRow(context.Background(), `
		INSERT INTO guides (name, email, albo_number)
		VALUES ('Test Guide', 'guide-'||gen_random_uuid()||'@test.com', 'IT-XX-0000')
		RETURNING id`).Scan(&id)
	require.NoError(t, err, "insert guide fixture")
	return id
}

// insertClient creates a client row directly and returns its id.
func insertClient(t *testing.T, tx pgx.Tx, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := tx.QueryRow(context.Background(), `
		INSERT INTO clients (name, email)
		VALUES ($1, 'client-'||gen_random_uuid()||'@test.com')
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err, "insert client fixture")
	return id
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture(guideID uuid.UUID) domain.Trip {
	return domain.Trip{
		Title:           "Freeride a Courmayeur",
		Location:        "Courmayeur, AO",
		Latitude:        45.7969,
		Longitude:       6.9672,
		AvailableFrom:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:     time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		DurationDays:    1,
		Price:           350,
		Difficulty:      domain.DifficultyHard,
		Activity:        domain.ActivitySkiTouring,
		Description:     "Test description",
		Equipment:       []string{"ARTVA", "Shovel", "Probe"},
		GuideID:         guideID,
		MaxParticipants: 4,
	}
}

func TestTripRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	input := tripFixture(insertGuide(t, tx))
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Title, got.Title)
	assert.True(t, got.AvailableFrom.Equal(input.AvailableFrom), "AvailableFrom mismatch")
	assert.True(t, got.AvailableTo.Equal(input.AvailableTo), "AvailableTo mismatch")
	assert.Equal(t, input.Equipment, got.Equipment)
	assert.Equal(t, input.GuideID, got.GuideID)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(insertGuide(t, tx)))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_FilterAndOrder(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	guideID := insertGuide(t, tx)

	early := tripFixture(guideID)
	early.Title = "Opens First"

	late := tripFixture(guideID)
	late.Title = "Opens Later"
	late.AvailableFrom = early.AvailableFrom.AddDate(0, 1, 0)
	late.AvailableTo = early.AvailableTo.AddDate(0, 1, 0)

	climb := tripFixture(guideID)
	climb.Title = "Climbing Course"
	climb.Activity = domain.ActivityClimbing

	for _, trip := range []domain.Trip{late, early, climb} {
		_, err := r.Create(ctx, trip)
		require.NoError(t, err)
	}

	// Unfiltered: ordered by available_from ascending.
	trips, total, err := r.List(ctx, domain.PaginationParams{Page: 1, Limit: 10}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, trips, 3)
	assert.Equal(t, "Opens Later", trips[2].Title, "latest opening trip should come last")

	// Activity filter narrows both the page and the total.
	climbs, climbTotal, err := r.List(ctx, domain.PaginationParams{Page: 1, Limit: 10}, domain.ActivityClimbing)
	require.NoError(t, err)
	assert.EqualValues(t, 1, climbTotal)
	require.Len(t, climbs, 1)
	assert.Equal(t, "Climbing Course", climbs[0].Title)
}

func TestTripRepo_List_Pagination(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	guideID := insertGuide(t, tx)

	for i := 0; i < 5; i++ {
		trip := tripFixture(guideID)
		trip.AvailableFrom = trip.AvailableFrom.AddDate(0, 0, i)
		_, err := r.Create(ctx, trip)
		require.NoError(t, err)
	}

	page, total, err := r.List(ctx, domain.PaginationParams{Page: 2, Limit: 2}, "")

	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)
}

func TestTripRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(insertGuide(t, tx)))
	require.NoError(t, err)

	created.Title = "Updated Title"
	created.Price = 500
	created.Equipment = []string{"Crampons"}

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, 500, updated.Price)
	assert.Equal(t, []string{"Crampons"}, updated.Equipment)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	ghost := tripFixture(insertGuide(t, tx))
	ghost.ID = uuid.New()

	_, err := r.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(insertGuide(t, tx)))
	require.NoError(t, err)

	err = r.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

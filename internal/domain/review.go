package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a client's rating of a guide after a trip.
// Rating is an integer from 1 to 5 inclusive.
// AuthorName is denormalized from the client record at creation time.
type Review struct {
	ID         uuid.UUID
	GuideID    uuid.UUID
	ClientID   uuid.UUID
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Client is a person who books trips.
// Profile carries the sports passport, billing details and payment history
// as an opaque JSON payload: the booking core never reads or mutates it,
// it is stored and returned verbatim for the profile UI.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Profile   json.RawMessage
	CreatedAt time.Time
}

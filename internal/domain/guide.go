package domain

import (
	"time"

	"github.com/google/uuid"
)

// Guide is the professional who owns trips and decides booking requests.
// AlboNumber is the Italian professional-register number (Albo delle Guide
// Alpine) shown on the guide's public profile.
type Guide struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	AlboNumber string
	Bio        string
	AvatarURL  string
	Rating     float64
	CreatedAt  time.Time
}

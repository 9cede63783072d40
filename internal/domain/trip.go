// Package domain contains the core data types for the AlpinaConnect backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (booking, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a bookable guided activity offering.
// A trip is the top-level aggregate; booking requests belong to a trip.
//
// AvailableFrom and AvailableTo are inclusive calendar dates: a requested
// date equal to either bound is inside the availability window. Both are
// carried as UTC-midnight time.Time values (see date.go).
type Trip struct {
	ID              uuid.UUID
	Title           string
	Location        string
	Latitude        float64
	Longitude       float64
	AvailableFrom   time.Time
	AvailableTo     time.Time
	DurationDays    int
	Price           int // whole euros; the marketplace prices trips in round amounts
	Difficulty      string
	Activity        string
	Description     string
	Equipment       []string
	GuideID         uuid.UUID
	MaxParticipants int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Enrolled and Pending hold the trip's active booking requests, ordered
	// by submission time. They are populated by the service layer when a
	// transition needs the full aggregate and left nil for plain catalog
	// listings. Invariant: a client id appears in at most one of the two.
	Enrolled []Request
	Pending  []Request
}

// Difficulty grades, as displayed in the marketplace.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
	DifficultyExpert   = "expert"
)

// Activity types offered by guides.
const (
	ActivitySkiTouring     = "ski_touring"
	ActivityClimbing       = "climbing"
	ActivityHiking         = "hiking"
	ActivityMountaineering = "mountaineering"
	ActivityFreeride       = "freeride"
	ActivityIceClimbing    = "ice_climbing"
	ActivityCanyoning      = "canyoning"
)

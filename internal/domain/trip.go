// Package domain contains the core data types for the Tourist Trips API.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (store, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single packaged tourist trip offered by a travel agency.
// ID, CreatedAt, and UpdatedAt are server-assigned; ID and CreatedAt are
// immutable after creation, UpdatedAt is refreshed on every successful
// replace or patch.
type Trip struct {
	ID           uuid.UUID `json:"id"`
	Destination  string    `json:"destination"`
	Country      string    `json:"country"`
	TravelAgency string    `json:"travel_agency"`
	DurationDays int       `json:"duration_days"`
	Price        float64   `json:"price"`
	Rating       float64   `json:"rating"`
	GroupSize    int       `json:"group_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TripPatch carries a partial update for a trip. Nil fields are left
// untouched. There are deliberately no ID/CreatedAt/UpdatedAt fields:
// the first two are immutable and the store refreshes UpdatedAt itself.
type TripPatch struct {
	Destination  *string
	Country      *string
	TravelAgency *string
	DurationDays *int
	Price        *float64
	Rating       *float64
	GroupSize    *int
}

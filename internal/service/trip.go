// Package service contains the business logic for the Tourist Trips API.
// Services validate inputs and orchestrate store calls. No collection access
// lives here — services depend on the store interface, not the implementation.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
	"github.com/mkorolyov/tourist-trips/backend/internal/store"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	store store.TripStore
}

// NewTripService constructs a TripService backed by the provided TripStore.
func NewTripService(s store.TripStore) *TripService {
	return &TripService{store: s}
}

// Create validates and stores a new trip. The store assigns ID and timestamps.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return s.store.Create(ctx, trip)
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return s.store.GetByID(ctx, id)
}

// List returns all trips, optionally sorted by a known field.
// An unknown sortBy is not an error — the store falls back to insertion order.
func (s *TripService) List(ctx context.Context, sortBy string, descending bool) ([]domain.Trip, error) {
	trips, err := s.store.List(ctx, sortBy, descending)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Replace validates the full replacement record and swaps it in.
func (s *TripService) Replace(ctx context.Context, id uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Replace: %w", err)
	}
	return s.store.Replace(ctx, id, trip)
}

// Patch applies a partial update to an existing trip.
// An empty patch is allowed; it only refreshes updated_at.
func (s *TripService) Patch(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	return s.store.Patch(ctx, id, patch)
}

// Delete removes a trip and returns the removed record.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return s.store.Delete(ctx, id)
}

// Search returns trips matching the filter, in store order.
func (s *TripService) Search(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	trips, err := s.store.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Statistics returns the aggregate view over the current collection.
func (s *TripService) Statistics(ctx context.Context) (domain.Statistics, error) {
	return s.store.Statistics(ctx)
}

// Count returns the current number of trips.
func (s *TripService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// validateTrip enforces the required-field rules shared by Create and Replace.
// Numeric fields have no range rules; presence and type are enforced at the
// HTTP boundary where the JSON body is decoded.
func validateTrip(t domain.Trip) error {
	switch {
	case isBlank(t.Destination):
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	case isBlank(t.Country):
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	case isBlank(t.TravelAgency):
		return fmt.Errorf("%w: travel_agency is required", domain.ErrValidation)
	}
	return nil
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

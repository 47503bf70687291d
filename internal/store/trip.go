// Package store holds the in-memory trip collection for the Tourist Trips API.
// It is the only place records live: a single ordered slice guarded by one
// mutex, so every operation observes a consistent snapshot. No business logic
// lives here — only collection access and the query semantics over it.
package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
	"github.com/mkorolyov/tourist-trips/backend/internal/observability"
)

// TripStore defines the collection operations for Trips.
// The service layer depends on this interface, not the concrete in-memory
// implementation, which allows the service to be unit-tested with a mock.
type TripStore interface {
	// Seed replaces the collection contents with the fixed sample records.
	// Every seed record gets a fresh ID and identical created_at/updated_at
	// timestamps. Returns the number of records loaded.
	Seed(ctx context.Context) (int, error)

	// List returns all trips. If sortBy names a known trip field the result
	// is stably sorted by it (descending when requested); otherwise the
	// trips come back in insertion order.
	List(ctx context.Context, sortBy string, descending bool) ([]domain.Trip, error)

	// GetByID retrieves a single trip by its UUID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Create assigns a fresh ID and timestamps to the trip, appends it to
	// the collection, and returns the stored record.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Replace overwrites every mutable field of an existing trip with the
	// given record, keeping the original ID, CreatedAt, and position in the
	// collection. Returns domain.ErrNotFound if the ID does not exist.
	Replace(ctx context.Context, id uuid.UUID, trip domain.Trip) (domain.Trip, error)

	// Patch applies the non-nil fields of the patch to an existing trip and
	// refreshes UpdatedAt — even when the patch is empty. Returns the merged
	// record, or domain.ErrNotFound if the ID does not exist.
	Patch(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)

	// Delete removes a trip and returns the removed record.
	// Returns domain.ErrNotFound if the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Search returns the trips matching every supplied filter criterion,
	// in insertion order.
	Search(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)

	// Statistics aggregates min/max/average/sum/count for each numeric trip
	// field. An empty collection yields TripCount 0 and no per-field data.
	Statistics(ctx context.Context) (domain.Statistics, error)

	// Count returns the number of trips currently in the collection.
	Count(ctx context.Context) (int, error)
}

// seedTrips is the fixed sample data loaded at startup.
// IDs and timestamps are assigned at seed time, not here.
var seedTrips = []domain.Trip{
	{Destination: "Paris", Country: "France", TravelAgency: "GlobeWay Travel", DurationDays: 7, Price: 120000.0, Rating: 4.8, GroupSize: 15},
	{Destination: "Bali", Country: "Indonesia", TravelAgency: "Asia Voyages", DurationDays: 10, Price: 185000.0, Rating: 4.6, GroupSize: 12},
	{Destination: "Tokyo", Country: "Japan", TravelAgency: "Orient Line Tours", DurationDays: 8, Price: 220000.0, Rating: 4.9, GroupSize: 8},
	{Destination: "New York", Country: "USA", TravelAgency: "TransAtlantic Tours", DurationDays: 12, Price: 250000.0, Rating: 4.7, GroupSize: 20},
	{Destination: "Dubai", Country: "UAE", TravelAgency: "Orient Line Tours", DurationDays: 9, Price: 190000.0, Rating: 4.5, GroupSize: 18},
}

// memTripStore is the in-memory implementation of TripStore.
// trips is append-ordered; mu serialises every operation so that concurrent
// requests never interleave destructively. Lock hold times are negligible —
// nothing under the lock blocks on I/O.
type memTripStore struct {
	mu    sync.Mutex
	trips []domain.Trip
}

// NewTripStore constructs an empty TripStore. Call Seed to load sample data.
func NewTripStore() TripStore {
	return &memTripStore{}
}

// Seed replaces any prior contents with freshly stamped sample records.
func (s *memTripStore) Seed(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.trips = s.trips[:0]
	for _, t := range seedTrips {
		t.ID = uuid.New()
		t.CreatedAt = now
		t.UpdatedAt = now
		s.trips = append(s.trips, t)
	}

	observability.TripsInStore.Set(float64(len(s.trips)))
	return len(s.trips), nil
}

// sortKeys maps each sortable field name to a three-way comparison.
// A sortBy value absent from this map is silently ignored by List — the
// caller gets insertion order back, not an error.
var sortKeys = map[string]func(a, b domain.Trip) int{
	"id":            func(a, b domain.Trip) int { return strings.Compare(a.ID.String(), b.ID.String()) },
	"destination":   func(a, b domain.Trip) int { return strings.Compare(a.Destination, b.Destination) },
	"country":       func(a, b domain.Trip) int { return strings.Compare(a.Country, b.Country) },
	"travel_agency": func(a, b domain.Trip) int { return strings.Compare(a.TravelAgency, b.TravelAgency) },
	"duration_days": func(a, b domain.Trip) int { return compareInt(a.DurationDays, b.DurationDays) },
	"price":         func(a, b domain.Trip) int { return compareFloat(a.Price, b.Price) },
	"rating":        func(a, b domain.Trip) int { return compareFloat(a.Rating, b.Rating) },
	"group_size":    func(a, b domain.Trip) int { return compareInt(a.GroupSize, b.GroupSize) },
	"created_at":    func(a, b domain.Trip) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"updated_at":    func(a, b domain.Trip) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
}

// List returns a copy of the collection, sorted when sortBy names a known field.
func (s *memTripStore) List(ctx context.Context, sortBy string, descending bool) ([]domain.Trip, error) {
	s.mu.Lock()
	out := s.snapshot()
	s.mu.Unlock()

	cmp, ok := sortKeys[sortBy]
	if !ok {
		// Unknown or empty sort field: insertion order, no error.
		return out, nil
	}

	// Stable sort keeps ties in their prior relative order. Descending
	// negates the comparison rather than reversing the slice so that
	// stability is preserved either way.
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return cmp(out[i], out[j]) > 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out, nil
}

// GetByID retrieves a trip by its identifier.
func (s *memTripStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.GetByID: %w", domain.ErrNotFound)
	}
	return s.trips[i], nil
}

// Create stamps and appends a new trip.
func (s *memTripStore) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	trip.ID = uuid.New()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	s.trips = append(s.trips, trip)

	observability.TripsInStore.Set(float64(len(s.trips)))
	return trip, nil
}

// Replace swaps the whole record in place — fields absent from the new
// representation are not carried over from the old one.
func (s *memTripStore) Replace(ctx context.Context, id uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Replace: %w", domain.ErrNotFound)
	}

	trip.ID = id
	trip.CreatedAt = s.trips[i].CreatedAt
	trip.UpdatedAt = time.Now().UTC()
	s.trips[i] = trip
	return trip, nil
}

// Patch merges the supplied fields into the stored record.
// UpdatedAt is refreshed even when the patch changes nothing.
func (s *memTripStore) Patch(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Patch: %w", domain.ErrNotFound)
	}

	t := s.trips[i]
	if patch.Destination != nil {
		t.Destination = *patch.Destination
	}
	if patch.Country != nil {
		t.Country = *patch.Country
	}
	if patch.TravelAgency != nil {
		t.TravelAgency = *patch.TravelAgency
	}
	if patch.DurationDays != nil {
		t.DurationDays = *patch.DurationDays
	}
	if patch.Price != nil {
		t.Price = *patch.Price
	}
	if patch.Rating != nil {
		t.Rating = *patch.Rating
	}
	if patch.GroupSize != nil {
		t.GroupSize = *patch.GroupSize
	}
	t.UpdatedAt = time.Now().UTC()
	s.trips[i] = t
	return t, nil
}

// Delete removes a trip, preserving the order of the remaining records.
func (s *memTripStore) Delete(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.Delete: %w", domain.ErrNotFound)
	}

	removed := s.trips[i]
	s.trips = append(s.trips[:i], s.trips[i+1:]...)

	observability.TripsInStore.Set(float64(len(s.trips)))
	return removed, nil
}

// Search applies every supplied criterion with logical AND, in store order.
func (s *memTripStore) Search(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		if !matches(t, filter) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// matches reports whether a trip satisfies all criteria in the filter.
func matches(t domain.Trip, f domain.TripFilter) bool {
	if f.Destination != "" && !strings.Contains(strings.ToLower(t.Destination), strings.ToLower(f.Destination)) {
		return false
	}
	if f.Country != "" && !strings.Contains(strings.ToLower(t.Country), strings.ToLower(f.Country)) {
		return false
	}
	if f.MinPrice != nil && t.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && t.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && t.Rating < *f.MinRating {
		return false
	}
	return true
}

// numericFields lists the trip fields statistics are computed over,
// with an accessor that widens every value to float64.
var numericFields = []struct {
	name  string
	value func(domain.Trip) float64
}{
	{"duration_days", func(t domain.Trip) float64 { return float64(t.DurationDays) }},
	{"price", func(t domain.Trip) float64 { return t.Price }},
	{"rating", func(t domain.Trip) float64 { return t.Rating }},
	{"group_size", func(t domain.Trip) float64 { return float64(t.GroupSize) }},
}

// Statistics aggregates over all current records.
// An empty collection short-circuits — averaging zero records would divide
// by zero, so the caller gets TripCount 0 and a nil Fields map instead.
func (s *memTripStore) Statistics(ctx context.Context) (domain.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.trips) == 0 {
		return domain.Statistics{TripCount: 0}, nil
	}

	stats := domain.Statistics{
		TripCount: len(s.trips),
		Fields:    make(map[string]domain.FieldStats, len(numericFields)),
	}
	for _, f := range numericFields {
		fs := domain.FieldStats{
			Min:   f.value(s.trips[0]),
			Max:   f.value(s.trips[0]),
			Count: len(s.trips),
		}
		for _, t := range s.trips {
			v := f.value(t)
			fs.Sum += v
			if v < fs.Min {
				fs.Min = v
			}
			if v > fs.Max {
				fs.Max = v
			}
		}
		fs.Average = math.Round(fs.Sum/float64(fs.Count)*100) / 100
		stats.Fields[f.name] = fs
	}
	return stats, nil
}

// Count returns the current record count.
func (s *memTripStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trips), nil
}

// indexOf returns the position of the trip with the given ID, or -1.
// Callers must hold s.mu.
func (s *memTripStore) indexOf(id uuid.UUID) int {
	for i, t := range s.trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the collection so callers can sort or iterate without
// holding the lock. Callers must hold s.mu.
func (s *memTripStore) snapshot() []domain.Trip {
	out := make([]domain.Trip, len(s.trips))
	copy(out, s.trips)
	return out
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
	"github.com/mkorolyov/tourist-trips/backend/internal/service"
	"github.com/mkorolyov/tourist-trips/backend/internal/store"
)

// mockTripStore is a hand-written test double for store.TripStore.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockTripStore struct {
	seed       func(ctx context.Context) (int, error)
	list       func(ctx context.Context, sortBy string, descending bool) ([]domain.Trip, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	create     func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	replace    func(ctx context.Context, id uuid.UUID, trip domain.Trip) (domain.Trip, error)
	patch      func(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	delete     func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	search     func(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	statistics func(ctx context.Context) (domain.Statistics, error)
	count      func(ctx context.Context) (int, error)
}

func (m *mockTripStore) Seed(ctx context.Context) (int, error) { return m.seed(ctx) }
func (m *mockTripStore) List(ctx context.Context, sortBy string, descending bool) ([]domain.Trip, error) {
	return m.list(ctx, sortBy, descending)
}
func (m *mockTripStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripStore) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripStore) Replace(ctx context.Context, id uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.replace(ctx, id, trip)
}
func (m *mockTripStore) Patch(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	return m.patch(ctx, id, patch)
}
func (m *mockTripStore) Delete(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.delete(ctx, id)
}
func (m *mockTripStore) Search(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	return m.search(ctx, filter)
}
func (m *mockTripStore) Statistics(ctx context.Context) (domain.Statistics, error) {
	return m.statistics(ctx)
}
func (m *mockTripStore) Count(ctx context.Context) (int, error) { return m.count(ctx) }

// compile-time check: mockTripStore must satisfy store.TripStore.
var _ store.TripStore = (*mockTripStore)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		Destination:  "Rome",
		Country:      "Italy",
		TravelAgency: "Bella Tours",
		DurationDays: 5,
		Price:        80000,
		Rating:       4.3,
		GroupSize:    14,
	}
}

// echoStore echoes whatever it receives back — useful for Create/Replace
// tests that only care about validation logic, not what the store returns.
func echoStore() *mockTripStore {
	return &mockTripStore{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		replace: func(_ context.Context, _ uuid.UUID, t domain.Trip) (domain.Trip, error) {
			return t, nil
		},
	}
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := service.NewTripService(echoStore())

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, "Rome", got.Destination)
}

func TestTripService_Create_BlankDestination(t *testing.T) {
	svc := service.NewTripService(echoStore())

	trip := validTrip()
	trip.Destination = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_BlankCountry(t *testing.T) {
	svc := service.NewTripService(echoStore())

	trip := validTrip()
	trip.Country = ""

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_BlankAgency(t *testing.T) {
	svc := service.NewTripService(echoStore())

	trip := validTrip()
	trip.TravelAgency = ""

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_StoreError(t *testing.T) {
	storeErr := errors.New("store exploded")
	m := &mockTripStore{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, storeErr
		},
	}
	svc := service.NewTripService(m)

	_, err := svc.Create(context.Background(), validTrip())

	// The service should propagate store errors unchanged.
	assert.ErrorIs(t, err, storeErr)
}

// ---- GetByID tests ---------------------------------------------------------

func TestTripService_GetByID_Found(t *testing.T) {
	want := validTrip()
	want.ID = uuid.New()

	m := &mockTripStore{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) { return want, nil },
	}
	svc := service.NewTripService(m)

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	m := &mockTripStore{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(m)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List tests ------------------------------------------------------------

func TestTripService_List_PassesSortParams(t *testing.T) {
	var gotSortBy string
	var gotDescending bool
	m := &mockTripStore{
		list: func(_ context.Context, sortBy string, descending bool) ([]domain.Trip, error) {
			gotSortBy = sortBy
			gotDescending = descending
			return []domain.Trip{validTrip()}, nil
		},
	}
	svc := service.NewTripService(m)

	got, err := svc.List(context.Background(), "price", true)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "price", gotSortBy)
	assert.True(t, gotDescending)
}

func TestTripService_List_NilBecomesEmptySlice(t *testing.T) {
	m := &mockTripStore{
		list: func(_ context.Context, _ string, _ bool) ([]domain.Trip, error) { return nil, nil },
	}
	svc := service.NewTripService(m)

	got, err := svc.List(context.Background(), "", false)

	require.NoError(t, err)
	// Should return an empty slice, not nil — it must encode as [] in JSON.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Replace tests ---------------------------------------------------------

func TestTripService_Replace_Valid(t *testing.T) {
	svc := service.NewTripService(echoStore())

	trip := validTrip()
	trip.Destination = "Florence"

	got, err := svc.Replace(context.Background(), uuid.New(), trip)

	require.NoError(t, err)
	assert.Equal(t, "Florence", got.Destination)
}

func TestTripService_Replace_BlankDestination(t *testing.T) {
	svc := service.NewTripService(echoStore())

	trip := validTrip()
	trip.Destination = ""

	_, err := svc.Replace(context.Background(), uuid.New(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Replace_NotFound(t *testing.T) {
	m := &mockTripStore{
		replace: func(_ context.Context, _ uuid.UUID, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(m)

	_, err := svc.Replace(context.Background(), uuid.New(), validTrip())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Patch tests -----------------------------------------------------------

func TestTripService_Patch_PassesThrough(t *testing.T) {
	price := 99999.0
	var gotPatch domain.TripPatch
	m := &mockTripStore{
		patch: func(_ context.Context, _ uuid.UUID, p domain.TripPatch) (domain.Trip, error) {
			gotPatch = p
			return validTrip(), nil
		},
	}
	svc := service.NewTripService(m)

	_, err := svc.Patch(context.Background(), uuid.New(), domain.TripPatch{Price: &price})

	require.NoError(t, err)
	require.NotNil(t, gotPatch.Price)
	assert.Equal(t, 99999.0, *gotPatch.Price)
}

func TestTripService_Patch_NotFound(t *testing.T) {
	m := &mockTripStore{
		patch: func(_ context.Context, _ uuid.UUID, _ domain.TripPatch) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(m)

	_, err := svc.Patch(context.Background(), uuid.New(), domain.TripPatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete tests ----------------------------------------------------------

func TestTripService_Delete_ReturnsRemovedTrip(t *testing.T) {
	want := validTrip()
	want.ID = uuid.New()
	m := &mockTripStore{
		delete: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return want, nil },
	}
	svc := service.NewTripService(m)

	got, err := svc.Delete(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	m := &mockTripStore{
		delete: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(m)

	_, err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Search / Statistics / Count -------------------------------------------

func TestTripService_Search_NilBecomesEmptySlice(t *testing.T) {
	m := &mockTripStore{
		search: func(_ context.Context, _ domain.TripFilter) ([]domain.Trip, error) { return nil, nil },
	}
	svc := service.NewTripService(m)

	got, err := svc.Search(context.Background(), domain.TripFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_Statistics_PassesThrough(t *testing.T) {
	m := &mockTripStore{
		statistics: func(_ context.Context) (domain.Statistics, error) {
			return domain.Statistics{TripCount: 5}, nil
		},
	}
	svc := service.NewTripService(m)

	got, err := svc.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, got.TripCount)
}

func TestTripService_Count_PassesThrough(t *testing.T) {
	m := &mockTripStore{
		count: func(_ context.Context) (int, error) { return 7, nil },
	}
	svc := service.NewTripService(m)

	got, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

// Package handler implements the HTTP handlers for the Tourist Trips API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, search.go, statistics.go, health.go, ...) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
)

// TripServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, sortBy string, descending bool) ([]domain.Trip, error)
	Replace(ctx context.Context, id uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Patch(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Search(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
	Count(ctx context.Context) (int, error)
}

// Server implements every API endpoint. Wire it in main.go via Routes().
type Server struct {
	trips TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer) *Server {
	return &Server{trips: trips}
}

// Routes builds the chi router for the full API surface.
// /trips/search must stay a literal route; chi matches it ahead of
// the /trips/{id} wildcard.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.GetRoot)
	r.Get("/health", s.GetHealth)
	r.Get("/statistics", s.GetStatistics)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/docs", s.GetDocs)
	r.Get("/redoc", s.RedirectToDocs)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Get("/search", s.SearchTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Patch("/", s.PatchTrip)
			r.Delete("/", s.DeleteTrip)
		})
	})

	return r
}

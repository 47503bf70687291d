package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
)

// SearchTrips handles GET /trips/search.
// All supplied criteria are combined with AND; absent parameters impose no
// constraint, so an empty query string returns every trip.
func (s *Server) SearchTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.TripFilter{
		Destination: q.Get("destination"),
		Country:     q.Get("country"),
	}

	var err error
	if filter.MinPrice, err = optionalFloat(q.Get("min_price")); err != nil {
		badRequestBody(w, r, fmt.Sprintf("invalid min_price: %q is not a number", q.Get("min_price")))
		return
	}
	if filter.MaxPrice, err = optionalFloat(q.Get("max_price")); err != nil {
		badRequestBody(w, r, fmt.Sprintf("invalid max_price: %q is not a number", q.Get("max_price")))
		return
	}
	if filter.MinRating, err = optionalFloat(q.Get("min_rating")); err != nil {
		badRequestBody(w, r, fmt.Sprintf("invalid min_rating: %q is not a number", q.Get("min_rating")))
		return
	}

	trips, err := s.trips.Search(r.Context(), filter)
	if err != nil {
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, trips)
}

// optionalFloat parses a query parameter into an optional numeric bound.
// An empty string means the bound is absent, not zero.
func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

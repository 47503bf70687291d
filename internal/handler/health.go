package handler

import (
	"net/http"
	"time"
)

// healthResponse is the 200 body for GET /health.
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	TripCount int       `json:"trip_count"`
	Service   string    `json:"service"`
}

// GetHealth handles GET /health.
// Liveness plus the current record count — useful to confirm seeding ran.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.trips.Count(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		TripCount: count,
		Service:   "tourist-trips-api",
	})
}

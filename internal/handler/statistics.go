package handler

import (
	"net/http"
	"time"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
)

// statisticsResponse is the 200 body for GET /statistics on a non-empty store.
type statisticsResponse struct {
	TripCount    int                          `json:"trip_count"`
	Statistics   map[string]domain.FieldStats `json:"statistics"`
	CalculatedAt time.Time                    `json:"calculated_at"`
}

// emptyStatisticsResponse is returned when there are no trips to aggregate.
// There is deliberately no per-field breakdown — averaging zero records is
// undefined, not zero.
type emptyStatisticsResponse struct {
	Message   string `json:"message"`
	TripCount int    `json:"trip_count"`
}

// GetStatistics handles GET /statistics.
// Returns min/max/average/sum/count for every numeric trip field.
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.trips.Statistics(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	if stats.TripCount == 0 {
		respondJSON(w, http.StatusOK, emptyStatisticsResponse{
			Message:   "no data to compute statistics",
			TripCount: 0,
		})
		return
	}

	respondJSON(w, http.StatusOK, statisticsResponse{
		TripCount:    stats.TripCount,
		Statistics:   stats.Fields,
		CalculatedAt: time.Now().UTC(),
	})
}

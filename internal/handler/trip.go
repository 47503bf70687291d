package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkorolyov/tourist-trips/backend/internal/domain"
)

// tripRequest is the JSON body for POST /trips and PUT /trips/{id}.
// Fields are pointers so missing keys are detectable — a required field
// absent from the body is a 422, not a silent zero value. Server-assigned
// fields (id, created_at, updated_at) are ignored if a client sends them.
type tripRequest struct {
	Destination  *string  `json:"destination"`
	Country      *string  `json:"country"`
	TravelAgency *string  `json:"travel_agency"`
	DurationDays *int     `json:"duration_days"`
	Price        *float64 `json:"price"`
	Rating       *float64 `json:"rating"`
	GroupSize    *int     `json:"group_size"`
}

// toTrip converts the request body into a domain.Trip, reporting every
// missing required field in one error.
func (b tripRequest) toTrip() (domain.Trip, error) {
	var missing []string
	if b.Destination == nil {
		missing = append(missing, "destination")
	}
	if b.Country == nil {
		missing = append(missing, "country")
	}
	if b.TravelAgency == nil {
		missing = append(missing, "travel_agency")
	}
	if b.DurationDays == nil {
		missing = append(missing, "duration_days")
	}
	if b.Price == nil {
		missing = append(missing, "price")
	}
	if b.Rating == nil {
		missing = append(missing, "rating")
	}
	if b.GroupSize == nil {
		missing = append(missing, "group_size")
	}
	if len(missing) > 0 {
		return domain.Trip{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return domain.Trip{
		Destination:  *b.Destination,
		Country:      *b.Country,
		TravelAgency: *b.TravelAgency,
		DurationDays: *b.DurationDays,
		Price:        *b.Price,
		Rating:       *b.Rating,
		GroupSize:    *b.GroupSize,
	}, nil
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequestBody(w, r, "invalid request body: "+err.Error())
		return
	}

	trip, err := body.toTrip()
	if err != nil {
		badRequestBody(w, r, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, r, err)
			return
		}
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// ?sort_by= names a trip field; an unknown field means insertion order, not
// an error. ?reverse=true sorts descending; an unparsable value means false.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortBy := q.Get("sort_by")
	reverse, _ := strconv.ParseBool(q.Get("reverse"))

	trips, err := s.trips.List(r.Context(), sortBy, reverse)
	if err != nil {
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, tripNotFoundMessage(r))
			return
		}
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{id}.
// This is a true replace: the stored record is overwritten with the full
// body, keeping only id and created_at.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequestBody(w, r, "invalid request body: "+err.Error())
		return
	}

	trip, err := body.toTrip()
	if err != nil {
		badRequestBody(w, r, err.Error())
		return
	}

	updated, err := s.trips.Replace(r.Context(), id, trip)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, tripNotFoundMessage(r))
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, r, err)
			return
		}
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// PatchTrip handles PATCH /trips/{id}.
// The body is an arbitrary field map; unknown keys and the immutable
// id/created_at keys are silently ignored. An empty body is valid and
// only refreshes updated_at.
func (s *Server) PatchTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		badRequestBody(w, r, "invalid request body: "+err.Error())
		return
	}

	patch, err := decodePatch(raw)
	if err != nil {
		badRequestBody(w, r, err.Error())
		return
	}

	updated, err := s.trips.Patch(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, tripNotFoundMessage(r))
			return
		}
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// deleteResponse is the 200 body for DELETE /trips/{id}.
type deleteResponse struct {
	Message     string      `json:"message"`
	DeletedTrip domain.Trip `json:"deleted_trip"`
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	deleted, err := s.trips.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r, tripNotFoundMessage(r))
			return
		}
		internalError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, deleteResponse{
		Message:     "trip deleted successfully",
		DeletedTrip: deleted,
	})
}

// decodePatch converts a raw field map into a typed domain.TripPatch.
// Only known mutable field names are applied; everything else — including
// id, created_at, and updated_at — is dropped without error. A known key
// whose value cannot be decoded into the field's type is a validation error.
func decodePatch(raw map[string]json.RawMessage) (domain.TripPatch, error) {
	var p domain.TripPatch
	for key, val := range raw {
		var err error
		switch key {
		case "destination":
			var v string
			if err = json.Unmarshal(val, &v); err == nil {
				p.Destination = &v
			}
		case "country":
			var v string
			if err = json.Unmarshal(val, &v); err == nil {
				p.Country = &v
			}
		case "travel_agency":
			var v string
			if err = json.Unmarshal(val, &v); err == nil {
				p.TravelAgency = &v
			}
		case "duration_days":
			var v int
			if err = json.Unmarshal(val, &v); err == nil {
				p.DurationDays = &v
			}
		case "price":
			var v float64
			if err = json.Unmarshal(val, &v); err == nil {
				p.Price = &v
			}
		case "rating":
			var v float64
			if err = json.Unmarshal(val, &v); err == nil {
				p.Rating = &v
			}
		case "group_size":
			var v int
			if err = json.Unmarshal(val, &v); err == nil {
				p.GroupSize = &v
			}
		}
		if err != nil {
			return domain.TripPatch{}, fmt.Errorf("invalid value for field %q: %s", key, err)
		}
	}
	return p, nil
}

// tripID extracts and parses the {id} path parameter.
// The store only ever holds server-generated UUIDs, so an unparsable id is
// reported as the same 404 a well-formed unknown id gets.
func tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r, tripNotFoundMessage(r))
		return uuid.UUID{}, false
	}
	return id, true
}

// tripNotFoundMessage builds the 404 message echoing the requested id.
func tripNotFoundMessage(r *http.Request) string {
	return fmt.Sprintf("trip with id '%s' not found", chi.URLParam(r, "id"))
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// errorResponse is the JSON body for every error the API returns.
type errorResponse struct {
	Error      string    `json:"error"`
	StatusCode int       `json:"status_code"`
	Path       string    `json:"path"`
	Timestamp  time.Time `json:"timestamp"`
}

// writeError writes the standard error body with the given status.
// Every error the API surfaces goes through here, so the body shape is
// guaranteed to be uniform across all endpoints.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, errorResponse{
		Error:      message,
		StatusCode: status,
		Path:       r.URL.Path,
		Timestamp:  time.Now().UTC(),
	})
}

// notFound writes a 404 with the standard error body.
func notFound(w http.ResponseWriter, r *http.Request, message string) {
	writeError(w, r, http.StatusNotFound, message)
}

// validationError writes a 422, extracting the human-readable part from a
// wrapped domain.ErrValidation error.
// e.g. "service.TripService.Create: validation error: country is required"
// → "country is required".
func validationError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, http.StatusUnprocessableEntity, unwrapMessage(err))
}

// badRequestBody writes a 422 for a body rejected before reaching the
// service layer (malformed JSON, missing fields, wrong types).
func badRequestBody(w http.ResponseWriter, r *http.Request, message string) {
	writeError(w, r, http.StatusUnprocessableEntity, message)
}

// unwrapMessage strips the layer prefixes from a wrapped sentinel error,
// leaving only the part meant for the client.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing left to do but log.
		slog.Error("failed to encode response", "error", err)
	}
}

// internalError writes a 500 with the standard error body and logs the cause.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal error", "path", r.URL.Path, "error", err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

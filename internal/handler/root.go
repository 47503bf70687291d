package handler

import "net/http"

// rootResponse is the service info / endpoint directory served at GET /.
type rootResponse struct {
	Service       string            `json:"service"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation map[string]string `json:"documentation"`
}

// GetRoot handles GET /.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rootResponse{
		Service: "Tourist Trips API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"get_all_trips": "/trips",
			"get_trip":      "/trips/{id}",
			"create_trip":   "/trips",
			"update_trip":   "/trips/{id}",
			"patch_trip":    "/trips/{id}",
			"delete_trip":   "/trips/{id}",
			"search_trips":  "/trips/search",
			"statistics":    "/statistics",
			"health":        "/health",
		},
		Documentation: map[string]string{
			"docs":    "/docs",
			"openapi": "/openapi.yaml",
		},
	})
}

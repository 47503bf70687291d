// Package handler — docs.go serves the API documentation routes.
// The OpenAPI document is embedded in the binary (see the spec package),
// so the served contract and the running code are always in sync.
package handler

import (
	"net/http"

	"github.com/mkorolyov/tourist-trips/backend/spec"
)

// docsPage renders the embedded OpenAPI document with Scalar.
// Loading the UI from a CDN keeps the binary free of frontend assets.
const docsPage = `<!doctype html>
<html>
<head>
  <title>Tourist Trips API</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/openapi.yaml"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// GetDocs handles GET /docs.
func (s *Server) GetDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsPage))
}

// RedirectToDocs handles GET /redoc, kept for clients that expect the old
// documentation path.
func (s *Server) RedirectToDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
}

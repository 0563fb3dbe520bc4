// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Catalogs
		{Method: http.MethodGet, Path: "/api/v1/catalog/fluids", Handler: h.GetFluids},
		{Method: http.MethodGet, Path: "/api/v1/catalog/pipes", Handler: h.GetPipeSchedule},
		{Method: http.MethodGet, Path: "/api/v1/catalog/chillers", Handler: h.GetChillerCatalog},

		// Sizing
		{Method: http.MethodPost, Path: "/api/v1/pipe/size", Handler: h.SizePipe},
		{Method: http.MethodPost, Path: "/api/v1/chillers/search", Handler: h.SearchChillers},
		{Method: http.MethodPost, Path: "/api/v1/plant/analyze", Handler: h.AnalyzePlant},
	}
}

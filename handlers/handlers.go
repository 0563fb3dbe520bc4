// ABOUTME: HTTP handlers for the pipe and chiller sizing API
// ABOUTME: Shared handler state, JSON helpers, and error-to-status mapping

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mfreeman/hydronic-sizer/cache"
	"github.com/mfreeman/hydronic-sizer/config"
	"github.com/mfreeman/hydronic-sizer/models"
	"github.com/mfreeman/hydronic-sizer/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

type Handler struct {
	cfg      *config.Config
	cache    *cache.Cache
	pipes    *services.PipeSizer
	chillers *services.ChillerSizer
	plant    *services.RiserAnalyzer

	fluids   models.FluidCatalog
	schedule models.PipeSchedule
	catalog  models.ChillerCatalog
}

func NewHandler(cfg *config.Config, cache *cache.Cache) *Handler {
	return &Handler{
		cfg:      cfg,
		cache:    cache,
		pipes:    services.NewPipeSizer(),
		chillers: services.NewChillerSizer(),
		plant:    services.NewRiserAnalyzer(),
		fluids:   models.DefaultFluids(),
		schedule: models.Schedule40(),
		catalog:  models.DefaultChillerCatalog(),
	}
}

// Health returns API health status and catalog sizes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"catalog": map[string]int{
			"fluids":     len(h.fluids),
			"pipe_sizes": len(h.schedule),
			"chillers":   len(h.catalog),
		},
	})
}

// decodeBody decodes a size-limited JSON request body into dst.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// statusFromErr maps service errors to HTTP status codes. Bad inputs are
// 400, solvable-but-infeasible problems are 422, everything else is 500.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInfeasible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ABOUTME: HTTP handlers for the read-only catalog endpoints
// ABOUTME: Serves built-in fluids, pipe schedule, and chiller catalog

package handlers

import "net/http"

// GetFluids returns the built-in fluid catalog.
func (h *Handler) GetFluids(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.fluids)
}

// GetPipeSchedule returns the standard pipe schedule used for sizing.
func (h *Handler) GetPipeSchedule(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.schedule)
}

// GetChillerCatalog returns the chiller unit catalog.
func (h *Handler) GetChillerCatalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog)
}

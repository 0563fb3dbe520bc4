// ABOUTME: HTTP handler for full-plant analysis from a layout string
// ABOUTME: Caches responses by request body hash for the configured TTL

package handlers

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"net/http"

	"github.com/mfreeman/hydronic-sizer/services"
)

// PlantAnalyzeRequest is the full-building analysis request body. Only
// layout is required. fan_heat_pct is a pointer so an explicit zero is
// distinguishable from an omitted field.
type PlantAnalyzeRequest struct {
	Layout             string               `json:"layout"`
	HallLoadsMW        map[string]float64   `json:"hall_loads_mw"`
	DefaultHallLoadMW  float64              `json:"default_hall_load_mw"`
	FanHeatPct         *float64             `json:"fan_heat_pct"`
	DeltaTF            float64              `json:"delta_t_f"`
	Fluid              string               `json:"fluid"`
	MaxVelocityFtS     float64              `json:"max_velocity_ft_s"`
	MaxPressureDropPsi float64              `json:"max_pressure_drop_psi"`
	Chillers           ChillerSearchRequest `json:"chillers"`
}

// AnalyzePlant sizes every column riser for the layout and searches chiller
// configurations for the building cooling load.
func (h *Handler) AnalyzePlant(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req PlantAnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	// Identical request bodies share a cache entry
	cacheKey := plantCacheKey(body)
	if cached, found := h.cache.Get(cacheKey); found {
		slog.Debug("Plant analysis cache hit")
		h.writeJSON(w, http.StatusOK, cached)
		return
	}

	if req.Fluid == "" {
		req.Fluid = h.cfg.DefaultFluid
	}
	if req.DeltaTF == 0 {
		req.DeltaTF = h.cfg.DefaultDeltaTF
	}
	if req.MaxVelocityFtS == 0 {
		req.MaxVelocityFtS = h.cfg.DefaultMaxVelocity
	}
	if req.MaxPressureDropPsi == 0 {
		req.MaxPressureDropPsi = h.cfg.DefaultMaxDPPsi
	}

	fanHeat := services.DefaultFanHeatPct()
	if req.FanHeatPct != nil {
		fanHeat = *req.FanHeatPct
	}

	fluid, err := h.fluids.Lookup(req.Fluid)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.plant.Analyze(r.Context(), services.PlantInput{
		Layout:             req.Layout,
		HallLoadsMW:        req.HallLoadsMW,
		DefaultHallLoadMW:  req.DefaultHallLoadMW,
		FanHeatPct:         fanHeat,
		DeltaTF:            req.DeltaTF,
		Fluid:              fluid,
		MaxVelocityFtS:     req.MaxVelocityFtS,
		MaxPressureDropPsi: req.MaxPressureDropPsi,
		Schedule:           h.schedule,
		Chillers:           req.Chillers.toSearchInput(h.cfg.ElectricityRate),
	})
	if err != nil {
		slog.Warn("Plant analysis failed", "error", err)
		h.writeError(w, err.Error(), statusFromErr(err))
		return
	}

	h.cache.Set(cacheKey, report)
	h.writeJSON(w, http.StatusOK, report)
}

func plantCacheKey(body []byte) string {
	hash := fnv.New64a()
	hash.Write(body)
	return fmt.Sprintf("plant:%x", hash.Sum64())
}

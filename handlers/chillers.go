// ABOUTME: HTTP handler for the chiller configuration search
// ABOUTME: Maps the request body onto the search input and ranks candidates

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mfreeman/hydronic-sizer/models"
	"github.com/mfreeman/hydronic-sizer/services"
)

// ChillerSearchRequest is the configuration search request body. Only
// total_load_mw is required; other knobs take catalog defaults.
type ChillerSearchRequest struct {
	TotalLoadMW       float64 `json:"total_load_mw"`
	Redundancy        string  `json:"redundancy"`
	RedundancyPercent float64 `json:"redundancy_percent"`
	Strategy          string  `json:"strategy"`
	MaxChillers       int     `json:"max_chillers"`
	MinLoadingPct     float64 `json:"min_loading_pct"`
	MaxLoadingPct     float64 `json:"max_loading_pct"`
	ElectricityRate   float64 `json:"electricity_rate"`
	AnnualHours       float64 `json:"annual_hours"`
}

// toSearchInput maps the request onto the service input. The config
// electricity rate backfills a missing request rate.
func (req ChillerSearchRequest) toSearchInput(defaultRate float64) services.SearchInput {
	rate := req.ElectricityRate
	if rate == 0 {
		rate = defaultRate
	}
	return services.SearchInput{
		TotalLoadMW:       req.TotalLoadMW,
		Redundancy:        models.RedundancyModel(req.Redundancy),
		RedundancyPercent: req.RedundancyPercent,
		Strategy:          models.Strategy(req.Strategy),
		MaxChillers:       req.MaxChillers,
		MinLoadingPct:     req.MinLoadingPct,
		MaxLoadingPct:     req.MaxLoadingPct,
		ElectricityRate:   rate,
		AnnualHours:       req.AnnualHours,
	}
}

// SearchChillers runs the chiller plant configuration search.
func (h *Handler) SearchChillers(w http.ResponseWriter, r *http.Request) {
	var req ChillerSearchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	configs, err := h.chillers.Search(req.toSearchInput(h.cfg.ElectricityRate))
	if err != nil {
		slog.Warn("Chiller search failed", "error", err)
		h.writeError(w, err.Error(), statusFromErr(err))
		return
	}

	// An exhausted search is a valid answer; return an empty list, not null
	if configs == nil {
		configs = []models.ChillerConfig{}
	}

	h.writeJSON(w, http.StatusOK, configs)
}

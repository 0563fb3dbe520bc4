// ABOUTME: HTTP handler for single-segment pipe sizing
// ABOUTME: Accepts load or mass flow, applies config defaults, runs the solver

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mfreeman/hydronic-sizer/services"
)

// SizePipeRequest is the pipe sizing request body. Either load_mw or
// mass_flow_lb_hr must be set; omitted knobs fall back to config defaults.
type SizePipeRequest struct {
	LoadMW             float64 `json:"load_mw"`
	DeltaTF            float64 `json:"delta_t_f"`
	Fluid              string  `json:"fluid"`
	MassFlowLbHr       float64 `json:"mass_flow_lb_hr"`
	MaxVelocityFtS     float64 `json:"max_velocity_ft_s"`
	MaxPressureDropPsi float64 `json:"max_pressure_drop_psi"`
}

// SizePipe sizes one chilled-water segment for the requested load or flow.
func (h *Handler) SizePipe(w http.ResponseWriter, r *http.Request) {
	var req SizePipeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if req.LoadMW == 0 && req.MassFlowLbHr == 0 {
		h.writeError(w, "Either load_mw or mass_flow_lb_hr is required", http.StatusBadRequest)
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

	fluid, err := h.fluids.Lookup(req.Fluid)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	massFlow := req.MassFlowLbHr
	if massFlow == 0 {
		gpm := services.MWToGPM(req.LoadMW, req.DeltaTF)
		massFlow = services.GPMToMassFlowLbHr(gpm, fluid.DensityLbFt3)
	}

	result, err := h.pipes.Size(services.SizingInput{
		MassFlowLbHr:       massFlow,
		DensityLbFt3:       fluid.DensityLbFt3,
		ViscosityLbFtS:     fluid.ViscosityLbFtS,
		MaxPressureDropPsi: req.MaxPressureDropPsi,
		MaxVelocityFtS:     req.MaxVelocityFtS,
		Schedule:           h.schedule,
	})
	if err != nil {
		slog.Warn("Pipe sizing failed", "error", err)
		h.writeError(w, err.Error(), statusFromErr(err))
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// ABOUTME: Layout-driven riser sizing and whole-plant analysis
// ABOUTME: Aggregates hall loads by column and sizes one riser per column concurrently

package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mfreeman/hydronic-sizer/models"
)

const (
	defaultFanHeatPct = 5.0
	maxFanHeatPct     = 20.0

	// Risers above this velocity get an advisory warning even when they
	// satisfy the hard ceiling.
	riserVelocityWarnFtS = 10.0
)

// DefaultFanHeatPct is the fan heat percentage applied when a request
// leaves it unset.
func DefaultFanHeatPct() float64 {
	return defaultFanHeatPct
}

// PlantInput describes a full-building analysis request.
type PlantInput struct {
	Layout             string
	HallLoadsMW        map[string]float64 // explicit per-hall IT loads; empty means uniform
	DefaultHallLoadMW  float64            // uniform load when HallLoadsMW is empty (default 1 MW)
	FanHeatPct         float64            // percent of IT load added as fan heat, 0-20
	DeltaTF            float64
	Fluid              models.Fluid
	MaxVelocityFtS     float64
	MaxPressureDropPsi float64
	Schedule           models.PipeSchedule
	Chillers           SearchInput // TotalLoadMW is overwritten with the plant cooling load
}

// RiserResult pairs a column aggregate with its sized riser.
type RiserResult struct {
	Column        string              `json:"column"`
	HallCount     int                 `json:"hall_count"`
	Halls         []string            `json:"halls"`
	ITLoadMW      float64             `json:"it_load_mw"`
	CoolingLoadMW float64             `json:"cooling_load_mw"`
	FlowGPM       float64             `json:"flow_gpm"`
	Sizing        models.SizingResult `json:"sizing"`
}

// PlantReport is the combined riser and chiller analysis for a layout.
type PlantReport struct {
	Layout         models.Layout          `json:"layout"`
	FanHeatPct     float64                `json:"fan_heat_pct"`
	TotalITLoadMW  float64                `json:"total_it_load_mw"`
	TotalCoolingMW float64                `json:"total_cooling_mw"`
	Risers         []RiserResult          `json:"risers"`
	Chillers       []models.ChillerConfig `json:"chillers"`
	Warnings       []string               `json:"warnings,omitempty"`
}

// RiserAnalyzer composes layout parsing, pipe sizing, and the chiller search.
type RiserAnalyzer struct {
	pipes    *PipeSizer
	chillers *ChillerSizer
}

// NewRiserAnalyzer creates a new analyzer.
func NewRiserAnalyzer() *RiserAnalyzer {
	return &RiserAnalyzer{
		pipes:    NewPipeSizer(),
		chillers: NewChillerSizer(),
	}
}

// Analyze parses the layout, aggregates hall loads by column, sizes one
// riser per column, and runs the chiller search on the total cooling load.
// Column results keep a deterministic order regardless of the fan-out.
func (a *RiserAnalyzer) Analyze(ctx context.Context, input PlantInput) (*PlantReport, error) {
	layout, err := models.ParseLayout(input.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.FanHeatPct < 0 || input.FanHeatPct > maxFanHeatPct {
		return nil, fmt.Errorf("%w: fan heat percent must be between 0 and %g, got %g",
			ErrInvalidInput, maxFanHeatPct, input.FanHeatPct)
	}
	if err := requirePositive("delta T", input.DeltaTF); err != nil {
		return nil, err
	}

	loads, err := a.hallLoads(layout, input)
	if err != nil {
		return nil, err
	}

	aggregates := models.ColumnAggregates(loads)
	fanFactor := 1 + input.FanHeatPct/100

	var totalITMW float64
	for _, agg := range aggregates {
		totalITMW += agg.TotalMW
	}
	totalCoolingMW := totalITMW * fanFactor

	report := &PlantReport{
		Layout:         layout,
		FanHeatPct:     input.FanHeatPct,
		TotalITLoadMW:  round1(totalITMW),
		TotalCoolingMW: round1(totalCoolingMW),
		Risers:         make([]RiserResult, len(aggregates)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, agg := range aggregates {
		i, agg := i, agg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if agg.TotalMW <= 0 {
				return fmt.Errorf("%w: column %s has no load", ErrInvalidInput, agg.Column)
			}

			coolingMW := agg.TotalMW * fanFactor
			gpm := MWToGPM(coolingMW, input.DeltaTF)
			sizing, err := a.pipes.Size(SizingInput{
				MassFlowLbHr:       GPMToMassFlowLbHr(gpm, input.Fluid.DensityLbFt3),
				DensityLbFt3:       input.Fluid.DensityLbFt3,
				ViscosityLbFtS:     input.Fluid.ViscosityLbFtS,
				MaxPressureDropPsi: input.MaxPressureDropPsi,
				MaxVelocityFtS:     input.MaxVelocityFtS,
				Schedule:           input.Schedule,
			})
			if err != nil {
				return fmt.Errorf("column %s: %w", agg.Column, err)
			}

			report.Risers[i] = RiserResult{
				Column:        agg.Column,
				HallCount:     agg.HallCount,
				Halls:         agg.Halls,
				ITLoadMW:      round1(agg.TotalMW),
				CoolingLoadMW: round1(coolingMW),
				FlowGPM:       sizing.FlowGPM,
				Sizing:        sizing,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, riser := range report.Risers {
		if riser.Sizing.VelocityFtS > riserVelocityWarnFtS {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("column %s: velocity %.1f ft/s exceeds %.0f ft/s", riser.Column, riser.Sizing.VelocityFtS, riserVelocityWarnFtS))
		}
		if !riser.Sizing.Resolved {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("column %s: no standard pipe size covers %.1f in", riser.Column, riser.Sizing.PipeIDIn))
		}
	}

	chillerInput := input.Chillers
	chillerInput.TotalLoadMW = totalCoolingMW
	configs, err := a.chillers.Search(chillerInput)
	if err != nil {
		return nil, err
	}
	report.Chillers = configs

	return report, nil
}

// hallLoads returns the per-hall IT loads, generating a uniform map from
// the layout when none were supplied.
func (a *RiserAnalyzer) hallLoads(layout models.Layout, input PlantInput) (map[string]float64, error) {
	if len(input.HallLoadsMW) > 0 {
		for hall, mw := range input.HallLoadsMW {
			if mw < 0 {
				return nil, fmt.Errorf("%w: hall %s has negative load %g", ErrInvalidInput, hall, mw)
			}
		}
		return input.HallLoadsMW, nil
	}

	per := input.DefaultHallLoadMW
	if per == 0 {
		per = 1
	}
	if per < 0 {
		return nil, fmt.Errorf("%w: default hall load must be positive, got %g", ErrInvalidInput, per)
	}

	loads := make(map[string]float64, layout.TotalHalls())
	for _, hall := range layout.HallNames(true) {
		loads[hall] = per
	}
	return loads, nil
}

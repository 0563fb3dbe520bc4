// ABOUTME: Iterative pipe sizing solver for chilled-water segments
// ABOUTME: Finds the smallest standard pipe meeting velocity and pressure-drop ceilings

package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfreeman/hydronic-sizer/models"
)

// Sizing runs against a fixed 100 ft equivalent length; pressure-drop
// ceilings are expressed over the same basis.
const (
	referenceLengthFt = 100.0

	initialDiameterFt = 0.5
	diameterStepFt    = 0.01
	maxDiameterFt     = 10.0

	laminarReLimit = 2000.0
	sqInPerSqFt    = 144.0
)

// ErrInfeasible reports that no diameter within the search bound satisfies
// both ceilings. Handlers map it to HTTP 422.
var ErrInfeasible = errors.New("no feasible diameter")

// SizingInput carries solver inputs in Imperial units.
type SizingInput struct {
	MassFlowLbHr       float64
	DensityLbFt3       float64
	ViscosityLbFtS     float64
	MaxPressureDropPsi float64
	MaxVelocityFtS     float64
	Schedule           models.PipeSchedule // defaults to Schedule 40 when empty
}

// PipeSizer sizes single pipe segments under steady-state, single-phase
// Darcy-Weisbach assumptions.
type PipeSizer struct{}

// NewPipeSizer creates a new pipe sizer.
func NewPipeSizer() *PipeSizer {
	return &PipeSizer{}
}

// Size finds the smallest standard pipe whose velocity and pressure drop
// stay under the input ceilings. The reported operating point is recomputed
// at the actual standard internal diameter. When the converged diameter
// exceeds every schedule entry, the raw operating point is returned with
// Resolved=false rather than coercing to the largest entry.
func (s *PipeSizer) Size(input SizingInput) (models.SizingResult, error) {
	if err := validateSizingInput(input); err != nil {
		return models.SizingResult{}, err
	}

	schedule := input.Schedule
	if len(schedule) == 0 {
		schedule = models.Schedule40()
	}

	diameterFt, err := s.converge(input)
	if err != nil {
		return models.SizingResult{}, err
	}

	flowGPM := MassFlowToGPM(input.MassFlowLbHr, input.DensityLbFt3)

	entry := schedule.SmallestAtLeast(diameterFt * 12)
	if entry == nil {
		velocity, re, f, dpPsi := s.operatingPoint(input, diameterFt)
		return models.SizingResult{
			PipeIDIn:        round1(diameterFt * 12),
			FlowGPM:         math.Round(flowGPM),
			VelocityFtS:     round1(velocity),
			ReynoldsNumber:  math.Round(re),
			FrictionFactor:  round4(f),
			PressureDropPsi: round1(dpPsi),
			Resolved:        false,
		}, nil
	}

	velocity, re, f, dpPsi := s.operatingPoint(input, entry.InternalDiameterIn/12)
	return models.SizingResult{
		StandardSize:    entry.Nominal,
		PipeIDIn:        round1(entry.InternalDiameterIn),
		FlowGPM:         math.Round(flowGPM),
		VelocityFtS:     round1(velocity),
		ReynoldsNumber:  math.Round(re),
		FrictionFactor:  round4(f),
		PressureDropPsi: round1(dpPsi),
		Resolved:        true,
	}, nil
}

// converge runs the monotonic incremental diameter search. Both velocity
// and pressure drop strictly decrease with diameter at fixed flow, so the
// first diameter passing both checks is the minimum.
func (s *PipeSizer) converge(input SizingInput) (float64, error) {
	failing := "velocity"
	for d := initialDiameterFt; d <= maxDiameterFt; d += diameterStepFt {
		velocity, _, _, dpPsi := s.operatingPoint(input, d)
		if velocity > input.MaxVelocityFtS {
			failing = "velocity"
			continue
		}
		if dpPsi > input.MaxPressureDropPsi {
			failing = "pressure drop"
			continue
		}
		return d, nil
	}
	return 0, fmt.Errorf("%w: %s ceiling unsatisfied up to %.0f ft diameter",
		ErrInfeasible, failing, maxDiameterFt)
}

// operatingPoint computes velocity, Reynolds number, Darcy friction factor,
// and pressure drop over the reference length at the given diameter.
func (s *PipeSizer) operatingPoint(input SizingInput, diameterFt float64) (velocity, re, f, dpPsi float64) {
	area := math.Pi * (diameterFt / 2) * (diameterFt / 2)
	velocity = (input.MassFlowLbHr / 3600) / (input.DensityLbFt3 * area)
	re = input.DensityLbFt3 * velocity * diameterFt / input.ViscosityLbFtS
	f = frictionFactor(re)
	dpLbFt2 := f * (referenceLengthFt / diameterFt) * (input.DensityLbFt3 * velocity * velocity / 2)
	dpPsi = dpLbFt2 / sqInPerSqFt
	return velocity, re, f, dpPsi
}

// frictionFactor returns the Darcy friction factor: 64/Re in the laminar
// regime, Blasius smooth-pipe correlation above it.
func frictionFactor(re float64) float64 {
	if re < laminarReLimit {
		return 64 / re
	}
	return 0.3164 / math.Pow(re, 0.25)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

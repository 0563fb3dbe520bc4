// ABOUTME: Input validation for sizing and search parameters
// ABOUTME: Rejects non-positive quantities before any iteration begins

package services

import (
	"errors"
	"fmt"

	"github.com/mfreeman/hydronic-sizer/models"
)

// ErrInvalidInput marks validation failures. Handlers map it to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

func requirePositive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, name, v)
	}
	return nil
}

func validateSizingInput(input SizingInput) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"mass flow rate", input.MassFlowLbHr},
		{"density", input.DensityLbFt3},
		{"viscosity", input.ViscosityLbFtS},
		{"max pressure drop", input.MaxPressureDropPsi},
		{"max velocity", input.MaxVelocityFtS},
	}
	for _, c := range checks {
		if err := requirePositive(c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

func validateSearchInput(input SearchInput) error {
	if err := requirePositive("total load", input.TotalLoadMW); err != nil {
		return err
	}
	if err := requirePositive("electricity rate", input.ElectricityRate); err != nil {
		return err
	}
	if err := requirePositive("annual hours", input.AnnualHours); err != nil {
		return err
	}
	if input.MaxChillers < 1 {
		return fmt.Errorf("%w: max chillers must be at least 1, got %d", ErrInvalidInput, input.MaxChillers)
	}
	if input.MinLoadingPct <= 0 || input.MaxLoadingPct > 100 || input.MinLoadingPct >= input.MaxLoadingPct {
		return fmt.Errorf("%w: loading bounds must satisfy 0 < min < max <= 100, got [%g, %g]",
			ErrInvalidInput, input.MinLoadingPct, input.MaxLoadingPct)
	}
	switch input.Redundancy {
	case models.NPlus1, models.NPlus2:
	case models.NPlusPercent:
		if err := requirePositive("redundancy percent", input.RedundancyPercent); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown redundancy model %q", ErrInvalidInput, input.Redundancy)
	}
	switch input.Strategy {
	case models.StrategyModular, models.StrategyCentral, models.StrategyBalanced:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, input.Strategy)
	}
	return nil
}

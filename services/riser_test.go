// ABOUTME: Tests for layout-driven plant analysis
// ABOUTME: Covers uniform loads, explicit hall loads, warnings, and error paths

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mfreeman/hydronic-sizer/models"
)

func water(t *testing.T) models.Fluid {
	t.Helper()
	f, err := models.DefaultFluids().Lookup("water")
	if err != nil {
		t.Fatalf("fluid lookup: %v", err)
	}
	return f
}

func TestAnalyze_UniformLoads(t *testing.T) {
	// 2 columns × 1 row × 1 floor at 1 MW per hall, 5% fan heat:
	// each riser carries 1.05 MW cooling, total plant 2.1 MW.
	input := PlantInput{
		Layout:             "2x1x1",
		DefaultHallLoadMW:  1,
		FanHeatPct:         5,
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 20,
	}

	report, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.TotalITLoadMW != 2.0 {
		t.Errorf("Expected 2.0 MW IT load, got %g", report.TotalITLoadMW)
	}
	if report.TotalCoolingMW != 2.1 {
		t.Errorf("Expected 2.1 MW cooling load, got %g", report.TotalCoolingMW)
	}
	if len(report.Risers) != 2 {
		t.Fatalf("Expected 2 risers, got %d", len(report.Risers))
	}
	if report.Risers[0].Column != "A" || report.Risers[1].Column != "B" {
		t.Errorf("Expected columns [A B], got [%s %s]", report.Risers[0].Column, report.Risers[1].Column)
	}
	for _, riser := range report.Risers {
		if !riser.Sizing.Resolved {
			t.Errorf("Column %s: expected resolved standard size", riser.Column)
		}
		if riser.Sizing.StandardSize != `6"` {
			t.Errorf("Column %s: expected 6\" riser at 1.05 MW, got %s", riser.Column, riser.Sizing.StandardSize)
		}
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", report.Warnings)
	}
	if len(report.Chillers) == 0 {
		t.Error("Expected chiller configurations for the plant load")
	}
}

func TestAnalyze_ExplicitHallLoads(t *testing.T) {
	input := PlantInput{
		Layout: "2x2x1",
		HallLoadsMW: map[string]float64{
			"A1-F1": 1.5,
			"A2-F1": 1.5,
			"B1-F1": 0.5,
			"B2-F1": 0.5,
		},
		FanHeatPct:         0,
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 20,
	}

	report, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Risers[0].ITLoadMW != 3.0 {
		t.Errorf("Column A: expected 3.0 MW, got %g", report.Risers[0].ITLoadMW)
	}
	if report.Risers[1].ITLoadMW != 1.0 {
		t.Errorf("Column B: expected 1.0 MW, got %g", report.Risers[1].ITLoadMW)
	}
	if report.TotalCoolingMW != 4.0 {
		t.Errorf("Zero fan heat must keep cooling equal to IT load, got %g", report.TotalCoolingMW)
	}
}

func TestAnalyze_VelocityWarning(t *testing.T) {
	// 2 MW through a 6" riser runs ~10.1 ft/s: under the 12 ft/s ceiling
	// but over the 10 ft/s advisory threshold. The pressure ceiling is
	// raised so the solver does not step up to 8".
	input := PlantInput{
		Layout:             "1x1x1",
		HallLoadsMW:        map[string]float64{"A1-F1": 2.0},
		FanHeatPct:         0,
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 30,
	}

	report, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Risers[0].Sizing.StandardSize != `6"` {
		t.Fatalf("Expected 6\" riser, got %s", report.Risers[0].Sizing.StandardSize)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("Expected 1 velocity warning, got %v", report.Warnings)
	}
}

func TestAnalyze_InvalidLayout(t *testing.T) {
	input := PlantInput{
		Layout:             "not-a-layout",
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 20,
	}

	_, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_NegativeHallLoad(t *testing.T) {
	input := PlantInput{
		Layout:             "1x1x1",
		HallLoadsMW:        map[string]float64{"A1-F1": -1},
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 20,
	}

	_, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_FanHeatOutOfRange(t *testing.T) {
	input := PlantInput{
		Layout:             "1x1x1",
		FanHeatPct:         35,
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 20,
	}

	_, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_InfeasibleColumnNamed(t *testing.T) {
	// An unsatisfiable pressure ceiling must name the failing column.
	input := PlantInput{
		Layout:             "1x1x1",
		DefaultHallLoadMW:  1,
		DeltaTF:            15,
		Fluid:              water(t),
		MaxVelocityFtS:     12,
		MaxPressureDropPsi: 1e-12,
	}

	_, err := NewRiserAnalyzer().Analyze(context.Background(), input)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("Expected ErrInfeasible, got %v", err)
	}
}

// ABOUTME: Tests for the chiller configuration search
// ABOUTME: Validates redundancy policies, loading window, ranking, and empty outcomes

package services

import (
	"errors"
	"testing"

	"github.com/mfreeman/hydronic-sizer/models"
)

func TestSearch_60MWBalancedNPlus1(t *testing.T) {
	// 60 MW, N+1, balanced, max 20 units, $0.12/kWh.
	// Only the 1500 and 2000 ton units fit under the 20-unit cap:
	//   5.25 MW: 15 operating + 1 spare, loading 76.2%
	//   7.00 MW: 11 operating + 1 spare, loading 77.9%
	input := SearchInput{
		TotalLoadMW:     60,
		Redundancy:      models.NPlus1,
		Strategy:        models.StrategyBalanced,
		MaxChillers:     20,
		ElectricityRate: 0.12,
	}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 feasible configurations, got %d", len(results))
	}

	for _, cfg := range results {
		if cfg.RedundantChillers != 1 {
			t.Errorf("N+1 must install exactly 1 spare, got %d", cfg.RedundantChillers)
		}
		if cfg.LoadingPct < 40 || cfg.LoadingPct > 80 {
			t.Errorf("Loading %g%% outside [40, 80]", cfg.LoadingPct)
		}
	}

	// 2000 ton units amortize cheaper than 1500 ton units at this load
	if results[0].UnitCapacityMW != 7.0 {
		t.Errorf("Expected 7.0 MW units ranked first, got %g", results[0].UnitCapacityMW)
	}
	if results[0].TCOPerMW > results[1].TCOPerMW {
		t.Errorf("Results not sorted by TCO/MW: %g > %g", results[0].TCOPerMW, results[1].TCOPerMW)
	}
}

func TestSearch_SortedByTCOPerMW(t *testing.T) {
	input := SearchInput{TotalLoadMW: 10}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Expected feasible configurations at 10 MW")
	}
	for i := 1; i < len(results); i++ {
		if results[i].TCOPerMW < results[i-1].TCOPerMW {
			t.Errorf("Not sorted at %d: %g < %g", i, results[i].TCOPerMW, results[i-1].TCOPerMW)
		}
	}
}

func TestSearch_NPlus2(t *testing.T) {
	input := SearchInput{
		TotalLoadMW: 20,
		Redundancy:  models.NPlus2,
		MaxChillers: 30,
	}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Expected feasible configurations")
	}
	for _, cfg := range results {
		if cfg.RedundantChillers != 2 {
			t.Errorf("N+2 must install exactly 2 spares, got %d", cfg.RedundantChillers)
		}
	}
}

func TestSearch_NPlusPercent(t *testing.T) {
	// Spare capacity must cover at least 20% of 60 MW = 12 MW
	input := SearchInput{
		TotalLoadMW:       60,
		Redundancy:        models.NPlusPercent,
		RedundancyPercent: 20,
		MaxChillers:       40,
	}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Expected feasible configurations")
	}
	for _, cfg := range results {
		spareMW := float64(cfg.RedundantChillers) * cfg.UnitCapacityMW
		if spareMW < 12 {
			t.Errorf("Spare capacity %g MW below the 12 MW target for %g MW units", spareMW, cfg.UnitCapacityMW)
		}
	}
}

func TestSearch_UnitCapEmptyResult(t *testing.T) {
	// Every policy installs at least 2 units; a cap of 1 rejects everything.
	input := SearchInput{
		TotalLoadMW: 1,
		MaxChillers: 1,
	}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Empty outcome must not be an error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected empty result, got %d configurations", len(results))
	}
}

func TestSearch_LoadingWindowExcludes(t *testing.T) {
	// A single oversized unit: 1 MW across one operating 7 MW chiller is
	// 14.3% loading, below the 40% floor.
	input := SearchInput{
		TotalLoadMW: 1,
		Catalog: models.ChillerCatalog{
			{CapacityMW: 7.0, CapacityTons: 2000, COP: 8.2, KWPerTon: 0.43, InstallCostPerTon: 880, AnnualMaintenanceUSD: 55000},
		},
	}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected loading window to exclude the only size, got %d results", len(results))
	}
}

func TestSearch_StrategyFilters(t *testing.T) {
	sizer := NewChillerSizer()

	modular, err := sizer.Search(SearchInput{TotalLoadMW: 3, Strategy: models.StrategyModular})
	if err != nil {
		t.Fatalf("modular: %v", err)
	}
	for _, cfg := range modular {
		if cfg.UnitCapacityTons > 500 {
			t.Errorf("Modular search returned %g ton units", cfg.UnitCapacityTons)
		}
	}

	central, err := sizer.Search(SearchInput{TotalLoadMW: 40, Strategy: models.StrategyCentral})
	if err != nil {
		t.Fatalf("central: %v", err)
	}
	for _, cfg := range central {
		if cfg.UnitCapacityTons < 750 {
			t.Errorf("Central search returned %g ton units", cfg.UnitCapacityTons)
		}
	}
}

func TestSearch_CostModel(t *testing.T) {
	// Pin the cost arithmetic for the 7 MW winner of the 60 MW scenario:
	// 11 operating at 77.9%, 12 total.
	input := SearchInput{TotalLoadMW: 60}

	results, err := NewChillerSizer().Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	best := results[0]

	if best.TotalChillers != 12 || best.OperatingChillers != 11 {
		t.Fatalf("Expected 12 total / 11 operating, got %d / %d", best.TotalChillers, best.OperatingChillers)
	}
	// Install: 12 × 2000 tons × $880/ton
	if best.InstallUSD != 21120000 {
		t.Errorf("Expected install $21.12M, got %g", best.InstallUSD)
	}
	// Maintenance: 12 × $55k
	if best.AnnualMaintenanceUSD != 660000 {
		t.Errorf("Expected maintenance $660k, got %g", best.AnnualMaintenanceUSD)
	}
	// TCO = install + 10 × (energy + maintenance); components are rounded
	// independently, so allow a few dollars of slack
	wantTCO := best.InstallUSD + 10*(best.AnnualEnergyUSD+best.AnnualMaintenanceUSD)
	if diff := best.TenYearTCOUSD - wantTCO; diff < -10 || diff > 10 {
		t.Errorf("TCO %g does not equal install + 10x annuals %g", best.TenYearTCOUSD, wantTCO)
	}
}

func TestSearch_InvalidInputs(t *testing.T) {
	sizer := NewChillerSizer()

	cases := []SearchInput{
		{TotalLoadMW: 0},
		{TotalLoadMW: -5},
		{TotalLoadMW: 10, Redundancy: "n+3"},
		{TotalLoadMW: 10, Strategy: "hybrid"},
		{TotalLoadMW: 10, MinLoadingPct: 80, MaxLoadingPct: 40},
		{TotalLoadMW: 10, MaxLoadingPct: 150},
		{TotalLoadMW: 10, ElectricityRate: -0.1},
	}
	for i, input := range cases {
		if _, err := sizer.Search(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	input := SearchInput{TotalLoadMW: 25}
	sizer := NewChillerSizer()

	first, err := sizer.Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := sizer.Search(input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Result %d differs between runs:\n%+v\n%+v", i, first[i], second[i])
		}
	}
}

// ABOUTME: Combinatorial chiller plant configuration search
// ABOUTME: Enumerates catalog sizes under a redundancy policy and ranks by 10-year TCO per MW

package services

import (
	"math"
	"sort"

	"github.com/mfreeman/hydronic-sizer/models"
)

const tcoHorizonYears = 10

// SearchInput carries the chiller configuration search parameters.
// Zero-valued knobs are filled with catalog defaults before validation.
type SearchInput struct {
	TotalLoadMW       float64
	Redundancy        models.RedundancyModel
	RedundancyPercent float64 // target spare capacity for n+percent, as percent of load
	Strategy          models.Strategy
	MaxChillers       int
	MinLoadingPct     float64
	MaxLoadingPct     float64
	ElectricityRate   float64 // $/kWh
	AnnualHours       float64
	Catalog           models.ChillerCatalog // defaults to the standard catalog when empty
}

func (in *SearchInput) applyDefaults() {
	if in.Redundancy == "" {
		in.Redundancy = models.NPlus1
	}
	if in.Redundancy == models.NPlusPercent && in.RedundancyPercent == 0 {
		in.RedundancyPercent = 20
	}
	if in.Strategy == "" {
		in.Strategy = models.StrategyBalanced
	}
	if in.MaxChillers == 0 {
		in.MaxChillers = 20
	}
	if in.MinLoadingPct == 0 {
		in.MinLoadingPct = 40
	}
	if in.MaxLoadingPct == 0 {
		in.MaxLoadingPct = 80
	}
	if in.ElectricityRate == 0 {
		in.ElectricityRate = 0.12
	}
	if in.AnnualHours == 0 {
		in.AnnualHours = 8760
	}
	if len(in.Catalog) == 0 {
		in.Catalog = models.DefaultChillerCatalog()
	}
}

// ChillerSizer searches chiller plant configurations.
type ChillerSizer struct{}

// NewChillerSizer creates a new configuration searcher.
func NewChillerSizer() *ChillerSizer {
	return &ChillerSizer{}
}

// Search evaluates every catalog size permitted by the strategy and returns
// the feasible configurations ranked by 10-year TCO per MW. An empty slice
// means no configuration satisfies the unit cap and loading window; that is
// a normal outcome, not an error.
func (s *ChillerSizer) Search(input SearchInput) ([]models.ChillerConfig, error) {
	input.applyDefaults()
	if err := validateSearchInput(input); err != nil {
		return nil, err
	}

	var configs []models.ChillerConfig
	for _, spec := range input.Catalog.FilterByStrategy(input.Strategy) {
		cfg, ok := s.evaluate(spec, input)
		if !ok {
			continue
		}
		configs = append(configs, cfg)
	}

	// Rank by amortized cost. Ties prefer fewer units, then smaller units,
	// so output order never depends on catalog iteration order.
	sort.SliceStable(configs, func(i, j int) bool {
		a, b := configs[i], configs[j]
		if a.TCOPerMW != b.TCOPerMW {
			return a.TCOPerMW < b.TCOPerMW
		}
		if a.TotalChillers != b.TotalChillers {
			return a.TotalChillers < b.TotalChillers
		}
		return a.UnitCapacityMW < b.UnitCapacityMW
	})

	return configs, nil
}

// evaluate derives the configuration candidate for one unit size. The
// second return is false when the size is rejected by the unit cap or the
// loading window.
func (s *ChillerSizer) evaluate(spec models.ChillerSpec, input SearchInput) (models.ChillerConfig, bool) {
	// Minimum operating units so the load fits at the maximum acceptable loading
	base := int(math.Ceil(input.TotalLoadMW / (spec.CapacityMW * input.MaxLoadingPct / 100)))

	var redundant int
	switch input.Redundancy {
	case models.NPlus1:
		redundant = 1
	case models.NPlus2:
		redundant = 2
	case models.NPlusPercent:
		spareCapacityMW := input.TotalLoadMW * input.RedundancyPercent / 100
		redundant = int(math.Ceil(spareCapacityMW / spec.CapacityMW))
	}

	total := base + redundant
	if total > input.MaxChillers {
		return models.ChillerConfig{}, false
	}

	// Any redundant plant needs at least one spare beside one operating unit.
	if total < 2 {
		total = 2
		redundant = 1
	}

	operating := total - redundant
	loadingPct := input.TotalLoadMW / (float64(operating) * spec.CapacityMW) * 100
	if loadingPct < input.MinLoadingPct || loadingPct > input.MaxLoadingPct {
		return models.ChillerConfig{}, false
	}

	redundancyPct := float64(redundant) * spec.CapacityMW / input.TotalLoadMW * 100

	operatingTons := float64(operating) * spec.CapacityTons * loadingPct / 100
	annualKWh := operatingTons * spec.KWPerTon * input.AnnualHours
	annualEnergyUSD := annualKWh * input.ElectricityRate

	totalTons := float64(total) * spec.CapacityTons
	installUSD := totalTons * spec.InstallCostPerTon
	maintenanceUSD := float64(total) * spec.AnnualMaintenanceUSD
	tcoUSD := installUSD + tcoHorizonYears*(annualEnergyUSD+maintenanceUSD)

	return models.ChillerConfig{
		UnitCapacityMW:       spec.CapacityMW,
		UnitCapacityTons:     spec.CapacityTons,
		TotalChillers:        total,
		OperatingChillers:    operating,
		RedundantChillers:    redundant,
		TotalCapacityMW:      round1(float64(total) * spec.CapacityMW),
		TotalCapacityTons:    math.Round(totalTons),
		LoadingPct:           round1(loadingPct),
		RedundancyPct:        round1(redundancyPct),
		COP:                  spec.COP,
		KWPerTon:             spec.KWPerTon,
		AnnualKWh:            math.Round(annualKWh),
		AnnualEnergyUSD:      math.Round(annualEnergyUSD),
		InstallUSD:           math.Round(installUSD),
		AnnualMaintenanceUSD: math.Round(maintenanceUSD),
		TenYearTCOUSD:        math.Round(tcoUSD),
		TCOPerMW:             math.Round(tcoUSD / input.TotalLoadMW),
	}, true
}

// ABOUTME: Chiller catalog records and plant configuration candidates
// ABOUTME: Defines redundancy models and sizing strategies for the search

package models

// RedundancyModel selects how many spare chillers are installed beyond the
// minimum required capacity.
type RedundancyModel string

const (
	NPlus1       RedundancyModel = "n+1"
	NPlus2       RedundancyModel = "n+2"
	NPlusPercent RedundancyModel = "n+percent"
)

// Strategy filters which catalog unit sizes are eligible.
type Strategy string

const (
	StrategyModular  Strategy = "modular"  // many small chillers
	StrategyCentral  Strategy = "central"  // few large chillers
	StrategyBalanced Strategy = "balanced" // full catalog
)

// Strategy thresholds in cooling tons.
const (
	modularMaxTons = 500
	centralMinTons = 750
)

// ChillerSpec describes one catalog unit size.
type ChillerSpec struct {
	CapacityMW           float64 `json:"capacity_mw"`
	CapacityTons         float64 `json:"capacity_tons"`
	COP                  float64 `json:"cop"`
	KWPerTon             float64 `json:"kw_per_ton"`
	InstallCostPerTon    float64 `json:"install_cost_per_ton"`
	AnnualMaintenanceUSD float64 `json:"annual_maintenance_usd"`
}

// ChillerCatalog is kept sorted ascending by capacity so enumeration order
// is deterministic.
type ChillerCatalog []ChillerSpec

// DefaultChillerCatalog returns the standard catalog of water-cooled
// centrifugal chillers (100-2000 tons) with typical efficiency and cost data.
func DefaultChillerCatalog() ChillerCatalog {
	return ChillerCatalog{
		{CapacityMW: 0.35, CapacityTons: 100, COP: 5.8, KWPerTon: 0.61, InstallCostPerTon: 1200, AnnualMaintenanceUSD: 8000},
		{CapacityMW: 0.53, CapacityTons: 150, COP: 6.2, KWPerTon: 0.57, InstallCostPerTon: 1150, AnnualMaintenanceUSD: 10000},
		{CapacityMW: 0.70, CapacityTons: 200, COP: 6.5, KWPerTon: 0.54, InstallCostPerTon: 1100, AnnualMaintenanceUSD: 12000},
		{CapacityMW: 1.05, CapacityTons: 300, COP: 6.8, KWPerTon: 0.52, InstallCostPerTon: 1050, AnnualMaintenanceUSD: 15000},
		{CapacityMW: 1.40, CapacityTons: 400, COP: 7.0, KWPerTon: 0.50, InstallCostPerTon: 1000, AnnualMaintenanceUSD: 18000},
		{CapacityMW: 1.75, CapacityTons: 500, COP: 7.2, KWPerTon: 0.49, InstallCostPerTon: 980, AnnualMaintenanceUSD: 22000},
		{CapacityMW: 2.63, CapacityTons: 750, COP: 7.5, KWPerTon: 0.47, InstallCostPerTon: 950, AnnualMaintenanceUSD: 28000},
		{CapacityMW: 3.50, CapacityTons: 1000, COP: 7.8, KWPerTon: 0.45, InstallCostPerTon: 920, AnnualMaintenanceUSD: 35000},
		{CapacityMW: 5.25, CapacityTons: 1500, COP: 8.0, KWPerTon: 0.44, InstallCostPerTon: 900, AnnualMaintenanceUSD: 45000},
		{CapacityMW: 7.00, CapacityTons: 2000, COP: 8.2, KWPerTon: 0.43, InstallCostPerTon: 880, AnnualMaintenanceUSD: 55000},
	}
}

// FilterByStrategy returns the catalog entries eligible under the strategy.
func (c ChillerCatalog) FilterByStrategy(s Strategy) ChillerCatalog {
	switch s {
	case StrategyModular:
		var out ChillerCatalog
		for _, spec := range c {
			if spec.CapacityTons <= modularMaxTons {
				out = append(out, spec)
			}
		}
		return out
	case StrategyCentral:
		var out ChillerCatalog
		for _, spec := range c {
			if spec.CapacityTons >= centralMinTons {
				out = append(out, spec)
			}
		}
		return out
	default:
		return c
	}
}

// ChillerConfig is one feasible plant configuration candidate.
type ChillerConfig struct {
	UnitCapacityMW       float64 `json:"unit_capacity_mw"`
	UnitCapacityTons     float64 `json:"unit_capacity_tons"`
	TotalChillers        int     `json:"total_chillers"`
	OperatingChillers    int     `json:"operating_chillers"`
	RedundantChillers    int     `json:"redundant_chillers"`
	TotalCapacityMW      float64 `json:"total_capacity_mw"`
	TotalCapacityTons    float64 `json:"total_capacity_tons"`
	LoadingPct           float64 `json:"loading_pct"`
	RedundancyPct        float64 `json:"redundancy_pct"`
	COP                  float64 `json:"cop"`
	KWPerTon             float64 `json:"kw_per_ton"`
	AnnualKWh            float64 `json:"annual_kwh"`
	AnnualEnergyUSD      float64 `json:"annual_energy_usd"`
	InstallUSD           float64 `json:"install_usd"`
	AnnualMaintenanceUSD float64 `json:"annual_maintenance_usd"`
	TenYearTCOUSD        float64 `json:"ten_year_tco_usd"`
	TCOPerMW             float64 `json:"tco_per_mw"`
}

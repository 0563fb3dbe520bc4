// ABOUTME: Fluid property records for common HVAC fluids
// ABOUTME: Provides the built-in catalog and lookup by fluid key

package models

import "fmt"

// Fluid holds properties at standard conditions (60°F).
type Fluid struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	DensityLbFt3   float64 `json:"density_lb_ft3"`
	ViscosityLbFtS float64 `json:"viscosity_lb_ft_s"`
}

// FluidCatalog is an immutable list of fluids available for sizing.
type FluidCatalog []Fluid

// DefaultFluids returns the built-in fluid catalog.
func DefaultFluids() FluidCatalog {
	return FluidCatalog{
		{Key: "water", Name: "Water", DensityLbFt3: 62.4, ViscosityLbFtS: 2.73e-5},
		{Key: "glycol_30", Name: "30% Ethylene Glycol", DensityLbFt3: 63.8, ViscosityLbFtS: 4.2e-5},
		{Key: "glycol_50", Name: "50% Ethylene Glycol", DensityLbFt3: 65.4, ViscosityLbFtS: 8.9e-5},
	}
}

// Lookup returns the fluid registered under key.
func (c FluidCatalog) Lookup(key string) (Fluid, error) {
	for _, f := range c {
		if f.Key == key {
			return f, nil
		}
	}
	return Fluid{}, fmt.Errorf("unknown fluid type: %q", key)
}

// ABOUTME: Unit conversions between cooling load, volumetric flow, and mass flow
// ABOUTME: Conversions live at the boundary; the solvers run in Imperial units

package services

// 1 MW of cooling is 3,412,000 BTU/hr; chilled water carries 500 BTU/hr
// per GPM per °F of ΔT.
const (
	btuPerHrPerMW    = 3412000.0
	btuPerGPMPerDegF = 500.0
	gallonsPerFt3    = 7.48
)

// MWToGPM converts a cooling load and ΔT to a chilled-water flow rate.
func MWToGPM(mw, deltaTF float64) float64 {
	return mw * btuPerHrPerMW / (btuPerGPMPerDegF * deltaTF)
}

// GPMToMassFlowLbHr converts volumetric flow to mass flow at the given
// fluid density.
func GPMToMassFlowLbHr(gpm, densityLbFt3 float64) float64 {
	return gpm * 60 * densityLbFt3 / gallonsPerFt3
}

// MassFlowToGPM is the inverse conversion, used when reporting results.
func MassFlowToGPM(lbHr, densityLbFt3 float64) float64 {
	return lbHr / 3600 / densityLbFt3 * gallonsPerFt3 * 60
}

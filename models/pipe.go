// ABOUTME: Standard pipe schedule table and pipe sizing result records
// ABOUTME: Supports smallest-entry-at-least lookup for diameter standardization

package models

import "sort"

// PipeScheduleEntry is one standard manufactured pipe size.
type PipeScheduleEntry struct {
	Nominal            string  `json:"nominal"`
	InternalDiameterIn float64 `json:"internal_diameter_in"`
}

// PipeSchedule is an ordered table of standard sizes, ascending by
// internal diameter.
type PipeSchedule []PipeScheduleEntry

// Schedule40 returns the default Schedule 40 steel pipe table (6"-48").
func Schedule40() PipeSchedule {
	return PipeSchedule{
		{Nominal: `6"`, InternalDiameterIn: 6.065},
		{Nominal: `8"`, InternalDiameterIn: 7.981},
		{Nominal: `10"`, InternalDiameterIn: 10.020},
		{Nominal: `12"`, InternalDiameterIn: 11.938},
		{Nominal: `14"`, InternalDiameterIn: 13.124},
		{Nominal: `16"`, InternalDiameterIn: 15.000},
		{Nominal: `18"`, InternalDiameterIn: 16.876},
		{Nominal: `20"`, InternalDiameterIn: 18.812},
		{Nominal: `24"`, InternalDiameterIn: 22.624},
		{Nominal: `30"`, InternalDiameterIn: 28.750},
		{Nominal: `36"`, InternalDiameterIn: 34.500},
		{Nominal: `42"`, InternalDiameterIn: 40.250},
		{Nominal: `48"`, InternalDiameterIn: 46.000},
	}
}

// SmallestAtLeast returns the smallest entry whose internal diameter is at
// least diameterIn, or nil when no table entry is that large.
func (s PipeSchedule) SmallestAtLeast(diameterIn float64) *PipeScheduleEntry {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].InternalDiameterIn >= diameterIn
	})
	if i == len(s) {
		return nil
	}
	entry := s[i]
	return &entry
}

// SizingResult is the operating point of a sized pipe segment.
//
// Resolved is false when the converged diameter exceeds every schedule
// entry; the raw theoretical diameter is then reported instead of being
// coerced into the largest standard size.
type SizingResult struct {
	StandardSize    string  `json:"standard_size,omitempty"`
	PipeIDIn        float64 `json:"pipe_id_in"`
	FlowGPM         float64 `json:"flow_gpm"`
	VelocityFtS     float64 `json:"velocity_ft_s"`
	ReynoldsNumber  float64 `json:"reynolds_number"`
	FrictionFactor  float64 `json:"friction_factor"`
	PressureDropPsi float64 `json:"pressure_drop_psi"`
	Resolved        bool    `json:"resolved"`
}

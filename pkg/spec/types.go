package spec

import "sort"

// ScenarioSpec is the top-level techno-economic scenario for a DAC facility.
type ScenarioSpec struct {
	SpecVersion string       `yaml:"spec_version" json:"spec_version"`
	Facility    FacilityDef  `yaml:"facility" json:"facility"`
	Financing   FinancingDef `yaml:"financing" json:"financing"`
	Electric    *EnergyDef   `yaml:"electric" json:"electric"`
	Thermal     *EnergyDef   `yaml:"thermal,omitempty" json:"thermal,omitempty"`

	// Technologies overrides entries of the default generation table.
	// Keys are source names (Grid, Solar, Wind, NaturalGas, Nuclear).
	Technologies map[string]TechnologyDef `yaml:"technologies,omitempty" json:"technologies,omitempty"`
}

// FacilityDef describes the non-energy side of the capture plant.
type FacilityDef struct {
	CapacityTonnesYear float64 `yaml:"capacity_tonnes_year" json:"capacity_tonnes_year"`
	CapacityFactor     float64 `yaml:"capacity_factor" json:"capacity_factor"`
	TotalCapexM        float64 `yaml:"total_capex_m" json:"total_capex_m"`
	FixedOMRate        float64 `yaml:"fixed_om_rate" json:"fixed_om_rate"`
	VariableOMPerTonne float64 `yaml:"variable_om_per_tonne" json:"variable_om_per_tonne"`
}

// FinancingDef holds the capital amortization assumptions shared by all
// sections of a scenario.
type FinancingDef struct {
	DiscountRate  float64 `yaml:"discount_rate" json:"discount_rate"`
	LifetimeYears int     `yaml:"lifetime_years" json:"lifetime_years"`
}

// EnergyDef describes one energy supply block (electric or thermal).
type EnergyDef struct {
	Source         string      `yaml:"source" json:"source"`
	BaseLoadMW     float64     `yaml:"base_load_mw" json:"base_load_mw"`
	CapacityFactor float64     `yaml:"capacity_factor,omitempty" json:"capacity_factor,omitempty"`
	Battery        *BatteryDef `yaml:"battery,omitempty" json:"battery,omitempty"`

	// Direct-fired thermal blocks burn fuel in an oxy-fired kiln rather
	// than drawing on a generation plant; only fuel cost applies.
	DirectFired               bool    `yaml:"direct_fired,omitempty" json:"direct_fired,omitempty"`
	RequiredThermalGJPerTonne float64 `yaml:"required_thermal_gj_per_tonne,omitempty" json:"required_thermal_gj_per_tonne,omitempty"`
}

// BatteryDef sizes a storage block that firms an intermittent source.
type BatteryDef struct {
	CoverageHours       float64 `yaml:"coverage_hours" json:"coverage_hours"`
	RoundTripEfficiency float64 `yaml:"round_trip_efficiency" json:"round_trip_efficiency"`
	EnergyCapexPerMWh   float64 `yaml:"energy_capex_per_mwh" json:"energy_capex_per_mwh"`
	PowerCapexPerKW     float64 `yaml:"power_capex_per_kw" json:"power_capex_per_kw"`
	FixedOMRate         float64 `yaml:"fixed_om_rate" json:"fixed_om_rate"`
}

// TechnologyDef holds the cost characteristics of one generation source.
// Heat rate, fuel, and emissions fields apply only to fueled sources and
// remain zero for the rest.
type TechnologyDef struct {
	CapitalCostPerKW    float64 `yaml:"capital_cost_per_kw" json:"capital_cost_per_kw"`
	VariableCostPerMWh  float64 `yaml:"variable_cost_per_mwh" json:"variable_cost_per_mwh"`
	HeatRateMMBtuPerMWh float64 `yaml:"heat_rate_mmbtu_per_mwh,omitempty" json:"heat_rate_mmbtu_per_mwh,omitempty"`
	FuelPricePerMMBtu   float64 `yaml:"fuel_price_per_mmbtu,omitempty" json:"fuel_price_per_mmbtu,omitempty"`
	CO2LbPerMMBtu       float64 `yaml:"co2_lb_per_mmbtu,omitempty" json:"co2_lb_per_mmbtu,omitempty"`
	CaptureEfficiency   float64 `yaml:"capture_efficiency,omitempty" json:"capture_efficiency,omitempty"`
}

// Technology returns the effective definition for a source, preferring a
// scenario override over the default table. The second return reports
// whether the source is recognized at all.
func (s *ScenarioSpec) Technology(source string) (TechnologyDef, bool) {
	if tech, ok := s.Technologies[source]; ok {
		return tech, true
	}
	tech, ok := DefaultTechnologies[source]
	return tech, ok
}

// Sources returns the recognized source names, defaults first in stable
// order, then any scenario-only additions.
func (s *ScenarioSpec) Sources() []string {
	names := make([]string, 0, len(sourceOrder)+len(s.Technologies))
	names = append(names, sourceOrder...)
	extras := make([]string, 0, len(s.Technologies))
	for name := range s.Technologies {
		if _, known := DefaultTechnologies[name]; !known {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(names, extras...)
}

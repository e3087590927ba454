package validation

import (
	"fmt"

	"github.com/carbonplan/dac-costing/pkg/spec"
)

// ValidateSchema performs structural validation on a parsed ScenarioSpec
// before any computation.
func ValidateSchema(s *spec.ScenarioSpec) *Report {
	r := NewReport()

	validateFacility(s, r)
	validateFinancing(s, r)
	validateEnergy(s, s.Electric, "electric", r)
	validateEnergy(s, s.Thermal, "thermal", r)

	if s.Electric == nil {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "an electric energy section is required: a DAC facility always draws electric power",
			SpecPath: "electric",
			Expected: "electric section present",
		})
	}

	return r
}

func validateFacility(s *spec.ScenarioSpec, r *Report) {
	f := s.Facility

	if f.CapacityTonnesYear <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "facility.capacity_tonnes_year must be greater than 0",
			SpecPath:    "facility.capacity_tonnes_year",
			ActualValue: f.CapacityTonnesYear,
			Expected:    "> 0",
		})
	}
	if f.CapacityFactor <= 0 || f.CapacityFactor > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("facility.capacity_factor must be in (0, 1], got %.3f", f.CapacityFactor),
			SpecPath:    "facility.capacity_factor",
			ActualValue: f.CapacityFactor,
			Expected:    "(0, 1]",
		})
	}
	if f.TotalCapexM < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "facility.total_capex_m must be non-negative",
			SpecPath:    "facility.total_capex_m",
			ActualValue: f.TotalCapexM,
			Expected:    ">= 0",
		})
	}
	if f.FixedOMRate < 0 || f.VariableOMPerTonne < 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "facility O&M rates must be non-negative",
			SpecPath: "facility",
			Expected: ">= 0",
		})
	}
}

func validateFinancing(s *spec.ScenarioSpec, r *Report) {
	if s.Financing.LifetimeYears <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "financing.lifetime_years must be greater than 0",
			SpecPath:    "financing.lifetime_years",
			ActualValue: s.Financing.LifetimeYears,
			Expected:    "> 0",
		})
	}
	if s.Financing.DiscountRate < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "financing.discount_rate must be non-negative",
			SpecPath:    "financing.discount_rate",
			ActualValue: s.Financing.DiscountRate,
			Expected:    ">= 0",
		})
	}
	if s.Financing.DiscountRate > 0.3 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("financing.discount_rate %.2f is unusually high", s.Financing.DiscountRate),
			SpecPath:    "financing.discount_rate",
			ActualValue: s.Financing.DiscountRate,
			Suggestions: []string{"Rates are fractions: 0.07 means 7%"},
		})
	}
}

func validateEnergy(s *spec.ScenarioSpec, e *spec.EnergyDef, path string, r *Report) {
	if e == nil {
		return
	}

	if _, ok := s.Technology(e.Source); !ok {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s.source %q is not a recognized energy source", path, e.Source),
			SpecPath:    path + ".source",
			ActualValue: e.Source,
			Expected:    fmt.Sprintf("one of %v", s.Sources()),
		})
	}
	if e.BaseLoadMW < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s.base_load_mw must be non-negative", path),
			SpecPath:    path + ".base_load_mw",
			ActualValue: e.BaseLoadMW,
			Expected:    ">= 0",
		})
	}
	if e.CapacityFactor <= 0 || e.CapacityFactor > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s.capacity_factor must be in (0, 1], got %.3f", path, e.CapacityFactor),
			SpecPath:    path + ".capacity_factor",
			ActualValue: e.CapacityFactor,
			Expected:    "(0, 1]",
		})
	}

	if e.DirectFired {
		if e.RequiredThermalGJPerTonne <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.required_thermal_gj_per_tonne must be > 0 for direct-fired blocks", path),
				SpecPath:    path + ".required_thermal_gj_per_tonne",
				ActualValue: e.RequiredThermalGJPerTonne,
				Expected:    "> 0",
			})
		}
		if e.Battery != nil {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("%s: direct-fired blocks cannot carry a battery", path),
				SpecPath: path + ".battery",
			})
		}
	}

	if b := e.Battery; b != nil {
		if b.CoverageHours < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.battery.coverage_hours must be non-negative", path),
				SpecPath:    path + ".battery.coverage_hours",
				ActualValue: b.CoverageHours,
				Expected:    ">= 0",
			})
		}
		if b.RoundTripEfficiency <= 0 || b.RoundTripEfficiency > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.battery.round_trip_efficiency must be in (0, 1], got %.3f", path, b.RoundTripEfficiency),
				SpecPath:    path + ".battery.round_trip_efficiency",
				ActualValue: b.RoundTripEfficiency,
				Expected:    "(0, 1]",
			})
		}
		if b.CoverageHours > 0 && e.BaseLoadMW <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: cannot size a battery with zero base load", path),
				SpecPath:    path + ".base_load_mw",
				ActualValue: e.BaseLoadMW,
				Expected:    "> 0 when battery coverage > 0",
			})
		}
	}
}

package model

import (
	"sort"

	"github.com/carbonplan/dac-costing/pkg/spec"
)

// Parameter vocabulary for widget-style callers that supply named numeric
// values instead of a scenario file. Rate keys marked [%] take fractions
// (0.07, not 7); "Total Capex [$]" is scaled to millions of dollars,
// matching the reference spreadsheet.
const (
	ParamTotalCapex      = "Total Capex [$]"
	ParamDacCapacity     = "DAC Capacity [tonnes/year]"
	ParamCapacityFactor  = "Capacity Factor [%]"
	ParamDiscountRate    = "Discount Rate [%]"
	ParamPlantLifetime   = "Plant Lifetime [years]"
	ParamFixedOM         = "Fixed O&M [%]"
	ParamVariableOM      = "Variable O&M [$/tonne]"
	ParamBaseEnergy      = "Base Energy Requirement [MW]"
	ParamThermalEnergy   = "Thermal Energy Requirement [MW]"
	ParamBatteryCoverage = "Battery Coverage [hours]"
	ParamRoundTrip       = "Round Trip Efficiency [%]"
	ParamGasPrice        = "Natural Gas Cost [$/mmBTU]"
	ParamRequiredThermal = "Required Thermal Energy [GJ/tonne]"
)

// requiredParams have no default; their absence is an error.
var requiredParams = []string{ParamTotalCapex, ParamBaseEnergy}

// FromParams builds a scenario from the documented parameter vocabulary.
// Unknown keys are rejected rather than silently ignored; keys absent
// from the map fall back to the documented defaults. thermalSource may be
// empty for an electric-only facility.
func FromParams(electricSource, thermalSource string, params map[string]float64) (*spec.ScenarioSpec, error) {
	s := spec.Defaults()
	s.Electric = &spec.EnergyDef{Source: electricSource}
	if thermalSource != "" {
		s.Thermal = &spec.EnergyDef{Source: thermalSource}
	}
	if _, ok := s.Technology(electricSource); !ok {
		return nil, &UnrecognizedCategoryError{Category: electricSource, Known: s.Sources()}
	}
	if thermalSource != "" {
		if _, ok := s.Technology(thermalSource); !ok {
			return nil, &UnrecognizedCategoryError{Category: thermalSource, Known: s.Sources()}
		}
	}

	for _, name := range requiredParams {
		if _, ok := params[name]; !ok {
			return nil, &MissingParameterError{Name: name}
		}
	}

	for _, kv := range sortedParams(params) {
		if err := applyParam(s, kv.name, kv.value); err != nil {
			return nil, err
		}
	}

	s.ApplyDefaults()
	return s, nil
}

type paramKV struct {
	name  string
	value float64
}

func sortedParams(params map[string]float64) []paramKV {
	kvs := make([]paramKV, 0, len(params))
	for name, value := range params {
		kvs = append(kvs, paramKV{name, value})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].name < kvs[j].name })
	return kvs
}

func applyParam(s *spec.ScenarioSpec, name string, value float64) error {
	switch name {
	case ParamTotalCapex:
		s.Facility.TotalCapexM = value
	case ParamDacCapacity:
		s.Facility.CapacityTonnesYear = value
	case ParamCapacityFactor:
		s.Facility.CapacityFactor = value
	case ParamDiscountRate:
		s.Financing.DiscountRate = value
	case ParamPlantLifetime:
		s.Financing.LifetimeYears = int(value)
	case ParamFixedOM:
		s.Facility.FixedOMRate = value
	case ParamVariableOM:
		s.Facility.VariableOMPerTonne = value
	case ParamBaseEnergy:
		s.Electric.BaseLoadMW = value
	case ParamThermalEnergy:
		if s.Thermal == nil {
			return &MissingParameterError{Name: "thermal source"}
		}
		s.Thermal.BaseLoadMW = value
	case ParamBatteryCoverage:
		ensureBattery(s.Electric).CoverageHours = value
	case ParamRoundTrip:
		ensureBattery(s.Electric).RoundTripEfficiency = value
	case ParamGasPrice:
		overrideGasPrice(s, value)
	case ParamRequiredThermal:
		if s.Thermal == nil {
			return &MissingParameterError{Name: "thermal source"}
		}
		s.Thermal.DirectFired = true
		s.Thermal.RequiredThermalGJPerTonne = value
	default:
		return &UnrecognizedCategoryError{Category: name, Known: knownParams()}
	}
	return nil
}

func ensureBattery(e *spec.EnergyDef) *spec.BatteryDef {
	if e.Battery == nil {
		e.Battery = &spec.BatteryDef{}
	}
	return e.Battery
}

func overrideGasPrice(s *spec.ScenarioSpec, price float64) {
	if s.Technologies == nil {
		s.Technologies = map[string]spec.TechnologyDef{}
	}
	tech, _ := s.Technology(spec.SourceNaturalGas)
	tech.FuelPricePerMMBtu = price
	s.Technologies[spec.SourceNaturalGas] = tech
}

func knownParams() []string {
	return []string{
		ParamTotalCapex, ParamDacCapacity, ParamCapacityFactor,
		ParamDiscountRate, ParamPlantLifetime, ParamFixedOM,
		ParamVariableOM, ParamBaseEnergy, ParamThermalEnergy,
		ParamBatteryCoverage, ParamRoundTrip, ParamGasPrice,
		ParamRequiredThermal,
	}
}

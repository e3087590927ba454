package model

import (
	"github.com/carbonplan/dac-costing/pkg/spec"
)

// EnergySection computes the annualized cost of supplying electric or
// thermal energy from one source, optionally firmed by a battery. It is
// immutable after construction.
type EnergySection struct {
	source  string
	fin     spec.FinancingDef
	battery *BatterySection

	capitalCost     float64 // installed plant cost, $
	capitalAnnual   float64 // capex amortization, $/yr
	variableAnnual  float64 // non-fuel variable cost, $/yr
	fuelAnnual      float64 // fuel cost, $/yr
	fuelUseMMBtu    float64 // annual fuel burn
	emittedTonnes   float64 // tCO2e/yr escaping capture
	deliveredMWh    float64 // annual delivered energy
	capacityFactor  float64
}

// NewEnergySection builds an energy supply block from its definition.
// The scenario provides the technology table and financing; a battery is
// attached by passing the section it should firm (nil for none). The
// capacity of the owning facility is used to scale direct-fired fuel
// demand.
func NewEnergySection(s *spec.ScenarioSpec, def *spec.EnergyDef, battery *BatterySection) (*EnergySection, error) {
	if def == nil {
		return nil, &MissingParameterError{Name: "energy section"}
	}
	if err := checkFinancing(s.Financing); err != nil {
		return nil, err
	}

	tech, ok := s.Technology(def.Source)
	if !ok {
		return nil, &UnrecognizedCategoryError{Category: def.Source, Known: s.Sources()}
	}

	cf := def.CapacityFactor
	if cf <= 0 || cf > 1 {
		return nil, &InvalidParameterError{Name: "Capacity Factor [%]", Value: cf, Reason: "must be in (0, 1]"}
	}
	if def.BaseLoadMW < 0 {
		return nil, &InvalidParameterError{Name: "Base Energy Requirement [MW]", Value: def.BaseLoadMW, Reason: "must be >= 0"}
	}

	e := &EnergySection{
		source:         def.Source,
		fin:            s.Financing,
		battery:        battery,
		capacityFactor: cf,
	}

	if def.DirectFired {
		return e.computeDirectFired(s, def, tech)
	}

	e.capitalCost = def.BaseLoadMW * KWPerMW * tech.CapitalCostPerKW
	e.capitalAnnual = e.capitalCost * FixedChargeRate(s.Financing.DiscountRate, s.Financing.LifetimeYears)
	e.deliveredMWh = def.BaseLoadMW * HoursPerYear * cf
	e.variableAnnual = e.deliveredMWh * tech.VariableCostPerMWh
	e.fuelUseMMBtu = e.deliveredMWh * tech.HeatRateMMBtuPerMWh
	e.fuelAnnual = e.fuelUseMMBtu * tech.FuelPricePerMMBtu
	e.emittedTonnes = e.fuelUseMMBtu * tech.CO2LbPerMMBtu * LbToMetricTon * (1 - tech.CaptureEfficiency)

	return e, nil
}

// computeDirectFired costs a thermal block that burns fuel directly in an
// oxy-fired kiln: no generation plant, no battery, fuel only. Combustion
// CO2 joins the capture stream, so nothing is emitted.
func (e *EnergySection) computeDirectFired(s *spec.ScenarioSpec, def *spec.EnergyDef, tech spec.TechnologyDef) (*EnergySection, error) {
	if def.Battery != nil || e.battery != nil {
		return nil, &InvalidParameterError{Name: "Battery Coverage [hours]", Value: 0, Reason: "direct-fired blocks cannot carry a battery"}
	}
	if def.RequiredThermalGJPerTonne <= 0 {
		return nil, &InvalidParameterError{Name: "Required Thermal Energy [GJ/tonne]", Value: def.RequiredThermalGJPerTonne, Reason: "must be > 0 for direct-fired blocks"}
	}
	if tech.FuelPricePerMMBtu <= 0 {
		return nil, &InvalidParameterError{Name: "Natural Gas Cost [$/mmBTU]", Value: tech.FuelPricePerMMBtu, Reason: "direct-fired blocks require a fueled source"}
	}

	captured := s.Facility.CapacityTonnesYear * e.capacityFactor
	e.fuelUseMMBtu = def.RequiredThermalGJPerTonne * MMBtuPerGJ * captured
	e.fuelAnnual = e.fuelUseMMBtu * tech.FuelPricePerMMBtu
	return e, nil
}

// Source returns the energy source tag.
func (e *EnergySection) Source() string { return e.source }

// Battery returns the attached battery section, or nil.
func (e *EnergySection) Battery() *BatterySection { return e.battery }

// Years returns the number of periods this section's series spans.
func (e *EnergySection) Years() int { return e.fin.LifetimeYears }

// CapitalAnnual returns the annualized plant capital cost in $/yr.
func (e *EnergySection) CapitalAnnual() float64 { return e.capitalAnnual }

// VariableAnnual returns the annual non-fuel variable cost in $/yr.
func (e *EnergySection) VariableAnnual() float64 { return e.variableAnnual }

// FuelAnnual returns the annual fuel cost in $/yr.
func (e *EnergySection) FuelAnnual() float64 { return e.fuelAnnual }

// FuelUseMMBtu returns the annual fuel burn in MMBtu.
func (e *EnergySection) FuelUseMMBtu() float64 { return e.fuelUseMMBtu }

// EmittedTonnes returns the tCO2e per year escaping capture.
func (e *EnergySection) EmittedTonnes() float64 { return e.emittedTonnes }

// BatteryAnnual returns the annualized battery cost in $/yr, zero when
// no battery is attached.
func (e *EnergySection) BatteryAnnual() float64 {
	if e.battery == nil {
		return 0
	}
	return e.battery.AnnualCost()
}

// Annual returns the total annualized section cost in $/yr.
func (e *EnergySection) Annual() float64 {
	return e.capitalAnnual + e.variableAnnual + e.fuelAnnual + e.BatteryAnnual()
}

// Series materializes the per-year cost series over the lifetime.
func (e *EnergySection) Series() Series {
	return Constant(e.Annual(), e.fin.LifetimeYears)
}

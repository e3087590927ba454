package model

import "github.com/carbonplan/dac-costing/pkg/spec"

// DacSection computes the non-energy capital and operating costs of the
// capture plant itself (sorbent handling, air contactors, compression).
// It is immutable after construction.
type DacSection struct {
	fin spec.FinancingDef

	capitalCost    float64 // total capex, $
	capitalAnnual  float64 // capex amortization, $/yr
	fixedOMAnnual  float64 // $/yr
	varOMAnnual    float64 // $/yr
	capturedTonnes float64 // tCO2/yr at the planned capacity factor
}

// NewDacSection builds the DAC plant section from the scenario's facility
// and financing definitions.
func NewDacSection(s *spec.ScenarioSpec) (*DacSection, error) {
	if err := checkFinancing(s.Financing); err != nil {
		return nil, err
	}
	f := s.Facility
	if f.CapacityTonnesYear <= 0 {
		return nil, &InvalidParameterError{Name: "DAC Capacity [tonnes/year]", Value: f.CapacityTonnesYear, Reason: "must be > 0"}
	}
	if f.CapacityFactor <= 0 || f.CapacityFactor > 1 {
		return nil, &InvalidParameterError{Name: "Capacity Factor [%]", Value: f.CapacityFactor, Reason: "must be in (0, 1]"}
	}
	if f.TotalCapexM < 0 {
		return nil, &InvalidParameterError{Name: "Total Capex [$]", Value: f.TotalCapexM, Reason: "must be >= 0"}
	}
	if f.FixedOMRate < 0 {
		return nil, &InvalidParameterError{Name: "Fixed O&M [%]", Value: f.FixedOMRate, Reason: "must be >= 0"}
	}
	if f.VariableOMPerTonne < 0 {
		return nil, &InvalidParameterError{Name: "Variable O&M [$/tonne]", Value: f.VariableOMPerTonne, Reason: "must be >= 0"}
	}

	d := &DacSection{fin: s.Financing}
	d.capitalCost = f.TotalCapexM * Million
	d.capitalAnnual = d.capitalCost * FixedChargeRate(s.Financing.DiscountRate, s.Financing.LifetimeYears)
	d.fixedOMAnnual = d.capitalCost * f.FixedOMRate
	d.capturedTonnes = f.CapacityTonnesYear * f.CapacityFactor
	d.varOMAnnual = f.VariableOMPerTonne * d.capturedTonnes

	return d, nil
}

// Years returns the number of periods this section's series spans.
func (d *DacSection) Years() int { return d.fin.LifetimeYears }

// CapitalCost returns the total plant capex in $.
func (d *DacSection) CapitalCost() float64 { return d.capitalCost }

// CapitalAnnual returns the annualized capex in $/yr.
func (d *DacSection) CapitalAnnual() float64 { return d.capitalAnnual }

// FixedOMAnnual returns the annual fixed O&M cost in $/yr.
func (d *DacSection) FixedOMAnnual() float64 { return d.fixedOMAnnual }

// VariableOMAnnual returns the annual throughput-dependent O&M in $/yr.
func (d *DacSection) VariableOMAnnual() float64 { return d.varOMAnnual }

// CapturedTonnes returns the annual capture at the planned capacity
// factor, in tCO2/yr.
func (d *DacSection) CapturedTonnes() float64 { return d.capturedTonnes }

// Annual returns the total annualized section cost in $/yr.
func (d *DacSection) Annual() float64 {
	return d.capitalAnnual + d.fixedOMAnnual + d.varOMAnnual
}

// Series materializes the per-year cost series over the lifetime.
func (d *DacSection) Series() Series {
	return Constant(d.Annual(), d.fin.LifetimeYears)
}

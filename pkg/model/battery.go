package model

import "github.com/carbonplan/dac-costing/pkg/spec"

// BatterySection sizes and costs the storage needed to firm an
// intermittent energy source through non-generating hours. It is
// immutable after construction; all derived values are computed eagerly.
type BatterySection struct {
	fin spec.FinancingDef

	energyCapacityMWh float64
	powerCapacityMW   float64
	capitalCost       float64
	annualCost        float64
}

// NewBatterySection builds a battery sized for the given base load and
// coverage definition. A zero coverage duration yields a valid section
// that contributes no capacity and no cost.
func NewBatterySection(def *spec.BatteryDef, fin spec.FinancingDef, baseLoadMW float64) (*BatterySection, error) {
	if err := checkFinancing(fin); err != nil {
		return nil, err
	}
	if def.CoverageHours < 0 {
		return nil, &InvalidParameterError{Name: "Battery Coverage [hours]", Value: def.CoverageHours, Reason: "must be >= 0"}
	}

	b := &BatterySection{fin: fin}
	if def.CoverageHours == 0 {
		return b, nil
	}

	if baseLoadMW <= 0 {
		return nil, &InvalidParameterError{Name: "Base Energy Requirement [MW]", Value: baseLoadMW, Reason: "cannot size a battery with zero load"}
	}
	rte := def.RoundTripEfficiency
	if rte <= 0 || rte > 1 {
		return nil, &InvalidParameterError{Name: "Round Trip Efficiency", Value: rte, Reason: "must be in (0, 1]"}
	}
	if def.EnergyCapexPerMWh < 0 {
		return nil, &InvalidParameterError{Name: "Battery Energy Capex [$/MWh]", Value: def.EnergyCapexPerMWh, Reason: "must be >= 0"}
	}
	if def.PowerCapexPerKW < 0 {
		return nil, &InvalidParameterError{Name: "Battery Power Capex [$/kW]", Value: def.PowerCapexPerKW, Reason: "must be >= 0"}
	}
	if def.FixedOMRate < 0 {
		return nil, &InvalidParameterError{Name: "Battery Fixed O&M [%]", Value: def.FixedOMRate, Reason: "must be >= 0"}
	}

	// Stored energy is grossed up by round-trip losses; discharge power
	// matches the load being firmed.
	b.energyCapacityMWh = baseLoadMW * def.CoverageHours / rte
	b.powerCapacityMW = baseLoadMW
	b.capitalCost = b.energyCapacityMWh*def.EnergyCapexPerMWh +
		b.powerCapacityMW*KWPerMW*def.PowerCapexPerKW

	fcr := FixedChargeRate(fin.DiscountRate, fin.LifetimeYears)
	b.annualCost = b.capitalCost*fcr + b.capitalCost*def.FixedOMRate

	return b, nil
}

// EnergyCapacityMWh returns the required storage capacity.
func (b *BatterySection) EnergyCapacityMWh() float64 { return b.energyCapacityMWh }

// PowerCapacityMW returns the required discharge capacity.
func (b *BatterySection) PowerCapacityMW() float64 { return b.powerCapacityMW }

// CapitalCost returns the installed battery cost in $.
func (b *BatterySection) CapitalCost() float64 { return b.capitalCost }

// AnnualCost returns the annualized battery cost in $/yr: capital
// amortized at the fixed charge rate plus fixed O&M.
func (b *BatterySection) AnnualCost() float64 { return b.annualCost }

func checkFinancing(fin spec.FinancingDef) error {
	if fin.LifetimeYears <= 0 {
		return &InvalidParameterError{Name: "Plant Lifetime [years]", Value: float64(fin.LifetimeYears), Reason: "must be > 0"}
	}
	if fin.DiscountRate < 0 {
		return &InvalidParameterError{Name: "Discount Rate [%]", Value: fin.DiscountRate, Reason: "must be >= 0"}
	}
	return nil
}

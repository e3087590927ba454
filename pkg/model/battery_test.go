package model

import (
	"errors"
	"math"
	"testing"

	"github.com/carbonplan/dac-costing/pkg/spec"
)

var testFinancing = spec.FinancingDef{DiscountRate: 0.07, LifetimeYears: 20}

func fourHourBattery() *spec.BatteryDef {
	return &spec.BatteryDef{
		CoverageHours:       4,
		RoundTripEfficiency: 0.85,
		EnergyCapexPerMWh:   spec.DefaultBatteryEnergyCapex,
		PowerCapexPerKW:     spec.DefaultBatteryPowerCapex,
		FixedOMRate:         spec.DefaultBatteryFixedOMRate,
	}
}

func TestBatterySizing(t *testing.T) {
	b, err := NewBatterySection(fourHourBattery(), testFinancing, 38)
	if err != nil {
		t.Fatalf("NewBatterySection failed: %v", err)
	}

	// Stored energy grossed up by round-trip losses: 38 MW * 4 h / 0.85.
	wantMWh := 38.0 * 4 / 0.85
	if math.Abs(b.EnergyCapacityMWh()-wantMWh) > 1e-9 {
		t.Errorf("energy capacity = %v MWh, want %v", b.EnergyCapacityMWh(), wantMWh)
	}
	if b.PowerCapacityMW() != 38 {
		t.Errorf("power capacity = %v MW, want 38", b.PowerCapacityMW())
	}

	wantCapital := wantMWh*spec.DefaultBatteryEnergyCapex + 38*1000*spec.DefaultBatteryPowerCapex
	if math.Abs(b.CapitalCost()-wantCapital) > 1 {
		t.Errorf("capital cost = %v, want %v", b.CapitalCost(), wantCapital)
	}

	wantAnnual := wantCapital * (FixedChargeRate(0.07, 20) + spec.DefaultBatteryFixedOMRate)
	if math.Abs(b.AnnualCost()-wantAnnual) > 1 {
		t.Errorf("annual cost = %v, want %v", b.AnnualCost(), wantAnnual)
	}
}

func TestBatteryZeroCoverage(t *testing.T) {
	def := fourHourBattery()
	def.CoverageHours = 0

	b, err := NewBatterySection(def, testFinancing, 38)
	if err != nil {
		t.Fatalf("zero coverage should be valid: %v", err)
	}
	if b.AnnualCost() != 0 || b.CapitalCost() != 0 || b.EnergyCapacityMWh() != 0 {
		t.Errorf("zero-coverage battery should contribute nothing, got annual %v capital %v",
			b.AnnualCost(), b.CapitalCost())
	}
}

func TestBatteryInvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*spec.BatteryDef)
		baseLoad float64
	}{
		{"zero load with coverage", func(*spec.BatteryDef) {}, 0},
		{"negative load", func(*spec.BatteryDef) {}, -10},
		{"zero efficiency", func(d *spec.BatteryDef) { d.RoundTripEfficiency = 0 }, 38},
		{"efficiency above one", func(d *spec.BatteryDef) { d.RoundTripEfficiency = 1.2 }, 38},
		{"negative coverage", func(d *spec.BatteryDef) { d.CoverageHours = -1 }, 38},
		{"negative energy capex", func(d *spec.BatteryDef) { d.EnergyCapexPerMWh = -5 }, 38},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := fourHourBattery()
			tc.mutate(def)
			_, err := NewBatterySection(def, testFinancing, tc.baseLoad)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestBatteryInvalidFinancing(t *testing.T) {
	_, err := NewBatterySection(fourHourBattery(), spec.FinancingDef{DiscountRate: 0.07}, 38)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for zero lifetime, got %v", err)
	}
}

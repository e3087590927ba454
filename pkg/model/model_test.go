package model

import (
	"errors"
	"math"
	"testing"

	"github.com/carbonplan/dac-costing/pkg/spec"
)

// solarScenario mirrors examples/solar-battery: a 1 Mt/yr plant running
// electric and thermal loads on firmed solar.
func solarScenario() *spec.ScenarioSpec {
	s := spec.Defaults()
	s.Facility.TotalCapexM = 936.01
	s.Electric = &spec.EnergyDef{
		Source:     spec.SourceSolar,
		BaseLoadMW: 38,
		Battery:    &spec.BatteryDef{CoverageHours: 4},
	}
	s.Thermal = &spec.EnergyDef{
		Source:     spec.SourceSolar,
		BaseLoadMW: 234,
	}
	s.ApplyDefaults()
	return s
}

// gasScenario mirrors examples/natural-gas: NGCC electricity plus a
// direct-fired kiln for regeneration heat.
func gasScenario() *spec.ScenarioSpec {
	s := spec.Defaults()
	s.Facility.TotalCapexM = 1029
	s.Electric = &spec.EnergyDef{
		Source:     spec.SourceNaturalGas,
		BaseLoadMW: 47,
	}
	s.Thermal = &spec.EnergyDef{
		Source:                    spec.SourceNaturalGas,
		DirectFired:               true,
		RequiredThermalGJPerTonne: 6.64,
	}
	s.ApplyDefaults()
	return s
}

func TestComputeSolarScenario(t *testing.T) {
	res, err := Compute(solarScenario())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if res.Summary.CapturedTonnes != 900_000 {
		t.Errorf("captured = %v t/yr, want 900000", res.Summary.CapturedTonnes)
	}
	if cpt := res.Summary.CostPerTonne; cpt < 150 || cpt > 400 {
		t.Errorf("cost per tonne = %v, want within [150, 400]", cpt)
	}
	// Solar generation is emissions-free, so gross and net coincide.
	if res.Summary.EmittedTonnesPerTonne != 0 {
		t.Errorf("emitted per tonne = %v, want 0", res.Summary.EmittedTonnesPerTonne)
	}
	if res.Summary.NetCostPerTonne != res.Summary.CostPerTonne {
		t.Errorf("net = %v, want equal to gross %v",
			res.Summary.NetCostPerTonne, res.Summary.CostPerTonne)
	}

	// Plant capital and the thermal block dominate this configuration.
	b := res.Breakdown
	for name, other := range map[string]float64{
		"electric": b.Electric, "dac om": b.DacOM, "battery": b.Battery,
	} {
		if b.DacCapital <= other || b.Thermal <= other {
			t.Errorf("expected dac capital and thermal to dominate, %s = %v (dac capital %v, thermal %v)",
				name, other, b.DacCapital, b.Thermal)
		}
	}
}

func TestComputeGasScenario(t *testing.T) {
	res, err := Compute(gasScenario())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if cpt := res.Summary.CostPerTonne; cpt < 150 || cpt > 250 {
		t.Errorf("cost per tonne = %v, want within [150, 250]", cpt)
	}

	// Only the NGCC slip emits; the kiln's CO2 joins the capture stream.
	emitted := res.Summary.EmittedTonnesPerTonne
	if emitted <= 0 || emitted >= 0.05 {
		t.Errorf("emitted per tonne = %v, want a small positive fraction", emitted)
	}
	if res.Summary.NetCostPerTonne <= res.Summary.CostPerTonne {
		t.Errorf("net cost %v should exceed gross %v when emissions are nonzero",
			res.Summary.NetCostPerTonne, res.Summary.CostPerTonne)
	}
	wantNet := res.Summary.CostPerTonne / (1 - emitted)
	if math.Abs(res.Summary.NetCostPerTonne-wantNet) > 1e-9 {
		t.Errorf("net cost = %v, want %v", res.Summary.NetCostPerTonne, wantNet)
	}
}

func TestComputeAggregation(t *testing.T) {
	res, err := Compute(solarScenario())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if res.Years != 20 || res.Total.Years() != 20 {
		t.Fatalf("expected 20-year series, got %d/%d", res.Years, res.Total.Years())
	}
	for i := range res.Total {
		want := res.Dac[i] + res.Electric[i] + res.Thermal[i]
		if math.Abs(res.Total[i]-want) > 1e-6 {
			t.Errorf("year %d: total = %v, want %v", i, res.Total[i], want)
		}
		if res.Dac[i] < 0 || res.Electric[i] < 0 || res.Thermal[i] < 0 {
			t.Errorf("year %d: negative component cost", i)
		}
	}

	// The itemized breakdown and the series describe the same dollars.
	if math.Abs(res.Breakdown.Total-res.Total[0]) > 1e-6 {
		t.Errorf("breakdown total %v != series value %v", res.Breakdown.Total, res.Total[0])
	}

	f := res.Breakdown.Fractions()
	sum := f.DacCapital + f.DacOM + f.Electric + f.Thermal + f.Battery
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("fractions sum to %v, want 1", sum)
	}
}

func TestComputeIsCached(t *testing.T) {
	s := solarScenario()
	dac, err := NewDacSection(s)
	if err != nil {
		t.Fatal(err)
	}
	electric, err := newSectionWithBattery(s, s.Electric)
	if err != nil {
		t.Fatal(err)
	}
	thermal, err := newSectionWithBattery(s, s.Thermal)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewDacModel(dac, electric, thermal)
	if err != nil {
		t.Fatal(err)
	}

	first, err := m.Compute()
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Compute()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("repeated Compute should return the cached result")
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, err := Compute(solarScenario())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(solarScenario())
	if err != nil {
		t.Fatal(err)
	}
	if a.Summary != b.Summary {
		t.Errorf("fresh models disagree: %+v vs %+v", a.Summary, b.Summary)
	}
	for i := range a.Total {
		if a.Total[i] != b.Total[i] {
			t.Errorf("year %d: %v vs %v", i, a.Total[i], b.Total[i])
		}
	}
}

func TestNewDacModelMismatchedLifetimes(t *testing.T) {
	s := solarScenario()
	dac, err := NewDacSection(s)
	if err != nil {
		t.Fatal(err)
	}

	longer := solarScenario()
	longer.Financing.LifetimeYears = 25
	electric, err := newSectionWithBattery(longer, longer.Electric)
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewDacModel(dac, electric, nil)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	var dm *DimensionMismatchError
	if !errors.As(err, &dm) {
		t.Fatalf("expected *DimensionMismatchError, got %T", err)
	}
	if dm.Want != 20 || dm.Got != 25 {
		t.Errorf("mismatch = %+v, want 20/25", dm)
	}
}

func TestComputeRequiresElectric(t *testing.T) {
	s := solarScenario()
	s.Electric = nil
	_, err := Compute(s)
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}

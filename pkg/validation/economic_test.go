package validation

import (
	"strings"
	"testing"

	"github.com/carbonplan/dac-costing/pkg/model"
	"github.com/carbonplan/dac-costing/pkg/spec"
)

func computeScenario(t *testing.T, s *spec.ScenarioSpec) *model.Result {
	t.Helper()
	res, err := model.Compute(s)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return res
}

func TestValidateEconomicCleanScenario(t *testing.T) {
	s := validScenario()
	s.Electric.Battery = &spec.BatteryDef{CoverageHours: 4}
	s.ApplyDefaults()

	r := NewReport()
	ValidateEconomic(s, computeScenario(t, s), r)
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", r.Warnings)
	}
}

func TestValidateEconomicCostBand(t *testing.T) {
	s := validScenario()
	s.Facility.TotalCapexM = 936010 // entered dollars where millions belong

	r := NewReport()
	ValidateEconomic(s, computeScenario(t, s), r)

	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, "plausible") {
			found = true
			if len(w.Suggestions) == 0 {
				t.Error("cost band warning should suggest a fix")
			}
		}
	}
	if !found {
		t.Errorf("expected a cost band warning, got %+v", r.Warnings)
	}
}

func TestValidateEconomicUnfirmedIntermittent(t *testing.T) {
	s := validScenario() // solar electric, no battery

	r := NewReport()
	ValidateEconomic(s, computeScenario(t, s), r)

	found := false
	for _, w := range r.Warnings {
		if w.SpecPath == "electric.battery" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a firming warning for unfirmed solar, got %+v", r.Warnings)
	}
	if !r.Valid {
		t.Error("economic findings are advisory and must not invalidate the report")
	}
}

func TestValidateEconomicEmissionsInfo(t *testing.T) {
	s := spec.Defaults()
	s.Facility.TotalCapexM = 1029
	s.Electric = &spec.EnergyDef{Source: spec.SourceNaturalGas, BaseLoadMW: 47}
	s.ApplyDefaults()

	r := NewReport()
	ValidateEconomic(s, computeScenario(t, s), r)

	if len(r.Info) == 0 || !strings.Contains(r.Info[0].Message, "net") {
		t.Errorf("expected a net removal note for a fueled scenario, got %+v", r.Info)
	}
}

func TestValidateEconomicNetNegativeRemoval(t *testing.T) {
	s := spec.Defaults()
	s.Facility.TotalCapexM = 1029
	s.Electric = &spec.EnergyDef{Source: spec.SourceNaturalGas, BaseLoadMW: 47}
	// An uncaptured gas fleet large enough to emit more than the plant
	// captures.
	s.Technologies = map[string]spec.TechnologyDef{
		spec.SourceNaturalGas: {
			CapitalCostPerKW:    900,
			VariableCostPerMWh:  4,
			HeatRateMMBtuPerMWh: 6.4,
			FuelPricePerMMBtu:   3.5,
			CO2LbPerMMBtu:       117,
			CaptureEfficiency:   0,
		},
	}
	s.Electric.BaseLoadMW = 400
	s.ApplyDefaults()

	r := NewReport()
	ValidateEconomic(s, computeScenario(t, s), r)

	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, "net removal") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a net removal warning, got %+v", r.Warnings)
	}
}

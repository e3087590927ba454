package validation

import (
	"fmt"

	"github.com/carbonplan/dac-costing/pkg/model"
	"github.com/carbonplan/dac-costing/pkg/spec"
)

// Plausibility band for levelized capture cost, $/tCO2. Results outside
// it usually indicate a units mistake in the inputs rather than a truly
// exotic facility.
const (
	plausibleCostLow  = 50.0
	plausibleCostHigh = 1500.0
)

// ValidateEconomic runs post-compute sanity checks on a result. These are
// advisory: they produce warnings and info, never hard errors, since the
// model itself already rejected domain-invalid parameters.
func ValidateEconomic(s *spec.ScenarioSpec, res *model.Result, report *Report) {
	validateCostBand(res, report)
	validateFirming(s, report)
	validateEmissions(res, report)
}

func validateCostBand(res *model.Result, report *Report) {
	cpt := res.Summary.CostPerTonne
	if cpt < plausibleCostLow || cpt > plausibleCostHigh {
		report.AddWarning(Result{
			Level:       LevelEconomic,
			Message:     fmt.Sprintf("levelized cost $%.0f/tCO2 is outside the plausible $%.0f-$%.0f band", cpt, plausibleCostLow, plausibleCostHigh),
			SpecPath:    "facility",
			ActualValue: cpt,
			Expected:    fmt.Sprintf("$%.0f-$%.0f per tonne", plausibleCostLow, plausibleCostHigh),
			Suggestions: []string{
				"Check that total_capex_m is in millions of dollars",
				"Check that rates are fractions, not percentages",
			},
		})
	}
}

func validateFirming(s *spec.ScenarioSpec, report *Report) {
	sections := []struct {
		path string
		def  *spec.EnergyDef
	}{
		{"electric", s.Electric},
		{"thermal", s.Thermal},
	}
	for _, sec := range sections {
		path, e := sec.path, sec.def
		if e == nil {
			continue
		}
		intermittent := e.Source == spec.SourceSolar || e.Source == spec.SourceWind
		if intermittent && (e.Battery == nil || e.Battery.CoverageHours == 0) {
			report.AddWarning(Result{
				Level:       LevelEconomic,
				Message:     fmt.Sprintf("%s: %s supply without battery coverage cannot run the plant through non-generating hours", path, e.Source),
				SpecPath:    path + ".battery",
				ActualValue: e.Source,
				Suggestions: []string{"Add a battery block with coverage_hours > 0"},
			})
		}
	}
}

func validateEmissions(res *model.Result, report *Report) {
	emitted := res.Summary.EmittedTonnesPerTonne
	if emitted >= 1 {
		report.AddWarning(Result{
			Level:       LevelEconomic,
			Message:     fmt.Sprintf("facility emits %.2f tCO2e per tonne captured; net removal is zero or negative", emitted),
			SpecPath:    "thermal",
			ActualValue: emitted,
			Expected:    "< 1",
		})
	} else if emitted > 0 {
		report.AddInfo(Result{
			Level:    LevelEconomic,
			Message:  fmt.Sprintf("fuel emissions reduce net removal: $%.0f/tCO2 gross becomes $%.0f/tCO2 net", res.Summary.CostPerTonne, res.Summary.NetCostPerTonne),
			SpecPath: "summary",
		})
	}
}

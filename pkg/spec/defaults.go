package spec

// Default techno-economic assumptions. These are baseline values from the
// reference spreadsheet; any of them can be overridden per scenario.
const (
	DefaultDiscountRate   = 0.07
	DefaultLifetimeYears  = 20
	DefaultCapacityFactor = 0.90

	DefaultFixedOMRate        = 0.03 // fraction of capex per year
	DefaultVariableOMPerTonne = 5.0  // $/tCO2

	DefaultBatteryRoundTrip     = 0.85
	DefaultBatteryEnergyCapex   = 300000.0 // $/MWh capacity
	DefaultBatteryPowerCapex    = 200.0    // $/kW
	DefaultBatteryFixedOMRate   = 0.025    // fraction of battery capex per year
	DefaultThermalGJPerTonne    = 6.64     // regeneration heat, GJ/tCO2
	DefaultGasPricePerMMBtu     = 3.5      // $/MMBtu
	DefaultGasCO2LbPerMMBtu     = 117.0    // lb CO2e/MMBtu combusted
	DefaultGasCaptureEfficiency = 0.90     // post-combustion capture on NGCC
)

// Recognized energy source names.
const (
	SourceGrid       = "Grid"
	SourceSolar      = "Solar"
	SourceWind       = "Wind"
	SourceNaturalGas = "NaturalGas"
	SourceNuclear    = "Nuclear"
)

var sourceOrder = []string{SourceGrid, SourceSolar, SourceWind, SourceNaturalGas, SourceNuclear}

// DefaultTechnologies is the baseline generation table. Capital costs are
// overnight $/kW of plant; variable costs are non-fuel $/MWh delivered.
var DefaultTechnologies = map[string]TechnologyDef{
	SourceGrid: {
		CapitalCostPerKW:   0,
		VariableCostPerMWh: 60.0,
	},
	SourceSolar: {
		CapitalCostPerKW:   1300.0,
		VariableCostPerMWh: 25.0,
	},
	SourceWind: {
		CapitalCostPerKW:   1600.0,
		VariableCostPerMWh: 30.0,
	},
	SourceNaturalGas: {
		CapitalCostPerKW:    900.0,
		VariableCostPerMWh:  4.0,
		HeatRateMMBtuPerMWh: 6.4,
		FuelPricePerMMBtu:   DefaultGasPricePerMMBtu,
		CO2LbPerMMBtu:       DefaultGasCO2LbPerMMBtu,
		CaptureEfficiency:   DefaultGasCaptureEfficiency,
	},
	SourceNuclear: {
		CapitalCostPerKW:   6000.0,
		VariableCostPerMWh: 22.0,
	},
}

// Defaults returns a scenario skeleton populated with the documented
// default assumptions and no energy sections attached.
func Defaults() *ScenarioSpec {
	return &ScenarioSpec{
		SpecVersion: "0.1.0",
		Facility: FacilityDef{
			CapacityTonnesYear: 1_000_000,
			CapacityFactor:     DefaultCapacityFactor,
			FixedOMRate:        DefaultFixedOMRate,
			VariableOMPerTonne: DefaultVariableOMPerTonne,
		},
		Financing: FinancingDef{
			DiscountRate:  DefaultDiscountRate,
			LifetimeYears: DefaultLifetimeYears,
		},
	}
}

// ApplyDefaults fills unset fields in place. Zero values for rates and
// factors that cannot meaningfully be zero are treated as unset; fields
// where zero is legitimate (capex, coverage hours) are left alone.
func (s *ScenarioSpec) ApplyDefaults() {
	if s.Facility.CapacityFactor == 0 {
		s.Facility.CapacityFactor = DefaultCapacityFactor
	}
	if s.Facility.FixedOMRate == 0 {
		s.Facility.FixedOMRate = DefaultFixedOMRate
	}
	if s.Facility.VariableOMPerTonne == 0 {
		s.Facility.VariableOMPerTonne = DefaultVariableOMPerTonne
	}
	if s.Financing.DiscountRate == 0 && s.Financing.LifetimeYears == 0 {
		s.Financing.DiscountRate = DefaultDiscountRate
	}
	if s.Financing.LifetimeYears == 0 {
		s.Financing.LifetimeYears = DefaultLifetimeYears
	}
	applyEnergyDefaults(s.Electric, s.Facility.CapacityFactor)
	applyEnergyDefaults(s.Thermal, s.Facility.CapacityFactor)
}

func applyEnergyDefaults(e *EnergyDef, facilityCF float64) {
	if e == nil {
		return
	}
	if e.CapacityFactor == 0 {
		e.CapacityFactor = facilityCF
	}
	if e.DirectFired && e.RequiredThermalGJPerTonne == 0 {
		e.RequiredThermalGJPerTonne = DefaultThermalGJPerTonne
	}
	if b := e.Battery; b != nil {
		if b.RoundTripEfficiency == 0 {
			b.RoundTripEfficiency = DefaultBatteryRoundTrip
		}
		if b.EnergyCapexPerMWh == 0 {
			b.EnergyCapexPerMWh = DefaultBatteryEnergyCapex
		}
		if b.PowerCapexPerKW == 0 {
			b.PowerCapexPerKW = DefaultBatteryPowerCapex
		}
		if b.FixedOMRate == 0 {
			b.FixedOMRate = DefaultBatteryFixedOMRate
		}
	}
}

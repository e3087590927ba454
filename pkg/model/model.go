package model

import "github.com/carbonplan/dac-costing/pkg/spec"

// Breakdown itemizes annualized costs by category, in $/yr.
type Breakdown struct {
	DacCapital float64 `json:"dac_capital"`
	DacOM      float64 `json:"dac_om"`
	Electric   float64 `json:"electric"`
	Thermal    float64 `json:"thermal"`
	Battery    float64 `json:"battery"`
	Total      float64 `json:"total"`
}

// Fractions returns the breakdown normalized so categories sum to 1.
func (b Breakdown) Fractions() Breakdown {
	if b.Total == 0 {
		return Breakdown{}
	}
	return Breakdown{
		DacCapital: b.DacCapital / b.Total,
		DacOM:      b.DacOM / b.Total,
		Electric:   b.Electric / b.Total,
		Thermal:    b.Thermal / b.Total,
		Battery:    b.Battery / b.Total,
		Total:      1,
	}
}

// Result is the complete cost model output.
type Result struct {
	Years int `json:"years"`

	// Per-year cost series by component and aggregated. Thermal is nil
	// when the scenario has no thermal block.
	Dac      Series `json:"dac"`
	Electric Series `json:"electric"`
	Thermal  Series `json:"thermal,omitempty"`
	Total    Series `json:"total"`

	Breakdown Breakdown `json:"breakdown"`

	Summary struct {
		TotalAnnualCost       float64 `json:"total_annual_cost"`
		CapturedTonnes        float64 `json:"captured_tonnes_year"`
		CostPerTonne          float64 `json:"cost_per_tonne"`
		EmittedTonnesPerTonne float64 `json:"emitted_tonnes_per_tonne"`
		NetCostPerTonne       float64 `json:"net_cost_per_tonne"`
	} `json:"summary"`
}

// DacModel composes a DacSection with one or two EnergySections into a
// combined cost series. The model owns its sections exclusively; sections
// are read-only after construction, so the cached result never goes
// stale. Changing an assumption means building a new model.
type DacModel struct {
	dac      *DacSection
	electric *EnergySection
	thermal  *EnergySection

	result *Result
}

// NewDacModel composes the sections into a model. An electric section is
// always required; thermal may be nil. All sections must span the same
// number of periods.
func NewDacModel(dac *DacSection, electric, thermal *EnergySection) (*DacModel, error) {
	if dac == nil {
		return nil, &MissingParameterError{Name: "DAC section"}
	}
	if electric == nil {
		return nil, &MissingParameterError{Name: "electric energy section"}
	}
	if electric.Years() != dac.Years() {
		return nil, &DimensionMismatchError{Want: dac.Years(), Got: electric.Years()}
	}
	if thermal != nil && thermal.Years() != dac.Years() {
		return nil, &DimensionMismatchError{Want: dac.Years(), Got: thermal.Years()}
	}
	return &DacModel{dac: dac, electric: electric, thermal: thermal}, nil
}

// Compute materializes the combined cost series and summary statistics.
// The result is cached: repeated calls return the identical object, and
// since sections are immutable the cache cannot be invalidated short of
// rebuilding the model.
func (m *DacModel) Compute() (*Result, error) {
	if m.result != nil {
		return m.result, nil
	}

	r := &Result{Years: m.dac.Years()}
	r.Dac = m.dac.Series()
	r.Electric = m.electric.Series()

	total, err := r.Dac.Add(r.Electric)
	if err != nil {
		return nil, err
	}

	emitted := m.electric.EmittedTonnes()
	battery := m.electric.BatteryAnnual()
	thermalAnnual := 0.0

	if m.thermal != nil {
		r.Thermal = m.thermal.Series()
		if total, err = total.Add(r.Thermal); err != nil {
			return nil, err
		}
		emitted += m.thermal.EmittedTonnes()
		battery += m.thermal.BatteryAnnual()
		thermalAnnual = m.thermal.Annual() - m.thermal.BatteryAnnual()
	}
	r.Total = total

	r.Breakdown = Breakdown{
		DacCapital: m.dac.CapitalAnnual(),
		DacOM:      m.dac.FixedOMAnnual() + m.dac.VariableOMAnnual(),
		Electric:   m.electric.Annual() - m.electric.BatteryAnnual(),
		Thermal:    thermalAnnual,
		Battery:    battery,
	}
	r.Breakdown.Total = r.Breakdown.DacCapital + r.Breakdown.DacOM +
		r.Breakdown.Electric + r.Breakdown.Thermal + r.Breakdown.Battery

	captured := m.dac.CapturedTonnes()
	r.Summary.TotalAnnualCost = r.Breakdown.Total
	r.Summary.CapturedTonnes = captured
	r.Summary.CostPerTonne = r.Breakdown.Total / captured
	r.Summary.EmittedTonnesPerTonne = emitted / captured
	if r.Summary.EmittedTonnesPerTonne < 1 {
		r.Summary.NetCostPerTonne = r.Summary.CostPerTonne / (1 - r.Summary.EmittedTonnesPerTonne)
	}

	m.result = r
	return r, nil
}

// Compute builds all sections from a scenario and runs the composed
// model. It is the single entry point used by the CLI and server.
func Compute(s *spec.ScenarioSpec) (*Result, error) {
	dac, err := NewDacSection(s)
	if err != nil {
		return nil, err
	}
	if s.Electric == nil {
		return nil, &MissingParameterError{Name: "electric"}
	}

	electric, err := newSectionWithBattery(s, s.Electric)
	if err != nil {
		return nil, err
	}

	var thermal *EnergySection
	if s.Thermal != nil {
		if thermal, err = newSectionWithBattery(s, s.Thermal); err != nil {
			return nil, err
		}
	}

	m, err := NewDacModel(dac, electric, thermal)
	if err != nil {
		return nil, err
	}
	return m.Compute()
}

func newSectionWithBattery(s *spec.ScenarioSpec, def *spec.EnergyDef) (*EnergySection, error) {
	var battery *BatterySection
	if def.Battery != nil {
		var err error
		if battery, err = NewBatterySection(def.Battery, s.Financing, def.BaseLoadMW); err != nil {
			return nil, err
		}
	}
	return NewEnergySection(s, def, battery)
}
